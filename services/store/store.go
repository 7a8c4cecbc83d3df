// Package store holds the marketplace state shared by every handler: the
// provider catalog, the current session, the cart and booking requests.
package store

import (
	"sync"

	"festeasy/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EventKind names the slice of state a mutation touched.
type EventKind string

const (
	EventSession  EventKind = "session"
	EventCatalog  EventKind = "catalog"
	EventCart     EventKind = "cart"
	EventBookings EventKind = "bookings"
)

// State is an immutable copy of everything the store holds.
type State struct {
	Version         uint64                  `json:"version"`
	User            *models.User            `json:"user,omitempty"`
	Providers       []models.Provider       `json:"providers"`
	Cart            []models.CartItem       `json:"cart"`
	BookingRequests []models.BookingRequest `json:"bookingRequests"`
}

// Event is delivered to listeners after every state-changing mutation.
type Event struct {
	Kind    EventKind
	Version uint64
	State   State
}

// Listener receives events in mutation order. It may read the store but must
// not mutate it.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Option customises a Store.
type Option func(*Store)

// WithIDGenerator replaces the uuid generator used for new records.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// Store is the single source of truth for marketplace state.
//
// writeMu serializes mutations together with their notifications so that
// listeners observe events in the order mutations were issued. mu guards the
// data itself and is only held briefly.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex

	providers []models.Provider
	cart      []models.CartItem
	requests  []models.BookingRequest
	user      *models.User
	version   uint64

	listeners []subscription
	nextSubID int

	newID    func() string
	validate *validator.Validate
}

// New builds a store seeded with the given catalog and booking requests.
func New(providers []models.Provider, requests []models.BookingRequest, opts ...Option) *Store {
	s := &Store{
		providers: cloneProviders(providers),
		requests:  normalizeRequests(requests),
		newID:     func() string { return uuid.New().String() },
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers l for change notifications and returns a function that
// removes it again.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: l})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Version returns the number of state-changing mutations applied so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) snapshotLocked() State {
	st := State{
		Version:         s.version,
		Providers:       cloneProviders(s.providers),
		Cart:            cloneCart(s.cart),
		BookingRequests: s.resolveRequestsLocked(s.requests),
	}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

// mutate runs fn under the write lock. When fn reports a change the version is
// bumped and listeners are notified before the next mutation can start.
func (s *Store) mutate(kind EventKind, fn func() (bool, error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	changed, err := fn()
	if err != nil || !changed {
		s.mu.Unlock()
		return err
	}
	s.version++
	ev := Event{Kind: kind, Version: s.version, State: s.snapshotLocked()}
	listeners := append([]subscription(nil), s.listeners...)
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.fn(ev)
	}
	return nil
}

func cloneProviders(in []models.Provider) []models.Provider {
	out := make([]models.Provider, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func cloneCart(in []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(in))
	for i, item := range in {
		out[i] = models.CartItem{Service: item.Service, Provider: item.Provider.Clone()}
	}
	return out
}
