package store

import (
	"errors"
	"strings"

	"festeasy/models"
)

var (
	ErrServiceNotFound       = errors.New("service not found")
	ErrInvalidBookingRequest = errors.New("invalid booking request")
	ErrNotRequestOwner       = errors.New("booking request belongs to another provider")
)

// BookingRequests returns every request in creation order.
func (s *Store) BookingRequests() []models.BookingRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveRequestsLocked(s.requests)
}

// BookingRequestsForProvider returns the requests for services owned by
// providerID.
func (s *Store) BookingRequestsForProvider(providerID string) []models.BookingRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.BookingRequest
	for _, r := range s.requests {
		if resolved := s.resolveLocked(r); resolved.Service.ProviderID == providerID {
			out = append(out, resolved)
		}
	}
	return out
}

// CreateBookingRequest records a new Pending request for a catalog service.
func (s *Store) CreateBookingRequest(draft models.BookingRequestDraft) (models.BookingRequest, error) {
	if strings.TrimSpace(draft.CustomerName) == "" || strings.TrimSpace(draft.EventDate) == "" || draft.Guests <= 0 {
		return models.BookingRequest{}, ErrInvalidBookingRequest
	}

	var created models.BookingRequest
	err := s.mutate(EventBookings, func() (bool, error) {
		svc, ok := s.findServiceLocked(draft.ServiceID)
		if !ok {
			return false, ErrServiceNotFound
		}
		req := models.BookingRequest{
			ID:           s.newID(),
			CustomerName: strings.TrimSpace(draft.CustomerName),
			EventDate:    draft.EventDate,
			EventType:    draft.EventType,
			Location:     draft.Location,
			Guests:       draft.Guests,
			ServiceID:    svc.ID,
			Status:       models.StatusPending,
		}
		s.requests = append(s.requests, req)
		created = req
		created.Service = svc
		return true, nil
	})
	return created, err
}

// UpdateRequestStatus moves a request to status. Unknown ids are ignored;
// leaving a terminal status returns models.ErrInvalidTransition.
func (s *Store) UpdateRequestStatus(requestID string, status models.BookingStatus) error {
	return s.updateStatus(requestID, status, "")
}

// AnswerRequest is UpdateRequestStatus for a provider's dashboard: requests
// for services owned by someone else return ErrNotRequestOwner.
func (s *Store) AnswerRequest(providerID, requestID string, status models.BookingStatus) error {
	return s.updateStatus(requestID, status, providerID)
}

func (s *Store) updateStatus(requestID string, status models.BookingStatus, owner string) error {
	return s.mutate(EventBookings, func() (bool, error) {
		for i := range s.requests {
			if s.requests[i].ID != requestID {
				continue
			}
			if owner != "" && s.resolveLocked(s.requests[i]).Service.ProviderID != owner {
				return false, ErrNotRequestOwner
			}
			current := s.requests[i].Status
			if err := current.Transition(status); err != nil {
				return false, err
			}
			if current == status {
				return false, nil
			}
			s.requests[i].Status = status
			return true, nil
		}
		return false, nil
	})
}

// BookingRequest returns one request by id.
func (s *Store) BookingRequest(requestID string) (models.BookingRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.requests {
		if r.ID == requestID {
			return s.resolveLocked(r), true
		}
	}
	return models.BookingRequest{}, false
}

// resolveLocked fills in the catalog service r points at. A service missing
// from the catalog leaves Service zero.
func (s *Store) resolveLocked(r models.BookingRequest) models.BookingRequest {
	r.Service, _ = s.findServiceLocked(r.ServiceID)
	return r
}

func (s *Store) resolveRequestsLocked(in []models.BookingRequest) []models.BookingRequest {
	out := make([]models.BookingRequest, len(in))
	for i, r := range in {
		out[i] = s.resolveLocked(r)
	}
	return out
}

// normalizeRequests keeps only the service id of seeded requests.
func normalizeRequests(in []models.BookingRequest) []models.BookingRequest {
	out := make([]models.BookingRequest, len(in))
	for i, r := range in {
		if r.ServiceID == "" {
			r.ServiceID = r.Service.ID
		}
		r.Service = models.Service{}
		out[i] = r
	}
	return out
}
