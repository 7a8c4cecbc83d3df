package store

import (
	"errors"
	"fmt"

	"festeasy/models"
)

var ErrInvalidServiceDraft = errors.New("invalid service draft")

// Providers lists the catalog, optionally filtered by category. An empty
// category returns everything.
func (s *Store) Providers(category models.ServiceCategory) []models.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Provider, 0, len(s.providers))
	for _, p := range s.providers {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// Provider returns one provider by id.
func (s *Store) Provider(id string) (models.Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.providerIndexLocked(id); i >= 0 {
		return s.providers[i].Clone(), true
	}
	return models.Provider{}, false
}

// FindService looks a service up across the whole catalog.
func (s *Store) FindService(serviceID string) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findServiceLocked(serviceID)
}

// AddServiceToProvider appends a new service to the logged-in provider's
// catalog entry. Without a provider session nothing happens and nil is
// returned.
func (s *Store) AddServiceToProvider(draft models.ServiceDraft) (*models.Service, error) {
	if err := s.validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServiceDraft, err)
	}

	var created *models.Service
	err := s.mutate(EventCatalog, func() (bool, error) {
		if !s.user.IsProvider() {
			return false, nil
		}
		i := s.providerIndexLocked(s.user.ID)
		if i < 0 {
			return false, nil
		}
		svc := models.Service{
			ID:          s.newID(),
			ProviderID:  s.providers[i].ID,
			Name:        draft.Name,
			Description: draft.Description,
			Price:       draft.Price,
		}
		s.providers[i].Services = append(s.providers[i].Services, svc)
		created = &svc
		return true, nil
	})
	return created, err
}

func (s *Store) providerIndexLocked(id string) int {
	for i := range s.providers {
		if s.providers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findServiceLocked(serviceID string) (models.Service, bool) {
	for i := range s.providers {
		if svc, ok := s.providers[i].FindService(serviceID); ok {
			return svc, true
		}
	}
	return models.Service{}, false
}
