package store

import (
	"errors"

	"festeasy/models"
)

var ErrInvalidUserType = errors.New("user type must be customer or provider")

// SetCurrentUser replaces the session holder. A nil user logs out.
func (s *Store) SetCurrentUser(u *models.User) error {
	if u != nil && !u.Type.Valid() {
		return ErrInvalidUserType
	}
	return s.mutate(EventSession, func() (bool, error) {
		if u == nil {
			if s.user == nil {
				return false, nil
			}
			s.user = nil
			return true, nil
		}
		copied := *u
		s.user = &copied
		return true, nil
	})
}

// Logout clears the current user. Calling it while logged out does nothing.
func (s *Store) Logout() {
	_ = s.SetCurrentUser(nil)
}

// CurrentUser returns a copy of the session holder or nil when logged out.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
