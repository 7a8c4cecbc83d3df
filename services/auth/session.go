package auth

import (
	"context"
	"fmt"

	"festeasy/models"

	"go.uber.org/zap"
)

// SessionStore is the part of the state store a session needs.
type SessionStore interface {
	SetCurrentUser(u *models.User) error
	CurrentUser() *models.User
	Logout()
}

// SessionService logs users in and out of the shared store.
type SessionService struct {
	Auth   Authenticator
	Store  SessionStore
	Logger *zap.Logger
}

func NewSessionService(a Authenticator, s SessionStore, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{Auth: a, Store: s, Logger: logger}
}

// Login authenticates creds and makes the resulting user current.
func (s *SessionService) Login(ctx context.Context, creds models.Credentials) (models.SessionResult, error) {
	result, err := s.Auth.Authenticate(ctx, creds)
	if err != nil {
		return models.SessionResult{}, err
	}
	if err := s.Store.SetCurrentUser(&result.User); err != nil {
		return models.SessionResult{}, fmt.Errorf("set current user: %w", err)
	}
	s.Logger.Info("session started",
		zap.String("userID", result.User.ID),
		zap.String("type", string(result.User.Type)))
	return result, nil
}

// Logout clears the session. It is safe to call when nobody is logged in.
func (s *SessionService) Logout() {
	s.Store.Logout()
}

// Current returns the logged-in user or nil.
func (s *SessionService) Current() *models.User {
	return s.Store.CurrentUser()
}
