// Package auth is the session boundary. Handlers only see Authenticator and
// SessionService, so a real identity provider can replace StubAuthenticator
// without touching callers.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"festeasy/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authenticator turns credentials into a session.
type Authenticator interface {
	Authenticate(ctx context.Context, creds models.Credentials) (models.SessionResult, error)
}

// Demo identities. Every provider login resolves to the same demo provider,
// which must exist in the seeded catalog.
const (
	DemoCustomerID = "c1"
	DemoProviderID = "p1"
)

// StubAuthenticator fabricates a user from the email and type. It performs no
// credential verification.
type StubAuthenticator struct {
	Clock func() time.Time
}

func NewStubAuthenticator() *StubAuthenticator {
	return &StubAuthenticator{Clock: time.Now}
}

func (a *StubAuthenticator) Authenticate(_ context.Context, creds models.Credentials) (models.SessionResult, error) {
	if !creds.Type.Valid() {
		return models.SessionResult{}, ErrInvalidCredentials
	}
	email := strings.TrimSpace(creds.Email)

	id := DemoCustomerID
	if creds.Type == models.UserTypeProvider {
		id = DemoProviderID
	}

	now := time.Now
	if a.Clock != nil {
		now = a.Clock
	}

	return models.SessionResult{
		User: models.User{
			ID:    id,
			Name:  displayName(email),
			Email: email,
			Type:  creds.Type,
		},
		IssuedAt: now().UTC(),
	}, nil
}

// displayName uses the local part of the email, e.g. "ana.garcia@x.mx" -> "ana.garcia".
func displayName(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
