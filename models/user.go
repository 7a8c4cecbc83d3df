package models

import "time"

// UserType tags a session as customer or provider.
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeProvider UserType = "provider"
)

// Valid reports whether t is customer or provider.
func (t UserType) Valid() bool {
	return t == UserTypeCustomer || t == UserTypeProvider
}

// User is the current session holder.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Type  UserType `json:"type"`
}

// IsProvider reports whether u is logged in as a provider.
func (u *User) IsProvider() bool {
	return u != nil && u.Type == UserTypeProvider
}

// Credentials is what a client presents to start a session. Only Type is
// checked.
type Credentials struct {
	Email string   `json:"email"`
	Type  UserType `json:"type" binding:"required,oneof=customer provider"`
}

// SessionResult is returned by an Authenticator on success.
type SessionResult struct {
	User     User      `json:"user"`
	IssuedAt time.Time `json:"issuedAt"`
}
