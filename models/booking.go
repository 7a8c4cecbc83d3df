package models

import "errors"

// BookingStatus is the lifecycle state of a BookingRequest.
type BookingStatus string

const (
	StatusPending  BookingStatus = "Pending"
	StatusAccepted BookingStatus = "Accepted"
	StatusRejected BookingStatus = "Rejected"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
)

// Valid reports whether s is a known status.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are defined from s.
func (s BookingStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Transition validates moving from s to next. Only Pending may move, and only
// to Accepted or Rejected. Re-applying the current status is allowed.
func (s BookingStatus) Transition(next BookingStatus) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if s == next {
		return nil
	}
	if s != StatusPending || next == StatusPending {
		return ErrInvalidTransition
	}
	return nil
}

// BookingRequest is a customer's request to reserve a catalog Service. Only
// ServiceID is stored; Service is filled from the catalog whenever the
// request is read.
type BookingRequest struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customerName"`
	EventDate    string        `json:"eventDate"` // YYYY-MM-DD
	EventType    string        `json:"eventType"`
	Location     string        `json:"location"`
	Guests       int           `json:"guests"`
	ServiceID    string        `json:"serviceId"`
	Service      Service       `json:"service"`
	Status       BookingStatus `json:"status"`
}

// BookingRequestDraft is the input for a new BookingRequest.
type BookingRequestDraft struct {
	CustomerName string `json:"customerName" binding:"required"`
	EventDate    string `json:"eventDate" binding:"required"`
	EventType    string `json:"eventType"`
	Location     string `json:"location"`
	Guests       int    `json:"guests" binding:"required,gt=0"`
	ServiceID    string `json:"serviceId" binding:"required"`
}

// StatusUpdate is the body of a status change.
type StatusUpdate struct {
	Status BookingStatus `json:"status" binding:"required"`
}
