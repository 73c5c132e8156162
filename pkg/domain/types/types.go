package types

import (
	"github.com/google/uuid"
)

// RunID identifies one batch run
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new time-ordered RunID (UUID v7)
func NewRunID() (RunID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return RunID(id.String()), nil
}

// SessionID represents a session identifier
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SessionID(id.String()), nil
}

// SessionSecret represents a session secret token
type SessionSecret string

// String returns the string representation
func (s SessionSecret) String() string {
	return string(s)
}

// UserID is the upstream account member identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// AccountID is the upstream workspace identifier
type AccountID string

// String returns the string representation
func (id AccountID) String() string {
	return string(id)
}
