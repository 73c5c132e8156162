package model

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/secmon-lab/demote/pkg/domain/types"
)

// DefaultSessionDuration is how long an operator login stays valid
const DefaultSessionDuration = 24 * time.Hour

// Session represents an authenticated operator session
type Session struct {
	ID        types.SessionID     `json:"id"`
	Secret    types.SessionSecret `json:"-"`
	Username  string              `json:"username"`
	CreatedAt time.Time           `json:"created_at"`
	ExpiresAt time.Time           `json:"expires_at"`
}

// NewSession creates a new Session with UUID v7 ID and random Secret
func NewSession(username string, duration time.Duration) (*Session, error) {
	sessionID, err := types.NewSessionID()
	if err != nil {
		return nil, err
	}

	// 24 bytes = 32 chars in base64
	sessionSecret, err := generateRandomSecret(24)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Session{
		ID:        sessionID,
		Secret:    types.SessionSecret(sessionSecret),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(duration),
	}, nil
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid checks if the session is valid (not expired and has proper fields)
func (s *Session) IsValid() bool {
	return s.ID != "" && s.Secret != "" && s.Username != "" && !s.IsExpired()
}

func generateRandomSecret(byteLength int) (string, error) {
	bytes := make([]byte, byteLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
