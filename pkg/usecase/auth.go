package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/domain/types"
)

// Auth implements operator login backed by a session repository
type Auth struct {
	repo            interfaces.Repository
	username        string
	password        string
	sessionDuration time.Duration
}

// NewAuth creates a new Auth use case. Login is disabled when password is empty.
func NewAuth(repo interfaces.Repository, username, password string) *Auth {
	return &Auth{
		repo:            repo,
		username:        username,
		password:        password,
		sessionDuration: model.DefaultSessionDuration,
	}
}

// Enabled reports whether operator login is configured
func (a *Auth) Enabled() bool {
	return a.password != ""
}

// Login checks the operator credentials and creates a session
func (a *Auth) Login(ctx context.Context, username, password string) (*model.Session, error) {
	logger := ctxlog.From(ctx)

	if !a.Enabled() {
		return nil, goerr.Wrap(model.ErrLoginNotEnabled, "login rejected")
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !userOK || !passOK {
		logger.Warn("Login failed", "username", username)
		return nil, goerr.Wrap(model.ErrUnauthorized, "invalid username or password")
	}

	if removed, err := a.repo.DeleteExpiredSessions(ctx); err != nil {
		logger.Warn("Failed to purge expired sessions", "error", err)
	} else if removed > 0 {
		logger.Debug("Purged expired sessions", "count", removed)
	}

	session, err := model.NewSession(a.username, a.sessionDuration)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session")
	}

	if err := a.repo.SaveSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to save session")
	}

	logger.Info("Created new session",
		"sessionID", session.ID,
		"username", session.Username,
		"expiresAt", session.ExpiresAt,
	)

	return session, nil
}

// ValidateSession validates a session by ID and secret
func (a *Auth) ValidateSession(ctx context.Context, sessionID, sessionSecret string) (*model.Session, error) {
	if sessionID == "" || sessionSecret == "" {
		return nil, goerr.Wrap(model.ErrUnauthorized, "session ID and secret are required")
	}

	session, err := a.repo.GetSession(ctx, types.SessionID(sessionID))
	if err != nil {
		return nil, goerr.Wrap(model.ErrUnauthorized, "session not found", goerr.V("cause", err.Error()))
	}

	if subtle.ConstantTimeCompare([]byte(session.Secret), []byte(sessionSecret)) != 1 {
		return nil, goerr.Wrap(model.ErrUnauthorized, "invalid session secret")
	}

	if session.IsExpired() {
		return nil, goerr.Wrap(model.ErrUnauthorized, "session expired")
	}

	return session, nil
}

// Logout deletes a session
func (a *Auth) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return goerr.New("session ID is required")
	}

	if err := a.repo.DeleteSession(ctx, types.SessionID(sessionID)); err != nil {
		return goerr.Wrap(err, "failed to delete session")
	}

	ctxlog.From(ctx).Info("Deleted session", "sessionID", sessionID)
	return nil
}
