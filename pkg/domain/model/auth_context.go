package model

import (
	"context"

	"github.com/secmon-lab/demote/pkg/domain/types"
)

type contextKey string

const authContextKey contextKey = "authContext"

// AuthContext carries the authenticated operator across async boundaries
type AuthContext struct {
	Username  string          `json:"username,omitempty"`
	SessionID types.SessionID `json:"session_id,omitempty"`
}

// NewAuthContext creates a new AuthContext
func NewAuthContext() *AuthContext {
	return &AuthContext{}
}

// WithAuthContext adds AuthContext to the context
func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	if authCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, authContextKey, authCtx)
}

// GetAuthContext retrieves AuthContext from the context
func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	authCtx, ok := ctx.Value(authContextKey).(*AuthContext)
	return authCtx, ok
}

// Operator returns the username stored in ctx, or empty string
func Operator(ctx context.Context) string {
	if authCtx, ok := GetAuthContext(ctx); ok && authCtx != nil {
		return authCtx.Username
	}
	return ""
}

// Clone creates a deep copy of the AuthContext
func (a *AuthContext) Clone() *AuthContext {
	if a == nil {
		return nil
	}
	return &AuthContext{
		Username:  a.Username,
		SessionID: a.SessionID,
	}
}
