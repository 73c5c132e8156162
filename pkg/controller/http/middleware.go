package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
)

const (
	sessionIDCookie     = "session_id"
	sessionSecretCookie = "session_secret"
)

// Middleware provides common HTTP middleware
type Middleware struct {
	authUC interfaces.Auth
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(ctx context.Context, authUC interfaces.Auth) *Middleware {
	return &Middleware{
		authUC: authUC,
	}
}

// CORS answers cross-origin requests from allowOrigin, which lets a browser
// client served from another origin call the API with its cookies.
func CORS(allowOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth middleware checks session authentication (chi compatible)
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		idCookie, err := r.Cookie(sessionIDCookie)
		if err != nil {
			writeError(ctx, w, "unauthorized: missing session_id", http.StatusUnauthorized)
			return
		}

		secretCookie, err := r.Cookie(sessionSecretCookie)
		if err != nil {
			writeError(ctx, w, "unauthorized: missing session_secret", http.StatusUnauthorized)
			return
		}

		session, err := m.authUC.ValidateSession(ctx, idCookie.Value, secretCookie.Value)
		if err != nil {
			ctxlog.From(ctx).Debug("Session validation failed",
				"error", err,
				"sessionID", idCookie.Value,
			)
			writeError(ctx, w, "unauthorized: invalid session", http.StatusUnauthorized)
			return
		}

		if authCtx, ok := model.GetAuthContext(ctx); ok {
			authCtx.Username = session.Username
			authCtx.SessionID = session.ID
		} else {
			ctx = model.WithAuthContext(ctx, &model.AuthContext{
				Username:  session.Username,
				SessionID: session.ID,
			})
		}

		logger := ctxlog.From(ctx).With("operator", session.Username)
		ctx = ctxlog.With(ctx, logger)
		logger.Debug("Authenticated request", "sessionID", session.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthContextMiddleware attaches an empty AuthContext to every request
func AuthContextMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := model.WithAuthContext(r.Context(), model.NewAuthContext())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Embed logger from the initial context into request context
			logger := ctxlog.From(ctx).With("request_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}
