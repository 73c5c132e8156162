package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/utils/apperr"
)

// ServiceName is reported by the health endpoint
const ServiceName = "demote"

// Config holds the HTTP surface settings
type Config struct {
	Addr             string
	RequireAPILogin  bool
	SessionHTTPSOnly bool

	// CORSAllowOrigin enables CORS for one origin when set
	CORSAllowOrigin string
}

// NewConfig creates a new HTTP server config
func NewConfig(addr string, requireAPILogin, sessionHTTPSOnly bool) *Config {
	return &Config{
		Addr:             addr,
		RequireAPILogin:  requireAPILogin,
		SessionHTTPSOnly: sessionHTTPSOnly,
	}
}

// UseCases bundles the use cases served over HTTP
type UseCases struct {
	auth   interfaces.Auth
	demote interfaces.Demoter
	runner interfaces.Runner
}

// NewUseCases creates a UseCases bundle
func NewUseCases(auth interfaces.Auth, demote interfaces.Demoter, runner interfaces.Runner) *UseCases {
	return &UseCases{
		auth:   auth,
		demote: demote,
		runner: runner,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, cfg *Config, uc *UseCases) (*Server, error) {
	router := chi.NewRouter()
	authMiddleware := NewMiddleware(ctx, uc.auth)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(AuthContextMiddleware())
	router.Use(middleware.Recoverer)
	if cfg.CORSAllowOrigin != "" {
		router.Use(CORS(cfg.CORSAllowOrigin))
	}

	authHandler := NewAuthHandler(uc.auth, cfg.SessionHTTPSOnly)
	demoteHandler := NewDemoteHandler(uc.demote)
	runHandler := NewRunHandler(uc.runner)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/logout", authHandler.HandleLogout)

		r.Group(func(r chi.Router) {
			if cfg.RequireAPILogin {
				r.Use(authMiddleware.RequireAuth)
			}
			r.Post("/demote/owner", demoteHandler.HandleDemoteOwner)
		})

		r.Route("/runs", func(r chi.Router) {
			if uc.auth.Enabled() {
				r.Use(authMiddleware.RequireAuth)
			}
			r.Post("/", runHandler.HandleStart)
			r.Get("/current", runHandler.HandleSnapshot)
			r.Delete("/current", runHandler.HandleClear)
			r.Post("/current/cancel", runHandler.HandleCancel)
		})
	})

	if cfg.RequireAPILogin && !uc.auth.Enabled() {
		ctxlog.From(ctx).Warn("API login is required but no admin password is set, protected routes will reject every request")
	}

	return &Server{
		Server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"status":         "ok",
		"service":        ServiceName,
		"max_concurrent": 1,
	})
}

// clientErrors are reported to the caller with their own message
var clientErrors = []struct {
	err    error
	status int
}{
	{model.ErrEmptyInput, http.StatusBadRequest},
	{model.ErrNoCredentials, http.StatusBadRequest},
	{model.ErrInvalidRole, http.StatusBadRequest},
	{model.ErrInvalidSession, http.StatusBadRequest},
	{model.ErrMissingToken, http.StatusBadRequest},
	{model.ErrMissingUserID, http.StatusBadRequest},
	{model.ErrMissingAccount, http.StatusBadRequest},
	{model.ErrRunInProgress, http.StatusConflict},
	{model.ErrClearRejected, http.StatusConflict},
	{model.ErrNoActiveRun, http.StatusConflict},
	{model.ErrUnauthorized, http.StatusUnauthorized},
	{model.ErrLoginNotEnabled, http.StatusInternalServerError},
}

// errorStatus picks the response status and public message for err
func errorStatus(err error) (int, string, bool) {
	for _, c := range clientErrors {
		if errors.Is(err, c.err) {
			return c.status, c.err.Error(), true
		}
	}
	return http.StatusInternalServerError, "internal server error", false
}

// handleError writes err as a JSON error response. Unknown errors are logged
// and hidden from the caller.
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	status, message, known := errorStatus(err)
	if !known {
		apperr.Handle(ctx, err)
	} else {
		ctxlog.From(ctx).Debug("Request rejected", "error", err, "status", status)
	}
	writeError(ctx, w, message, status)
}

// writeError writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, message string, status int) {
	writeJSON(ctx, w, status, map[string]string{
		"error": message,
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}
