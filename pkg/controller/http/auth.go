package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
)

// AuthHandler handles operator login endpoints
type AuthHandler struct {
	authUC    interfaces.Auth
	httpsOnly bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC interfaces.Auth, httpsOnly bool) *AuthHandler {
	return &AuthHandler{
		authUC:    authUC,
		httpsOnly: httpsOnly,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin checks operator credentials and sets the session cookies
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.authUC.Login(ctx, req.Username, req.Password)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	h.setSessionCookies(w, session)

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"message":    "logged in",
		"username":   session.Username,
		"expires_at": session.ExpiresAt,
	})
}

// HandleLogout handles logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie(sessionIDCookie); err == nil {
		if err := h.authUC.Logout(ctx, cookie.Value); err != nil {
			ctxlog.From(ctx).Debug("Failed to delete session", "error", err)
		}
	}

	h.clearSessionCookies(w)

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

func (h *AuthHandler) setSessionCookies(w http.ResponseWriter, session *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    session.ID.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.httpsOnly,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     sessionSecretCookie,
		Value:    session.Secret.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.httpsOnly,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})
}

func (h *AuthHandler) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{sessionIDCookie, sessionSecretCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   h.httpsOnly,
			MaxAge:   -1,
		})
	}
}
