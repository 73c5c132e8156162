package http_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
)

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginFlow(t *testing.T) {
	env := newTestEnv(t, "s3cret", false, nil)

	resp, _ := env.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	gt.Equal(t, resp.StatusCode, http.StatusUnauthorized)

	resp, body := env.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "s3cret",
	})
	gt.Equal(t, resp.StatusCode, http.StatusOK)
	gt.Equal(t, body["username"], any("admin"))

	sessionID := findCookie(resp.Cookies(), "session_id")
	sessionSecret := findCookie(resp.Cookies(), "session_secret")
	gt.V(t, sessionID).NotNil()
	gt.V(t, sessionSecret).NotNil()
	gt.True(t, sessionID.HttpOnly)
	gt.False(t, sessionID.Secure)

	resp, body = env.do(t, http.MethodGet, "/api/runs/current", nil, sessionID, sessionSecret)
	gt.Equal(t, resp.StatusCode, http.StatusOK)
	gt.Equal(t, body["state"], any("idle"))

	resp, _ = env.do(t, http.MethodPost, "/api/logout", nil, sessionID, sessionSecret)
	gt.Equal(t, resp.StatusCode, http.StatusOK)
	cleared := findCookie(resp.Cookies(), "session_id")
	gt.V(t, cleared).NotNil()
	gt.Equal(t, cleared.Value, "")
	gt.Equal(t, cleared.MaxAge, -1)

	resp, _ = env.do(t, http.MethodGet, "/api/runs/current", nil, sessionID, sessionSecret)
	gt.Equal(t, resp.StatusCode, http.StatusUnauthorized)
}

func TestLoginNotConfigured(t *testing.T) {
	env := newTestEnv(t, "", false, nil)

	resp, body := env.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "",
	})
	gt.Equal(t, resp.StatusCode, http.StatusInternalServerError)
	gt.Equal(t, body["error"], any("admin password not configured"))

	// the run API stays open without a password
	resp, _ = env.do(t, http.MethodGet, "/api/runs/current", nil)
	gt.Equal(t, resp.StatusCode, http.StatusOK)
}

func TestLoginBadBody(t *testing.T) {
	env := newTestEnv(t, "s3cret", false, nil)

	resp, _ := env.do(t, http.MethodPost, "/api/login", "{")
	gt.Equal(t, resp.StatusCode, http.StatusBadRequest)
}
