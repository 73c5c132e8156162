package config

import (
	"log/slog"

	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Auth holds operator login configuration
type Auth struct {
	AdminUsername    string
	AdminPassword    string
	RequireAPILogin  bool
	SessionHTTPSOnly bool
}

// Flags returns CLI flags for Auth configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "admin-username",
			Usage:       "Operator login username",
			Category:    "Auth",
			Value:       "admin",
			Sources:     cli.EnvVars("DEMOTE_ADMIN_USERNAME"),
			Destination: &a.AdminUsername,
		},
		&cli.StringFlag{
			Name:        "admin-password",
			Usage:       "Operator login password. Login is disabled when empty",
			Category:    "Auth",
			Sources:     cli.EnvVars("DEMOTE_ADMIN_PASSWORD"),
			Destination: &a.AdminPassword,
		},
		&cli.BoolFlag{
			Name:        "require-api-login",
			Usage:       "Require an operator session for the demotion endpoint",
			Category:    "Auth",
			Sources:     cli.EnvVars("DEMOTE_REQUIRE_API_LOGIN"),
			Destination: &a.RequireAPILogin,
		},
		&cli.BoolFlag{
			Name:        "session-https-only",
			Usage:       "Mark session cookies as Secure",
			Category:    "Auth",
			Sources:     cli.EnvVars("DEMOTE_SESSION_HTTPS_ONLY"),
			Destination: &a.SessionHTTPSOnly,
		},
	}
}

// Configure creates the login use case backed by repo
func (a *Auth) Configure(repo interfaces.Repository) *usecase.Auth {
	return usecase.NewAuth(repo, a.AdminUsername, a.AdminPassword)
}

// LogValue returns structured log value. The password is never logged.
func (a Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("admin_username", a.AdminUsername),
		slog.Bool("login_enabled", a.AdminPassword != ""),
		slog.Bool("require_api_login", a.RequireAPILogin),
		slog.Bool("session_https_only", a.SessionHTTPSOnly),
	)
}
