package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr            string
	CORSAllowOrigin string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("DEMOTE_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "cors-allow-origin",
			Usage:       "Origin allowed to call the API from a browser (CORS is off when empty)",
			Sources:     cli.EnvVars("DEMOTE_CORS_ALLOW_ORIGIN"),
			Destination: &s.CORSAllowOrigin,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("cors_allow_origin", s.CORSAllowOrigin),
	)
}
