package config

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/service/demote"
	"github.com/urfave/cli/v3"
)

// Dispatch holds batch run settings
type Dispatch struct {
	Endpoint      string
	Throttle      time.Duration
	Timeout       time.Duration
	SessionID     string
	SessionSecret string
}

// Flags returns CLI flags for Dispatch configuration
func (d *Dispatch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dispatch-endpoint",
			Usage:       "Remote demotion service URL. The in-process service is used when empty",
			Category:    "Dispatch",
			Sources:     cli.EnvVars("DEMOTE_DISPATCH_ENDPOINT"),
			Destination: &d.Endpoint,
		},
		&cli.DurationFlag{
			Name:        "throttle",
			Usage:       "Pause between two dispatches",
			Category:    "Dispatch",
			Value:       model.DefaultThrottleInterval,
			Sources:     cli.EnvVars("DEMOTE_THROTTLE"),
			Destination: &d.Throttle,
		},
		&cli.DurationFlag{
			Name:        "dispatch-timeout",
			Usage:       "Timeout of one remote call, 0 keeps the transport default",
			Category:    "Dispatch",
			Sources:     cli.EnvVars("DEMOTE_DISPATCH_TIMEOUT"),
			Destination: &d.Timeout,
		},
		&cli.StringFlag{
			Name:        "dispatch-session-id",
			Usage:       "Operator session ID sent to a remote service that requires login",
			Category:    "Dispatch",
			Sources:     cli.EnvVars("DEMOTE_DISPATCH_SESSION_ID"),
			Destination: &d.SessionID,
		},
		&cli.StringFlag{
			Name:        "dispatch-session-secret",
			Usage:       "Operator session secret sent to a remote service that requires login",
			Category:    "Dispatch",
			Sources:     cli.EnvVars("DEMOTE_DISPATCH_SESSION_SECRET"),
			Destination: &d.SessionSecret,
		},
	}
}

// Validate checks the endpoint and durations
func (d *Dispatch) Validate() error {
	if d.Throttle < 0 {
		return goerr.New("throttle must not be negative", goerr.V("throttle", d.Throttle))
	}
	if d.Timeout < 0 {
		return goerr.New("dispatch timeout must not be negative", goerr.V("timeout", d.Timeout))
	}
	if d.Endpoint != "" {
		u, err := url.Parse(d.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return goerr.New("dispatch endpoint must be an http(s) URL", goerr.V("endpoint", d.Endpoint))
		}
	}
	return nil
}

// Remote reports whether runs go to a remote demotion service
func (d *Dispatch) Remote() bool {
	return d.Endpoint != ""
}

// Configure returns the client a run dispatches to: the remote service when
// an endpoint is set, otherwise local.
func (d *Dispatch) Configure(local interfaces.DemoteClient) (interfaces.DemoteClient, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !d.Remote() {
		if local == nil {
			return nil, goerr.New("no demotion service available, set --dispatch-endpoint")
		}
		return local, nil
	}

	opts := []demote.Option{demote.WithTimeout(d.Timeout)}
	if d.SessionID != "" && d.SessionSecret != "" {
		opts = append(opts,
			demote.WithCookie(&http.Cookie{Name: "session_id", Value: d.SessionID}),
			demote.WithCookie(&http.Cookie{Name: "session_secret", Value: d.SessionSecret}),
		)
	}
	return demote.New(d.Endpoint, opts...), nil
}

// LogValue returns structured log value
func (d Dispatch) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", d.Endpoint),
		slog.Duration("throttle", d.Throttle),
		slog.Duration("timeout", d.Timeout),
		slog.Bool("has_session", d.SessionID != ""),
	)
}
