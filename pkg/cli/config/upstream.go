package config

import (
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/service/chatgpt"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// UpstreamProfile is the YAML file form of the account service settings
type UpstreamProfile struct {
	BaseURL   string            `yaml:"base_url"`
	UserAgent string            `yaml:"user_agent"`
	Timeout   time.Duration     `yaml:"timeout"`
	Headers   map[string]string `yaml:"headers"`
}

// LoadUpstreamFromFile reads and validates an upstream profile
func LoadUpstreamFromFile(path string) (*UpstreamProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read upstream profile", goerr.V("path", path))
	}

	var profile UpstreamProfile
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return nil, goerr.Wrap(err, "failed to parse upstream profile", goerr.V("path", path))
	}

	if err := profile.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid upstream profile", goerr.V("path", path))
	}

	return &profile, nil
}

// Validate checks the profile fields
func (p *UpstreamProfile) Validate() error {
	if p.BaseURL != "" {
		if err := validateBaseURL(p.BaseURL); err != nil {
			return err
		}
	}
	if p.Timeout < 0 {
		return goerr.New("timeout must not be negative", goerr.V("timeout", p.Timeout))
	}
	for k := range p.Headers {
		if k == "" {
			return goerr.New("header name must not be empty")
		}
	}
	return nil
}

func validateBaseURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return goerr.New("base URL must be an http(s) URL", goerr.V("base_url", s))
	}
	return nil
}

// Upstream holds the account service settings used by the in-process demotion service
type Upstream struct {
	BaseURL     string
	UserAgent   string
	ProfilePath string
}

// Flags returns CLI flags for Upstream configuration
func (u *Upstream) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "upstream-base-url",
			Usage:       "Account service base URL (default " + chatgpt.DefaultBaseURL + ")",
			Category:    "Upstream",
			Sources:     cli.EnvVars("DEMOTE_UPSTREAM_BASE_URL"),
			Destination: &u.BaseURL,
		},
		&cli.StringFlag{
			Name:        "upstream-user-agent",
			Usage:       "User-Agent sent to the account service",
			Category:    "Upstream",
			Sources:     cli.EnvVars("DEMOTE_UPSTREAM_USER_AGENT"),
			Destination: &u.UserAgent,
		},
		&cli.StringFlag{
			Name:        "upstream-config",
			Usage:       "YAML file with upstream settings. Flags take precedence",
			Category:    "Upstream",
			Sources:     cli.EnvVars("DEMOTE_UPSTREAM_CONFIG"),
			Destination: &u.ProfilePath,
		},
	}
}

// Configure merges the profile file and flags into an account service client
func (u *Upstream) Configure() (*chatgpt.Client, error) {
	profile := &UpstreamProfile{}
	if u.ProfilePath != "" {
		loaded, err := LoadUpstreamFromFile(u.ProfilePath)
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	if u.BaseURL != "" {
		if err := validateBaseURL(u.BaseURL); err != nil {
			return nil, err
		}
		profile.BaseURL = u.BaseURL
	}
	if u.UserAgent != "" {
		profile.UserAgent = u.UserAgent
	}

	var opts []chatgpt.Option
	if profile.BaseURL != "" {
		opts = append(opts, chatgpt.WithBaseURL(profile.BaseURL))
	}
	if profile.UserAgent != "" {
		opts = append(opts, chatgpt.WithUserAgent(profile.UserAgent))
	}
	if len(profile.Headers) > 0 {
		opts = append(opts, chatgpt.WithHeaders(profile.Headers))
	}
	if profile.Timeout > 0 {
		opts = append(opts, chatgpt.WithHTTPClient(&http.Client{Timeout: profile.Timeout}))
	}

	return chatgpt.New(opts...), nil
}

// LogValue returns structured log value
func (u Upstream) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", u.BaseURL),
		slog.String("profile", u.ProfilePath),
	)
}
