package chatgpt

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/domain/types"
)

const (
	// DefaultBaseURL is the account service endpoint
	DefaultBaseURL = "https://chatgpt.com"
	// DefaultUserAgent is sent when no user agent is configured
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36"

	maxBodyBytes = 4096
)

// Client updates member roles on the account service
type Client struct {
	baseURL    string
	userAgent  string
	headers    map[string]string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the service endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHeaders adds extra request headers
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		headers:    make(map[string]string),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type updateRoleRequest struct {
	Role model.TargetRole `json:"role"`
}

// UpdateUserRole sends the role change. Any HTTP status is returned as a
// result; only a failed round trip is an error.
func (c *Client) UpdateUserRole(ctx context.Context, accessToken string, accountID types.AccountID, userID types.UserID, role model.TargetRole) (*model.UpstreamResult, error) {
	endpoint := c.baseURL + "/backend-api/accounts/" + url.PathEscape(accountID.String()) +
		"/users/" + url.PathEscape(userID.String())

	body, err := json.Marshal(updateRoleRequest{Role: role})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal role update")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("endpoint", endpoint))
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "role update request failed", goerr.V("endpoint", endpoint))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read role update response",
			goerr.V("status", resp.StatusCode))
	}

	return &model.UpstreamResult{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(raw)),
	}, nil
}
