package demote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/model"
)

const maxErrorBody = 1024

// Client calls a remote demotion service endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
	header     http.Header
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets a client-side timeout. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{
			Transport: c.httpClient.Transport,
			Timeout:   timeout,
		}
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCookie attaches a cookie to every request, used to pass an operator session
func WithCookie(cookie *http.Cookie) Option {
	return func(c *Client) {
		c.header.Add("Cookie", cookie.String())
	}
}

// New creates a Client posting to endpoint
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		header:     make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Demote posts req and decodes the JSON response. Non-2xx statuses and
// bodies that are not JSON are returned as errors.
func (c *Client) Demote(ctx context.Context, req *model.DemoteRequest) (*model.DemoteResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal demote request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create demote request", goerr.V("endpoint", c.endpoint))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for k, values := range c.header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, goerr.Wrap(err, "demote request failed", goerr.V("endpoint", c.endpoint))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, goerr.New(fmt.Sprintf("demotion service returned HTTP %d: %s",
			resp.StatusCode, strings.TrimSpace(string(raw))),
			goerr.V("endpoint", c.endpoint))
	}

	if mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && mediaType != "application/json" {
		return nil, goerr.New("demotion service returned non-JSON response",
			goerr.V("content_type", mediaType))
	}

	var out model.DemoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, goerr.Wrap(err, "failed to decode demote response")
	}

	return &out, nil
}
