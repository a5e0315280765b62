// Package api is a typed HTTP client for the recipe management backend.
//
// Every call carries the bearer token from the injected session store. No
// retries, caching or timeouts are applied here; callers bound requests
// through their context.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/recipectl/internal/redact"
	"github.com/dshills/recipectl/internal/session"
)

// DefaultBaseURL is the backend origin used when none is configured.
const DefaultBaseURL = "http://localhost:8081"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 * 1024 * 1024 // 10 MiB

// Client issues authenticated requests against one backend origin.
type Client struct {
	baseURL string
	http    *http.Client
	session session.Store
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a Client for baseURL that reads the bearer token from store on
// every request. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, store session.Store, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: store,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// do sends one request and returns the status code and body. Only transport
// failures are returned as errors; status interpretation is left to callers.
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Sent even when no token is stored.
	req.Header.Set("Authorization", "Bearer "+session.Token(c.session))
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.log.Debug("api request", "method", method, "path", path, "headers", redact.Header(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("reading response body: %w", err)}
	}

	c.log.Debug("api response", "method", method, "path", path, "status", resp.StatusCode, "bytes", len(respBytes))
	return resp.StatusCode, respBytes, nil
}

// expect sends a request and turns any status other than want into a
// *StatusError. want == 0 accepts any 2xx status.
func (c *Client) expect(ctx context.Context, method, path string, body any, want int) ([]byte, error) {
	code, respBytes, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	ok := code >= 200 && code < 300
	if want != 0 {
		ok = code == want
	}
	if !ok {
		return nil, &StatusError{Method: method, Path: path, Code: code, Body: truncate(redact.Redact(string(respBytes)), 200)}
	}
	return respBytes, nil
}

// getJSON fetches path and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	respBytes, err := c.expect(ctx, http.MethodGet, path, nil, 0)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("parsing response JSON (GET %s, body: %s): %w", path, truncate(redact.Redact(string(respBytes)), 200), err)
	}
	return nil
}

// truncate limits a string to maxLen runes, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
