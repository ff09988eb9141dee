// Package gateway is the single HTTP boundary between the client core and
// the remote service. Every request carries the session's bearer token when
// one is present, and every 401 response forces a logout plus a redirect to
// the login entry point. No other component handles session expiry.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"expohall/internal/client/session"
	"expohall/pkg/logger"
)

// APIError is a non-2xx response. Message holds the server's plain-text
// error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports whether the error is a 401 APIError.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Gateway issues authenticated JSON requests against the remote API.
type Gateway struct {
	baseURL        string
	http           *http.Client
	session        *session.Session
	onUnauthorized func()
	log            *logger.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.http = c }
}

// WithUnauthorizedHook sets the redirect hook invoked after a 401 forces a
// logout. The hosting view layer points this at its login route.
func WithUnauthorizedHook(fn func()) Option {
	return func(g *Gateway) { g.onUnauthorized = fn }
}

// New creates a gateway for the given base URL (e.g.
// "http://localhost:8080/api").
func New(baseURL string, sess *session.Session, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		session: sess,
		log:     logger.GetDefault().WithComponent("gateway"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GetJSON issues a GET and decodes the 2xx response body into out.
func (g *Gateway) GetJSON(ctx context.Context, path string, out interface{}) error {
	return g.do(ctx, http.MethodGet, path, nil, out)
}

// PostJSON issues a POST with a JSON body and decodes the 2xx response body
// into out (when out is non-nil).
func (g *Gateway) PostJSON(ctx context.Context, path string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return g.do(ctx, http.MethodPost, path, data, out)
}

func (g *Gateway) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := g.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Session expired or revoked: clear it and send the user to login,
		// then let the original failure propagate to the caller.
		g.log.Warn("session rejected by server, forcing logout",
			slog.String("path", path),
		)
		g.session.Logout()
		if g.onUnauthorized != nil {
			g.onUnauthorized()
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
		}
	}
	return nil
}

// errorMessage turns a non-2xx body into a display message. The contract
// sends plain text.
func errorMessage(body []byte) string {
	return strings.TrimSpace(string(body))
}
