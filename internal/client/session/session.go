// Package session holds the client's bearer token and expiry in a pluggable
// storage backend and exposes the auth endpoints of the remote service.
//
// The read operations (Token, IsExpired, CurrentSubject) are pure functions
// of the storage contents and never perform I/O. Malformed tokens are
// reported as expired or subject-less, never as a panic.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Fixed storage keys, shared with every storage backend.
const (
	KeyToken   = "token"
	KeyExpires = "token_expires"
)

var (
	// ErrInvalidCredentials reports a rejected login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken reports a registration with an already-registered email.
	ErrEmailTaken = errors.New("email is already registered")
)

// AuthResponse is the login payload returned by the auth endpoint.
type AuthResponse struct {
	Token           string `json:"token"`
	ExpiresAtMillis int64  `json:"expiresAtMillis"`
}

// Session manages the persisted bearer token. Safe for concurrent use.
type Session struct {
	storage Storage
	baseURL string
	http    *http.Client
	now     func() time.Time

	mu      sync.Mutex
	subs    map[int]func()
	nextSub int
}

// Option configures a Session.
type Option func(*Session)

// WithHTTPClient replaces the HTTP client used for login/register calls.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) { s.http = c }
}

// WithClock replaces the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session bound to a storage backend and the auth base URL
// (e.g. "http://localhost:8080").
func New(storage Storage, baseURL string, opts ...Option) *Session {
	s := &Session{
		storage: storage,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		now:     time.Now,
		subs:    make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a callback fired after every session change (login,
// logout). The returned function cancels the subscription.
func (s *Session) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Session) notify() {
	s.mu.Lock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Login authenticates against the remote service and persists the returned
// token and expiry. Broadcasts a session change on success.
func (s *Session) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body, status, err := s.postJSON(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if status == http.StatusUnauthorized || status == http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, string(body))
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("login failed with status %d: %s", status, string(body))
	}

	var res AuthResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("malformed login response: %w", err)
	}

	if err := s.storage.Set(KeyToken, res.Token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.storage.Set(KeyExpires, strconv.FormatInt(res.ExpiresAtMillis, 10)); err != nil {
		return nil, fmt.Errorf("failed to persist token expiry: %w", err)
	}

	s.notify()
	return &res, nil
}

// Register creates an account. It does not authenticate; call Login
// afterwards.
func (s *Session) Register(ctx context.Context, email, password, name string) error {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}
	if name != "" {
		payload["name"] = name
	}

	body, status, err := s.postJSON(ctx, "/api/auth/register", payload)
	if err != nil {
		return fmt.Errorf("registration request failed: %w", err)
	}
	switch {
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrEmailTaken, email)
	case status < 200 || status >= 300:
		return fmt.Errorf("registration failed with status %d: %s", status, string(body))
	}
	return nil
}

// Logout clears the persisted token and expiry and broadcasts a session
// change. Idempotent: calling with no active session is safe.
func (s *Session) Logout() {
	// Remove both keys regardless of individual errors so a partial failure
	// never leaves a token without its expiry.
	_ = s.storage.Remove(KeyToken)
	_ = s.storage.Remove(KeyExpires)
	s.notify()
}

// Token returns the persisted bearer token, if any.
func (s *Session) Token() (string, bool) {
	token, ok := s.storage.Get(KeyToken)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// IsExpired reports whether the session should be treated as expired. The
// token's exp claim wins when decodable; otherwise the stored expiry
// timestamp is consulted. No token, or a token that cannot be decoded, is
// expired (fail-safe: not authenticated).
func (s *Session) IsExpired() bool {
	token, ok := s.Token()
	if !ok {
		return true
	}

	claims, err := decodeClaims(token)
	if err != nil {
		return true
	}

	if exp, ok := numericClaim(claims, "exp"); ok {
		return s.now().After(time.Unix(exp, 0))
	}

	// No exp claim: fall back to the expiry stored at login time.
	stored, ok := s.storage.Get(KeyExpires)
	if !ok || stored == "" {
		return false
	}
	millis, err := strconv.ParseInt(stored, 10, 64)
	if err != nil {
		return true
	}
	return s.now().After(time.UnixMilli(millis))
}

// CurrentSubject returns the token's subject claim (the user's email).
// Absent, malformed or expired tokens yield ok=false.
func (s *Session) CurrentSubject() (string, bool) {
	if s.IsExpired() {
		return "", false
	}
	token, ok := s.Token()
	if !ok {
		return "", false
	}
	claims, err := decodeClaims(token)
	if err != nil {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}

// decodeClaims extracts JWT claims without verifying the signature. The
// client never holds the signing secret; validity is the server's concern.
func decodeClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func numericClaim(claims jwt.MapClaims, key string) (int64, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func (s *Session) postJSON(ctx context.Context, path string, payload interface{}) ([]byte, int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
