package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		claims    jwt.MapClaims // nil means no token stored
		rawToken  string        // overrides claims when set
		expMillis string
		want      bool
	}{
		{
			name: "no token is expired",
			want: true,
		},
		{
			name:     "malformed token is expired",
			rawToken: "not.a.jwt",
			want:     true,
		},
		{
			name:   "future exp claim is live",
			claims: jwt.MapClaims{"sub": "a@b.co", "exp": now.Add(time.Hour).Unix()},
			want:   false,
		},
		{
			name:   "past exp claim is expired",
			claims: jwt.MapClaims{"sub": "a@b.co", "exp": now.Add(-time.Hour).Unix()},
			want:   true,
		},
		{
			name:      "no exp claim falls back to stored expiry",
			claims:    jwt.MapClaims{"sub": "a@b.co"},
			expMillis: strconv.FormatInt(now.Add(time.Hour).UnixMilli(), 10),
			want:      false,
		},
		{
			name:      "no exp claim with past stored expiry is expired",
			claims:    jwt.MapClaims{"sub": "a@b.co"},
			expMillis: strconv.FormatInt(now.Add(-time.Hour).UnixMilli(), 10),
			want:      true,
		},
		{
			name:   "no exp claim and no stored expiry is live",
			claims: jwt.MapClaims{"sub": "a@b.co"},
			want:   false,
		},
		{
			name:      "garbage stored expiry is expired",
			claims:    jwt.MapClaims{"sub": "a@b.co"},
			expMillis: "soon",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := NewMemoryStorage()

			if tt.rawToken != "" {
				require.NoError(t, storage.Set(KeyToken, tt.rawToken))
			} else if tt.claims != nil {
				require.NoError(t, storage.Set(KeyToken, mintToken(t, tt.claims)))
			}
			if tt.expMillis != "" {
				require.NoError(t, storage.Set(KeyExpires, tt.expMillis))
			}

			sess := New(storage, "http://unused", WithClock(fixedClock(now)))
			assert.Equal(t, tt.want, sess.IsExpired())
		})
	}
}

func TestExpClaimWinsOverStoredExpiry(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	storage := NewMemoryStorage()

	// Token says expired; stored value says live. The claim wins.
	require.NoError(t, storage.Set(KeyToken, mintToken(t, jwt.MapClaims{
		"sub": "a@b.co", "exp": now.Add(-time.Minute).Unix(),
	})))
	require.NoError(t, storage.Set(KeyExpires, strconv.FormatInt(now.Add(time.Hour).UnixMilli(), 10)))

	sess := New(storage, "http://unused", WithClock(fixedClock(now)))
	assert.True(t, sess.IsExpired())
}

func TestCurrentSubject(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("returns sub claim while live", func(t *testing.T) {
		storage := NewMemoryStorage()
		require.NoError(t, storage.Set(KeyToken, mintToken(t, jwt.MapClaims{
			"sub": "exhibitor@example.com", "exp": now.Add(time.Hour).Unix(),
		})))

		sess := New(storage, "http://unused", WithClock(fixedClock(now)))
		subject, ok := sess.CurrentSubject()
		require.True(t, ok)
		assert.Equal(t, "exhibitor@example.com", subject)
	})

	t.Run("expired token has no subject", func(t *testing.T) {
		storage := NewMemoryStorage()
		require.NoError(t, storage.Set(KeyToken, mintToken(t, jwt.MapClaims{
			"sub": "exhibitor@example.com", "exp": now.Add(-time.Hour).Unix(),
		})))

		sess := New(storage, "http://unused", WithClock(fixedClock(now)))
		_, ok := sess.CurrentSubject()
		assert.False(t, ok)
	})

	t.Run("no token has no subject", func(t *testing.T) {
		sess := New(NewMemoryStorage(), "http://unused", WithClock(fixedClock(now)))
		_, ok := sess.CurrentSubject()
		assert.False(t, ok)
	})
}

func TestLoginPersistsTokenAndNotifies(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	token := mintToken(t, jwt.MapClaims{"sub": "exhibitor@example.com", "exp": now.Add(time.Hour).Unix()})
	expires := now.Add(time.Hour).UnixMilli()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"` + token + `","expiresAtMillis":` + strconv.FormatInt(expires, 10) + `}`))
	}))
	defer server.Close()

	storage := NewMemoryStorage()
	sess := New(storage, server.URL, WithClock(fixedClock(now)))

	notified := 0
	cancel := sess.Subscribe(func() { notified++ })
	defer cancel()

	res, err := sess.Login(context.Background(), "exhibitor@example.com", "changeme1")
	require.NoError(t, err)
	assert.Equal(t, token, res.Token)
	assert.Equal(t, expires, res.ExpiresAtMillis)
	assert.Equal(t, 1, notified)

	stored, ok := storage.Get(KeyToken)
	require.True(t, ok)
	assert.Equal(t, token, stored)
	storedExpires, ok := storage.Get(KeyExpires)
	require.True(t, ok)
	assert.Equal(t, strconv.FormatInt(expires, 10), storedExpires)

	assert.False(t, sess.IsExpired())
	subject, ok := sess.CurrentSubject()
	require.True(t, ok)
	assert.Equal(t, "exhibitor@example.com", subject)
}

func TestLoginRejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
	}))
	defer server.Close()

	storage := NewMemoryStorage()
	sess := New(storage, server.URL)

	_, err := sess.Login(context.Background(), "exhibitor@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := storage.Get(KeyToken)
	assert.False(t, ok)
}

func TestRegisterConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "email already registered", http.StatusConflict)
	}))
	defer server.Close()

	sess := New(NewMemoryStorage(), server.URL)
	err := sess.Register(context.Background(), "taken@example.com", "changeme1", "Taken")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogoutClearsBothKeysAndIsIdempotent(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(KeyToken, "some-token"))
	require.NoError(t, storage.Set(KeyExpires, "12345"))

	sess := New(storage, "http://unused")
	notified := 0
	cancel := sess.Subscribe(func() { notified++ })
	defer cancel()

	sess.Logout()
	_, hasToken := storage.Get(KeyToken)
	_, hasExpires := storage.Get(KeyExpires)
	assert.False(t, hasToken)
	assert.False(t, hasExpires)
	assert.True(t, sess.IsExpired())

	// Second logout with nothing stored is a no-op that still broadcasts.
	sess.Logout()
	assert.Equal(t, 2, notified)
}

func TestFileStorageRoundTrip(t *testing.T) {
	path := t.TempDir() + "/session.json"
	storage := NewFileStorage(path)

	require.NoError(t, storage.Set(KeyToken, "abc"))
	require.NoError(t, storage.Set(KeyExpires, "123"))

	// A fresh instance reads what the first wrote.
	reopened := NewFileStorage(path)
	v, ok := reopened.Get(KeyToken)
	require.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, reopened.Remove(KeyToken))
	_, ok = reopened.Get(KeyToken)
	assert.False(t, ok)
	v, ok = reopened.Get(KeyExpires)
	require.True(t, ok)
	assert.Equal(t, "123", v)
}
