package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"expohall/internal/client/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerAttachedWhenSessionHasToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Set(session.KeyToken, "tok-123"))
	sess := session.New(storage, server.URL)

	gw := New(server.URL+"/api", sess)
	var out map[string]bool
	require.NoError(t, gw.GetJSON(context.Background(), "/booths", &out))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.True(t, out["ok"])
}

func TestBearerOmittedWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	sess := session.New(session.NewMemoryStorage(), server.URL)
	gw := New(server.URL+"/api", sess)

	var out []struct{}
	require.NoError(t, gw.GetJSON(context.Background(), "/booths", &out))
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedForcesLogoutAndHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer server.Close()

	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Set(session.KeyToken, "stale-token"))
	require.NoError(t, storage.Set(session.KeyExpires, "12345"))
	sess := session.New(storage, server.URL)

	redirected := false
	gw := New(server.URL+"/api", sess, WithUnauthorizedHook(func() { redirected = true }))

	err := gw.GetJSON(context.Background(), "/reservations", nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Message)

	assert.True(t, redirected)
	_, hasToken := storage.Get(session.KeyToken)
	_, hasExpires := storage.Get(session.KeyExpires)
	assert.False(t, hasToken)
	assert.False(t, hasExpires)
}

func TestNonSuccessBodyBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "booth is already reserved", http.StatusConflict)
	}))
	defer server.Close()

	sess := session.New(session.NewMemoryStorage(), server.URL)
	gw := New(server.URL+"/api", sess)

	err := gw.PostJSON(context.Background(), "/reservations", map[string]int{"boothId": 7}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "booth is already reserved", apiErr.Message)
	assert.Equal(t, "booth is already reserved", apiErr.Error())
	assert.False(t, IsUnauthorized(err))
}

func TestPostJSONSendsBodyAndDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"r-1"}`))
	}))
	defer server.Close()

	sess := session.New(session.NewMemoryStorage(), server.URL)
	gw := New(server.URL+"/api", sess)

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, gw.PostJSON(context.Background(), "/reservations", map[string]string{"companyName": "Acme"}, &out))
	assert.Equal(t, "r-1", out.ID)
}
