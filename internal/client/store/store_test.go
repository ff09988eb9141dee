package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"expohall/internal/client/gateway"
	"expohall/internal/client/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boothsBody = `[
	{"id":7,"boothNumber":"7","x":40,"y":50,"width":70,"height":60,"price":1300,"size":"1x1","status":"AVAILABLE"},
	{"id":8,"boothNumber":"8","x":130,"y":50,"width":70,"height":60,"price":1600,"size":"2x1","status":"RESERVED","company":"Globex"},
	{"id":9,"boothNumber":"9","x":220,"y":50,"width":70,"height":60,"price":1300,"size":"","status":"Occupied"}
]`

const servicesBody = `[
	{"serviceCode":"catering","name":"Catering package","price":200,"vat":23},
	{"serviceCode":"power","name":"Extra power supply","price":150,"vat":23}
]`

// testBackend is a minimal fake of the remote API, with per-path request
// counters and a swappable reservation outcome.
type testBackend struct {
	mux           *http.ServeMux
	server        *httptest.Server
	boothCalls    atomic.Int64
	serviceCalls  atomic.Int64
	reserveCalls  atomic.Int64
	reserveStatus atomic.Int64
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	b := &testBackend{mux: http.NewServeMux()}
	b.reserveStatus.Store(http.StatusCreated)

	b.mux.HandleFunc("/api/booths", func(w http.ResponseWriter, r *http.Request) {
		b.boothCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(boothsBody))
	})
	b.mux.HandleFunc("/api/services", func(w http.ResponseWriter, r *http.Request) {
		b.serviceCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(servicesBody))
	})
	b.mux.HandleFunc("/api/reservations", func(w http.ResponseWriter, r *http.Request) {
		b.reserveCalls.Add(1)
		status := int(b.reserveStatus.Load())
		if status != http.StatusCreated {
			http.Error(w, "booth is already reserved", status)
			return
		}

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		payload["id"] = "res-1"
		payload["createdAt"] = "2026-08-28T12:00:00Z"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	})

	b.server = httptest.NewServer(b.mux)
	t.Cleanup(b.server.Close)
	return b
}

func newTestStore(t *testing.T, backend *testBackend) (*Store, *session.Session) {
	t.Helper()
	sess := session.New(session.NewMemoryStorage(), backend.server.URL)
	gw := gateway.New(backend.server.URL+"/api", sess)
	return New(gw), sess
}

func demoRequest() ReservationRequest {
	return ReservationRequest{
		CompanyName:  "Acme Robotics",
		ContactName:  "Ada Lovelace",
		ContactEmail: "ada@acme.example",
		ContactPhone: "+48 600 100 200",
		InvoiceAddress: InvoiceAddress{
			CompanyName: "Acme Robotics Sp. z o.o.",
			Street:      "Targowa 1",
			NIP:         "5260001246",
		},
		Services:    []string{},
		TotalAmount: 1300,

		AgreedToTerms:         true,
		AgreedToParticipation: true,
		AgreedToConditions:    true,
	}
}

func TestFetchBoothsNormalizes(t *testing.T) {
	backend := newTestBackend(t)
	st, _ := newTestStore(t, backend)

	require.NoError(t, st.FetchBooths(context.Background()))
	booths := st.Booths()
	require.Len(t, booths, 3)

	// Numeric ids become strings, statuses lowercase, unknown size is 1x1.
	assert.Equal(t, "7", booths[0].ID)
	assert.Equal(t, StatusAvailable, booths[0].Status)
	assert.Equal(t, Size1x1, booths[0].Size)

	assert.Equal(t, "8", booths[1].ID)
	assert.Equal(t, StatusReserved, booths[1].Status)
	assert.Equal(t, Size2x1, booths[1].Size)
	assert.Equal(t, "Globex", booths[1].Company)

	assert.Equal(t, StatusOccupied, booths[2].Status)
	assert.Equal(t, Size1x1, booths[2].Size)

	assert.False(t, st.Loading())
	assert.Empty(t, st.Err())
}

func TestFetchServicesMapsServiceCode(t *testing.T) {
	backend := newTestBackend(t)
	st, _ := newTestStore(t, backend)

	require.NoError(t, st.FetchServices(context.Background()))
	services := st.Services()
	require.Len(t, services, 2)
	assert.Equal(t, "catering", services[0].ID)
	assert.Equal(t, 200, services[0].Price)
	assert.Equal(t, 23, services[0].VAT)
}

func TestFetchFailureKeepsPreviousList(t *testing.T) {
	backend := newTestBackend(t)
	st, _ := newTestStore(t, backend)
	require.NoError(t, st.FetchBooths(context.Background()))

	// Swap the booth endpoint to failure mode by pointing the store at a
	// dead path through a fresh backend that always errors.
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database unavailable", http.StatusInternalServerError)
	}))
	defer failing.Close()
	sess := session.New(session.NewMemoryStorage(), failing.URL)
	st.gw = gateway.New(failing.URL+"/api", sess)

	err := st.FetchBooths(context.Background())
	require.Error(t, err)

	assert.Len(t, st.Booths(), 3)
	assert.False(t, st.Loading())
	assert.Contains(t, st.Err(), "failed to load booths")
}

func TestEnsureLoadedIsIdempotent(t *testing.T) {
	backend := newTestBackend(t)
	st, _ := newTestStore(t, backend)

	require.NoError(t, st.EnsureLoaded(context.Background()))
	require.NoError(t, st.EnsureLoaded(context.Background()))

	assert.Equal(t, int64(1), backend.boothCalls.Load())
	assert.Equal(t, int64(1), backend.serviceCalls.Load())
	assert.Len(t, st.Booths(), 3)
	assert.Len(t, st.Services(), 2)
}

func TestReserveBoothSuccessPatchesExactlyOneBooth(t *testing.T) {
	backend := newTestBackend(t)
	st, _ := newTestStore(t, backend)
	require.NoError(t, st.EnsureLoaded(context.Background()))

	notified := 0
	cancel := st.Subscribe(func() { notified++ })
	defer cancel()

	reservation, err := st.ReserveBooth(context.Background(), "7", demoRequest())
	require.NoError(t, err)
	require.NotNil(t, reservation)
	assert.Equal(t, "res-1", reservation.ID)
	assert.Equal(t, "7", reservation.BoothID)
	assert.Equal(t, 1300, reservation.TotalAmount)

	booths := st.Booths()
	assert.Equal(t, StatusReserved, booths[0].Status)
	assert.Equal(t, "Acme Robotics", booths[0].Company)
	// The other booths are untouched.
	assert.Equal(t, StatusReserved, booths[1].Status)
	assert.Equal(t, "Globex", booths[1].Company)
	assert.Equal(t, StatusOccupied, booths[2].Status)

	stored, ok := st.ReservationByBoothID("7")
	require.True(t, ok)
	assert.Equal(t, "res-1", stored.ID)

	assert.False(t, st.Loading())
	assert.Empty(t, st.Err())
	assert.Greater(t, notified, 0)
}

func TestReserveBoothUnavailablePrecondition(t *testing.T) {
	backend := newTestBackend(t)
	st, _ := newTestStore(t, backend)
	require.NoError(t, st.EnsureLoaded(context.Background()))

	_, err := st.ReserveBooth(context.Background(), "8", demoRequest())
	require.ErrorIs(t, err, ErrBoothUnavailable)

	// The doomed request never left the client.
	assert.Equal(t, int64(0), backend.reserveCalls.Load())
	assert.Equal(t, StatusReserved, st.Booths()[1].Status)
}

func TestReserveBoothUnknownID(t *testing.T) {
	backend := newTestBackend(t)
	st, _ := newTestStore(t, backend)
	require.NoError(t, st.EnsureLoaded(context.Background()))

	_, err := st.ReserveBooth(context.Background(), "999", demoRequest())
	require.ErrorIs(t, err, ErrBoothNotFound)
	assert.Equal(t, int64(0), backend.reserveCalls.Load())
}

func TestReserveBoothConflictKeepsState(t *testing.T) {
	backend := newTestBackend(t)
	st, _ := newTestStore(t, backend)
	require.NoError(t, st.EnsureLoaded(context.Background()))

	backend.reserveStatus.Store(http.StatusConflict)

	_, err := st.ReserveBooth(context.Background(), "7", demoRequest())
	require.Error(t, err)

	// Booth stays available, no reservation recorded, error text surfaced.
	assert.Equal(t, StatusAvailable, st.Booths()[0].Status)
	assert.Empty(t, st.Reservations())
	assert.Equal(t, "booth is already reserved", st.Err())
	assert.False(t, st.Loading())
}

func TestReserveBoothUnauthorizedClearsSession(t *testing.T) {
	backend := newTestBackend(t)
	st, sess := newTestStore(t, backend)
	require.NoError(t, st.EnsureLoaded(context.Background()))

	backend.reserveStatus.Store(http.StatusUnauthorized)

	_, err := st.ReserveBooth(context.Background(), "7", demoRequest())
	require.Error(t, err)
	assert.True(t, gateway.IsUnauthorized(err))

	// Session cleared by the gateway, booth list untouched.
	_, hasToken := sess.Token()
	assert.False(t, hasToken)
	assert.Equal(t, StatusAvailable, st.Booths()[0].Status)
	assert.Empty(t, st.Reservations())
}

func TestSelectionOpensAndCloses(t *testing.T) {
	backend := newTestBackend(t)
	st, _ := newTestStore(t, backend)
	require.NoError(t, st.FetchBooths(context.Background()))

	booth, ok := st.BoothByNumber("7")
	require.True(t, ok)

	st.Select(booth)
	sel := st.Selection()
	require.True(t, sel.IsOpen())
	selected, ok := sel.Booth()
	require.True(t, ok)
	assert.Equal(t, "7", selected.ID)

	st.CloseSelection()
	sel = st.Selection()
	assert.False(t, sel.IsOpen())
	_, ok = sel.Booth()
	assert.False(t, ok)
}

func TestLookups(t *testing.T) {
	backend := newTestBackend(t)
	st, _ := newTestStore(t, backend)
	require.NoError(t, st.FetchBooths(context.Background()))

	byID, ok := st.BoothByID("8")
	require.True(t, ok)
	assert.Equal(t, "8", byID.Number)

	_, ok = st.BoothByID("999")
	assert.False(t, ok)

	_, ok = st.BoothByNumber("999")
	assert.False(t, ok)

	_, ok = st.ReservationByBoothID("7")
	assert.False(t, ok)
}
