package floorplan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expohall/internal/client/gateway"
	"expohall/internal/client/session"
	"expohall/internal/client/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diagramSVG = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 960 560">
  <g id="hall">
    <g id="booth-7"><rect x="40" y="50" width="70" height="60"/></g>
    <g id="booth-8"><rect x="130" y="50" width="70" height="60"/></g>
    <rect id="entrance" x="0" y="0" width="40" height="560"/>
    <g id="booth-9"><rect x="220" y="50" width="70" height="60"/></g>
  </g>
</svg>`

func newStoreWithBooths(t *testing.T, body string) *store.Store {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	sess := session.New(session.NewMemoryStorage(), server.URL)
	st := store.New(gateway.New(server.URL+"/api", sess))
	require.NoError(t, st.FetchBooths(context.Background()))
	return st
}

func TestProceduralBoothsAreDeterministic(t *testing.T) {
	first := ProceduralBooths(DefaultBoothCount)
	second := ProceduralBooths(DefaultBoothCount)
	require.Len(t, first, 60)
	assert.Equal(t, first, second)
}

func TestProceduralBoothsGridLayout(t *testing.T) {
	booths := ProceduralBooths(DefaultBoothCount)

	// First booth of the second row: one row down, back at the left edge.
	eleventh := booths[10]
	assert.Equal(t, "11", eleventh.Number)
	assert.Equal(t, 40, eleventh.X)
	assert.Equal(t, 130, eleventh.Y)
	assert.Equal(t, 70, eleventh.Width)
	assert.Equal(t, 60, eleventh.Height)

	// Status cycle: multiples of 7 reserved, else multiples of 5 occupied.
	assert.Equal(t, store.StatusReserved, booths[0].Status)
	assert.Equal(t, store.StatusOccupied, booths[5].Status)
	assert.Equal(t, store.StatusAvailable, booths[1].Status)
	assert.Equal(t, store.StatusReserved, booths[35].Status) // 7 wins over 5

	// Alternating price tiers.
	assert.Equal(t, store.Size1x1, booths[0].Size)
	assert.Equal(t, 1300, booths[0].Price)
	assert.Equal(t, store.Size2x1, booths[1].Size)
	assert.Equal(t, 1600, booths[1].Price)
}

func TestParseDiagram(t *testing.T) {
	diagram, err := ParseDiagram(strings.NewReader(diagramSVG))
	require.NoError(t, err)
	assert.Equal(t, 3, diagram.Targets())

	number, ok := diagram.ResolveClickTarget("booth-7")
	require.True(t, ok)
	assert.Equal(t, "7", number)

	_, ok = diagram.ResolveClickTarget("entrance")
	assert.False(t, ok)
	_, ok = diagram.ResolveClickTarget("hall")
	assert.False(t, ok)
}

func TestParseDiagramWithoutBooths(t *testing.T) {
	_, err := ParseDiagram(strings.NewReader(`<svg><rect id="wall"/></svg>`))
	require.Error(t, err)
}

func TestParseDiagramMalformed(t *testing.T) {
	_, err := ParseDiagram(strings.NewReader(`<svg><g id="booth-1">`))
	require.Error(t, err)
}

func TestClickSelectsAvailableBooth(t *testing.T) {
	st := newStoreWithBooths(t, `[
		{"id":7,"boothNumber":"7","price":1300,"size":"1x1","status":"AVAILABLE"},
		{"id":8,"boothNumber":"8","price":1600,"size":"2x1","status":"RESERVED"}
	]`)
	diagram, err := ParseDiagram(strings.NewReader(diagramSVG))
	require.NoError(t, err)

	selector := NewSelector(st, diagram)
	require.NoError(t, selector.Click("booth-7"))

	sel := st.Selection()
	require.True(t, sel.IsOpen())
	booth, ok := sel.Booth()
	require.True(t, ok)
	assert.Equal(t, "7", booth.Number)
}

func TestClickOnUnavailableBoothIsRejected(t *testing.T) {
	st := newStoreWithBooths(t, `[
		{"id":8,"boothNumber":"8","price":1600,"size":"2x1","status":"RESERVED"}
	]`)
	diagram, err := ParseDiagram(strings.NewReader(diagramSVG))
	require.NoError(t, err)

	selector := NewSelector(st, diagram)
	err = selector.Click("booth-8")
	require.ErrorIs(t, err, store.ErrBoothUnavailable)
	assert.False(t, st.Selection().IsOpen())
}

func TestClickOnUnknownTargetIsNoOp(t *testing.T) {
	st := newStoreWithBooths(t, `[
		{"id":7,"boothNumber":"7","price":1300,"size":"1x1","status":"AVAILABLE"}
	]`)
	diagram, err := ParseDiagram(strings.NewReader(diagramSVG))
	require.NoError(t, err)

	selector := NewSelector(st, diagram)

	// Non-booth element.
	err = selector.Click("entrance")
	require.ErrorIs(t, err, ErrUnknownBooth)

	// Booth in the diagram but not in the store.
	err = selector.Click("booth-9")
	require.ErrorIs(t, err, ErrUnknownBooth)

	assert.False(t, st.Selection().IsOpen())
}

func TestClickWithoutDiagram(t *testing.T) {
	st := newStoreWithBooths(t, `[]`)
	selector := NewSelector(st, nil)
	err := selector.Click("booth-7")
	require.ErrorIs(t, err, ErrUnknownBooth)
}

func TestDisplayBoothsFallsBackToGrid(t *testing.T) {
	st := newStoreWithBooths(t, `[]`)
	selector := NewSelector(st, nil)
	assert.Len(t, selector.DisplayBooths(), DefaultBoothCount)

	withData := newStoreWithBooths(t, `[
		{"id":7,"boothNumber":"7","price":1300,"size":"1x1","status":"AVAILABLE"}
	]`)
	assert.Len(t, NewSelector(withData, nil).DisplayBooths(), 1)
}
