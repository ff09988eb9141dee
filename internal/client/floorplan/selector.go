// Package floorplan translates clicks on the venue diagram into booth
// selections. It supports an authored SVG diagram with embedded booth
// numbers and a procedurally generated placeholder grid for empty stores.
package floorplan

import (
	"errors"
	"fmt"
	"log/slog"

	"expohall/internal/client/store"
	"expohall/pkg/logger"
)

// ErrUnknownBooth reports a diagram click that does not resolve to a booth
// known to the store. Such clicks are logged no-ops, never crashes.
var ErrUnknownBooth = errors.New("booth not known to the store")

// Selector resolves diagram clicks against the store and opens the
// reservation workflow.
type Selector struct {
	store   *store.Store
	diagram *Diagram
	log     *logger.Logger
}

// NewSelector builds a selector. The diagram may be nil when only the
// procedural grid or direct booth-number clicks are used.
func NewSelector(st *store.Store, diagram *Diagram) *Selector {
	return &Selector{
		store:   st,
		diagram: diagram,
		log:     logger.GetDefault().WithComponent("floorplan"),
	}
}

// DisplayBooths returns the booths to render: the store's list, or the
// placeholder grid when nothing has been fetched yet.
func (s *Selector) DisplayBooths() []store.Booth {
	booths := s.store.Booths()
	if len(booths) > 0 {
		return booths
	}
	return ProceduralBooths(DefaultBoothCount)
}

// Click handles a click on a diagram element. The element id is resolved to
// a booth number, the number to a booth, and an available booth becomes the
// store's selection with the workflow open. Unknown targets and unavailable
// booths leave the state untouched.
func (s *Selector) Click(elementID string) error {
	if s.diagram == nil {
		return fmt.Errorf("%w: no diagram attached", ErrUnknownBooth)
	}
	number, ok := s.diagram.ResolveClickTarget(elementID)
	if !ok {
		s.log.Debug("click on non-booth element", slog.String("element_id", elementID))
		return fmt.Errorf("%w: element %s", ErrUnknownBooth, elementID)
	}
	return s.SelectNumber(number)
}

// SelectNumber opens the workflow on the booth with the given number. This
// is the programmatic path used by the procedural grid, with the same
// availability rule as diagram clicks.
func (s *Selector) SelectNumber(number string) error {
	booth, ok := s.store.BoothByNumber(number)
	if !ok {
		// The diagram references a booth the backend does not know about.
		// Diagnostic only; the click is ignored.
		s.log.Warn("diagram references unknown booth", slog.String("booth_number", number))
		return fmt.Errorf("%w: number %s", ErrUnknownBooth, number)
	}

	if booth.Status != store.StatusAvailable {
		return fmt.Errorf("%w: booth %s is %s", store.ErrBoothUnavailable, booth.Number, booth.Status)
	}

	s.store.Select(booth)
	return nil
}
