// Package store is the authoritative client-side state container: booth
// inventory, service catalog, the current user's reservations, and the
// transient UI state around them (selection, loading flag, last error).
//
// Mutations are applied as discrete, non-interleaved steps under one mutex.
// State updates land in the order their operations complete, not the order
// they were issued; a slow fetch resolving after a faster later one can
// overwrite it. That matches the remote-list semantics callers expect: a
// manual re-fetch is the recovery path, not a sequencing layer.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"expohall/internal/client/gateway"
	"expohall/pkg/logger"
)

var (
	// ErrBoothNotFound reports a reserve attempt against an unknown booth id.
	ErrBoothNotFound = errors.New("booth not found")
	// ErrBoothUnavailable reports a reserve attempt against a booth that is
	// not in the available state. The server remains the authority for real
	// conflicts; this check only avoids a doomed round trip.
	ErrBoothUnavailable = errors.New("booth is not available")
)

// Selection is the modal state: either closed, or open on one booth. The
// two cannot diverge; closing clears the booth by construction.
type Selection struct {
	booth *Booth
}

// IsOpen reports whether a reservation workflow is open.
func (s Selection) IsOpen() bool {
	return s.booth != nil
}

// Booth returns the selected booth when the selection is open.
func (s Selection) Booth() (Booth, bool) {
	if s.booth == nil {
		return Booth{}, false
	}
	return *s.booth, true
}

// Store owns the reservation state. Safe for concurrent use.
type Store struct {
	gw  *gateway.Gateway
	log *logger.Logger

	mu           sync.Mutex
	booths       []Booth
	services     []Service
	reservations []Reservation

	selection Selection
	loading   bool
	lastErr   string

	boothsLoaded   bool
	servicesLoaded bool

	subs    map[int]func()
	nextSub int
}

// New creates a store backed by the given API gateway.
func New(gw *gateway.Gateway) *Store {
	return &Store{
		gw:   gw,
		log:  logger.GetDefault().WithComponent("store"),
		subs: make(map[int]func()),
	}
}

// Subscribe registers a callback fired after every state change. The
// returned function cancels the subscription.
func (s *Store) Subscribe(fn func()) (cancel func()) {
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

func (s *Store) notifyLocked() []func() {
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

// update applies one mutation step and fires subscribers afterwards.
func (s *Store) update(fn func()) {
	s.mu.Lock()
	fn()
	subs := s.notifyLocked()
	s.mu.Unlock()

	for _, sub := range subs {
		sub()
	}
}

// FetchBooths replaces the booth list wholesale from the remote source.
// On failure the previous list is left intact and Err() carries a
// human-readable message.
func (s *Store) FetchBooths(ctx context.Context) error {
	s.update(func() {
		s.loading = true
		s.lastErr = ""
	})

	var dtos []boothDTO
	err := s.gw.GetJSON(ctx, "/booths", &dtos)
	if err != nil {
		s.update(func() {
			s.loading = false
			s.lastErr = fmt.Sprintf("failed to load booths: %v", err)
		})
		return err
	}

	booths := make([]Booth, 0, len(dtos))
	for _, dto := range dtos {
		booths = append(booths, dto.toBooth())
	}

	s.update(func() {
		s.booths = booths
		s.boothsLoaded = true
		s.loading = false
	})
	return nil
}

// FetchServices replaces the service catalog wholesale from the remote
// source.
func (s *Store) FetchServices(ctx context.Context) error {
	s.update(func() {
		s.loading = true
		s.lastErr = ""
	})

	var dtos []serviceDTO
	err := s.gw.GetJSON(ctx, "/services", &dtos)
	if err != nil {
		s.update(func() {
			s.loading = false
			s.lastErr = fmt.Sprintf("failed to load services: %v", err)
		})
		return err
	}

	services := make([]Service, 0, len(dtos))
	for _, dto := range dtos {
		services = append(services, dto.toService())
	}

	s.update(func() {
		s.services = services
		s.servicesLoaded = true
		s.loading = false
	})
	return nil
}

// EnsureLoaded fetches booths and services only when they have never been
// loaded. Idempotent: safe to call from every entry point.
func (s *Store) EnsureLoaded(ctx context.Context) error {
	s.mu.Lock()
	needBooths := !s.boothsLoaded
	needServices := !s.servicesLoaded
	s.mu.Unlock()

	if needBooths {
		if err := s.FetchBooths(ctx); err != nil {
			return err
		}
	}
	if needServices {
		if err := s.FetchServices(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ReserveBooth submits a reservation for the given booth. The booth must
// currently be available; otherwise the call fails before touching the
// network. On success the returned reservation is appended and exactly that
// booth flips to reserved with the submitted company name. On failure the
// server's error text is recorded and the error re-raised so the workflow
// can keep its form open.
//
// At-most-once per submission is the caller's duty: disable the submit
// control while Loading() is true.
func (s *Store) ReserveBooth(ctx context.Context, boothID string, data ReservationRequest) (*Reservation, error) {
	s.mu.Lock()
	booth := s.findBoothByIDLocked(boothID)
	if booth == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrBoothNotFound, boothID)
	}
	if booth.Status != StatusAvailable {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: booth %s is %s", ErrBoothUnavailable, booth.Number, booth.Status)
	}
	s.mu.Unlock()

	numericID, err := strconv.ParseInt(boothID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBoothNotFound, boothID)
	}

	s.update(func() {
		s.loading = true
		s.lastErr = ""
	})

	payload := reservationPayload{
		BoothID:     numericID,
		CompanyName: data.CompanyName,
		Industry:    data.Industry,
		Website:     data.Website,

		ContactName:  data.ContactName,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,

		InvoiceAddress: data.InvoiceAddress,

		Services:    data.Services,
		TotalAmount: data.TotalAmount,

		AgreedToTerms:         data.AgreedToTerms,
		AgreedToParticipation: data.AgreedToParticipation,
		AgreedToConditions:    data.AgreedToConditions,
	}
	if payload.Services == nil {
		payload.Services = []string{}
	}

	var dto reservationDTO
	if err := s.gw.PostJSON(ctx, "/reservations", payload, &dto); err != nil {
		s.update(func() {
			s.loading = false
			s.lastErr = err.Error()
		})
		return nil, err
	}

	reservation := dto.toReservation()
	s.update(func() {
		s.reservations = append(s.reservations, reservation)
		for i := range s.booths {
			if s.booths[i].ID == boothID {
				s.booths[i].Status = StatusReserved
				s.booths[i].Company = data.CompanyName
				break
			}
		}
		s.loading = false
	})

	s.log.Info("booth reserved",
		slog.String("booth_id", boothID),
		slog.String("reservation_id", reservation.ID),
		slog.Int("total_amount", reservation.TotalAmount),
	)
	return &reservation, nil
}

// Select opens the reservation workflow on a booth.
func (s *Store) Select(booth Booth) {
	s.update(func() {
		b := booth
		s.selection = Selection{booth: &b}
	})
}

// CloseSelection closes the workflow and clears the selected booth. The two
// always change together.
func (s *Store) CloseSelection() {
	s.update(func() {
		s.selection = Selection{}
	})
}

// Selection returns the current modal state.
func (s *Store) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Loading reports whether a mutating operation is in flight. UI consumers
// disable triggering controls while true.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded error message, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Booths returns a copy of the booth list.
func (s *Store) Booths() []Booth {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Booth(nil), s.booths...)
}

// Services returns a copy of the service catalog.
func (s *Store) Services() []Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Service(nil), s.services...)
}

// Reservations returns a copy of the reservation list.
func (s *Store) Reservations() []Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Reservation(nil), s.reservations...)
}

// BoothByID returns the first booth with the given id.
func (s *Store) BoothByID(id string) (Booth, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b := s.findBoothByIDLocked(id); b != nil {
		return *b, true
	}
	return Booth{}, false
}

// BoothByNumber returns the first booth with the given human-facing number.
// Numbers are expected unique.
func (s *Store) BoothByNumber(number string) (Booth, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.booths {
		if s.booths[i].Number == number {
			return s.booths[i], true
		}
	}
	return Booth{}, false
}

// ReservationByBoothID returns the first reservation for the given booth.
func (s *Store) ReservationByBoothID(boothID string) (Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].BoothID == boothID {
			return s.reservations[i], true
		}
	}
	return Reservation{}, false
}

func (s *Store) findBoothByIDLocked(id string) *Booth {
	for i := range s.booths {
		if s.booths[i].ID == id {
			return &s.booths[i]
		}
	}
	return nil
}
