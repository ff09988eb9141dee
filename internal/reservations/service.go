package reservations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expohall/internal/booths"
	"expohall/internal/catalog"
	"expohall/internal/notifications"
	"expohall/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrBoothNotFound  = errors.New("booth not found")
	ErrTotalMismatch  = errors.New("total amount does not match booth and service prices")
	ErrUnknownService = errors.New("unknown service code")
	ErrConsentMissing = errors.New("all agreements must be accepted")
)

type Service interface {
	CreateReservation(ctx context.Context, req *CreateReservationRequest) (*Reservation, error)
	ListReservations(ctx context.Context, email string) ([]Reservation, error)
}

type service struct {
	repo     Repository
	booths   booths.Repository
	boothSvc booths.Service
	catalog  catalog.Catalog
	producer notifications.Producer
	log      *logger.Logger
}

// NewService wires the reservation workflow. The producer may be nil; events
// are then skipped.
func NewService(repo Repository, boothRepo booths.Repository, boothSvc booths.Service, cat catalog.Catalog, producer notifications.Producer) Service {
	return &service{
		repo:     repo,
		booths:   boothRepo,
		boothSvc: boothSvc,
		catalog:  cat,
		producer: producer,
		log:      logger.GetDefault().WithComponent("reservations"),
	}
}

func (s *service) CreateReservation(ctx context.Context, req *CreateReservationRequest) (*Reservation, error) {
	if !req.AgreedToTerms || !req.AgreedToParticipation || !req.AgreedToConditions {
		return nil, ErrConsentMissing
	}

	booth, err := s.booths.GetBoothByID(ctx, uint(req.BoothID))
	if err != nil {
		if errors.Is(err, booths.ErrBoothNotFound) {
			return nil, ErrBoothNotFound
		}
		return nil, err
	}
	if !booth.IsAvailable() {
		return nil, ErrBoothConflict
	}

	// The server recomputes the total; the submitted amount must match the
	// booth price plus the selected add-on prices.
	expected, err := s.expectedTotal(ctx, booth, req.Services)
	if err != nil {
		return nil, err
	}
	if expected != req.TotalAmount {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrTotalMismatch, expected, req.TotalAmount)
	}

	reservation := &Reservation{
		ID:          uuid.NewString(),
		BoothID:     booth.ID,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Website:     req.Website,

		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,

		Invoice: InvoiceAddress{
			CompanyName: req.InvoiceAddress.CompanyName,
			Street:      req.InvoiceAddress.Street,
			PostalCode:  req.InvoiceAddress.PostalCode,
			City:        req.InvoiceAddress.City,
			Country:     req.InvoiceAddress.Country,
			NIP:         req.InvoiceAddress.NIP,
		},

		Services:    append([]string{}, req.Services...),
		TotalAmount: req.TotalAmount,

		AgreedToTerms:         req.AgreedToTerms,
		AgreedToParticipation: req.AgreedToParticipation,
		AgreedToConditions:    req.AgreedToConditions,

		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateWithBoothTransition(ctx, reservation); err != nil {
		return nil, err
	}

	s.boothSvc.InvalidateCache(ctx)
	s.log.LogReservationCreated(ctx, reservation.ID, booth.BoothNumber, reservation.CompanyName, reservation.TotalAmount)

	if s.producer != nil {
		event := notifications.NewReservationCreated(reservation.ID, booth.BoothNumber, reservation.CompanyName, reservation.ContactEmail, reservation.TotalAmount)
		if err := s.producer.PublishReservationCreated(ctx, event); err != nil {
			// Best effort: the reservation is committed either way.
			s.log.Warn("failed to publish reservation event", slog.Any("error", err))
		}
	}

	return reservation, nil
}

func (s *service) ListReservations(ctx context.Context, email string) ([]Reservation, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *service) expectedTotal(ctx context.Context, booth *booths.Booth, codes []string) (int, error) {
	total := booth.Price
	if len(codes) == 0 {
		return total, nil
	}

	selected, err := s.catalog.GetServicesByCodes(ctx, codes)
	if err != nil {
		return 0, err
	}
	byCode := make(map[string]catalog.Service, len(selected))
	for _, svc := range selected {
		byCode[svc.ServiceCode] = svc
	}

	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		svc, ok := byCode[code]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownService, code)
		}
		total += svc.Price
	}
	return total, nil
}
