package reservations

import (
	"context"
	"errors"

	"expohall/internal/booths"

	"gorm.io/gorm"
)

// ErrBoothConflict is returned when the booth is no longer available at
// commit time.
var ErrBoothConflict = errors.New("booth is no longer available")

type Repository interface {
	// CreateWithBoothTransition persists the reservation and flips the booth
	// to RESERVED in one transaction. Fails with ErrBoothConflict when the
	// booth left the AVAILABLE state in the meantime.
	CreateWithBoothTransition(ctx context.Context, reservation *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListByEmail(ctx context.Context, email string) ([]Reservation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithBoothTransition(ctx context.Context, reservation *Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conditional update doubles as the conflict check: zero rows means
		// the booth was taken between the read and this commit.
		res := tx.Model(&booths.Booth{}).
			Where("id = ? AND status = ?", reservation.BoothID, booths.StatusAvailable).
			Updates(map[string]interface{}{
				"status":  booths.StatusReserved,
				"company": reservation.CompanyName,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBoothConflict
		}

		return tx.Create(reservation).Error
	})
}

func (r *repository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).First(&reservation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) ListByEmail(ctx context.Context, email string) ([]Reservation, error) {
	var list []Reservation
	err := r.db.WithContext(ctx).
		Where("contact_email = ?", email).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}
