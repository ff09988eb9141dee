package notifications

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeReservationCreated EventType = "RESERVATION_CREATED"
)

// ReservationEvent is the message published to Kafka whenever a booth is
// reserved. Downstream workers (confirmation mail, CRM sync) consume it.
type ReservationEvent struct {
	ID            uuid.UUID `json:"id"`
	Type          EventType `json:"type"`
	ReservationID string    `json:"reservation_id"`
	BoothNumber   string    `json:"booth_number"`
	CompanyName   string    `json:"company_name"`
	ContactEmail  string    `json:"contact_email"`
	TotalAmount   int       `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewReservationCreated builds a RESERVATION_CREATED event.
func NewReservationCreated(reservationID, boothNumber, companyName, contactEmail string, totalAmount int) *ReservationEvent {
	return &ReservationEvent{
		ID:            uuid.New(),
		Type:          EventTypeReservationCreated,
		ReservationID: reservationID,
		BoothNumber:   boothNumber,
		CompanyName:   companyName,
		ContactEmail:  contactEmail,
		TotalAmount:   totalAmount,
		CreatedAt:     time.Now().UTC(),
	}
}
