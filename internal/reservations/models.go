package reservations

import "time"

// InvoiceAddress is the billing block embedded in a reservation. Every field
// is always present on the wire; optional inputs arrive as empty strings.
type InvoiceAddress struct {
	CompanyName string `json:"companyName"`
	Street      string `json:"street"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Country     string `json:"country"`
	NIP         string `gorm:"column:nip" json:"nip"`
}

// Reservation binds a company to one booth plus selected add-on services and
// billing details. Immutable after creation; cancellation is a stub.
type Reservation struct {
	ID          string `gorm:"primaryKey" json:"id"`
	BoothID     uint   `gorm:"index;not null" json:"boothId"`
	CompanyName string `gorm:"not null" json:"companyName"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`

	ContactName  string `gorm:"not null" json:"contactName"`
	ContactEmail string `gorm:"not null" json:"contactEmail"`
	ContactPhone string `gorm:"not null" json:"contactPhone"`

	Invoice InvoiceAddress `gorm:"embedded;embeddedPrefix:invoice_" json:"invoiceAddress"`

	Services    []string `gorm:"serializer:json" json:"services"`
	TotalAmount int      `gorm:"not null" json:"totalAmount"`

	AgreedToTerms         bool `gorm:"not null" json:"agreedToTerms"`
	AgreedToParticipation bool `gorm:"not null" json:"agreedToParticipation"`
	AgreedToConditions    bool `gorm:"not null" json:"agreedToConditions"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName sets the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}
