package store

import "time"

// BoothStatus is the normalized booth state. Only available -> reserved is
// a client-side transition; occupied originates on the server.
type BoothStatus string

const (
	StatusAvailable BoothStatus = "available"
	StatusReserved  BoothStatus = "reserved"
	StatusOccupied  BoothStatus = "occupied"
)

// BoothSize determines the base price tier.
type BoothSize string

const (
	Size1x1 BoothSize = "1x1"
	Size2x1 BoothSize = "2x1"
)

// Booth is a reservable stand. Geometry is consumed only by the floor-plan
// renderer. Price is an integer in the domain currency unit, VAT-exclusive,
// and immutable once fetched.
type Booth struct {
	ID      string
	Number  string
	X       int
	Y       int
	Width   int
	Height  int
	Price   int
	Size    BoothSize
	Status  BoothStatus
	Company string
}

// Service is an optional paid add-on from the fair catalog. Immutable once
// fetched.
type Service struct {
	ID          string
	Name        string
	Description string
	Price       int
	VAT         int
}

// InvoiceAddress is the billing block of a reservation. All fields are
// always present; optional inputs are empty strings, never absent.
type InvoiceAddress struct {
	CompanyName string `json:"companyName"`
	Street      string `json:"street"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Country     string `json:"country"`
	NIP         string `json:"nip"`
}

// Reservation binds a company to one booth plus selected services. Immutable
// after creation; cancellation is out of scope.
type Reservation struct {
	ID          string
	BoothID     string
	CompanyName string
	Industry    string
	Website     string

	ContactName  string
	ContactEmail string
	ContactPhone string

	InvoiceAddress InvoiceAddress

	Services    []string
	TotalAmount int

	AgreedToTerms         bool
	AgreedToParticipation bool
	AgreedToConditions    bool

	CreatedAt time.Time
}

// ReservationRequest is the payload handed to ReserveBooth: everything the
// workflow collected, plus the computed total.
type ReservationRequest struct {
	CompanyName string
	Industry    string
	Website     string

	ContactName  string
	ContactEmail string
	ContactPhone string

	InvoiceAddress InvoiceAddress

	Services    []string
	TotalAmount int

	AgreedToTerms         bool
	AgreedToParticipation bool
	AgreedToConditions    bool
}
