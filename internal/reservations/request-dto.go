package reservations

// CreateReservationRequest is the POST /api/reservations payload. Consent
// booleans are validated in the service layer so the rejection carries a
// readable message instead of a binding error.
type CreateReservationRequest struct {
	BoothID     int64  `json:"boothId" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`

	ContactName  string `json:"contactName" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone" binding:"required"`

	InvoiceAddress InvoiceAddressRequest `json:"invoiceAddress"`

	Services    []string `json:"services"`
	TotalAmount int      `json:"totalAmount" binding:"required"`

	AgreedToTerms         bool `json:"agreedToTerms"`
	AgreedToParticipation bool `json:"agreedToParticipation"`
	AgreedToConditions    bool `json:"agreedToConditions"`
}

type InvoiceAddressRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Street      string `json:"street" binding:"required"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Country     string `json:"country"`
	NIP         string `json:"nip" binding:"required"`
}
