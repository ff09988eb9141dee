package store

import (
	"strconv"
	"strings"
	"time"
)

// Wire shapes of the remote contract. Server ids are numeric; the store
// normalizes them to strings.

type boothDTO struct {
	ID          int64  `json:"id"`
	BoothNumber string `json:"boothNumber"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Price       int    `json:"price"`
	Size        string `json:"size"`
	Status      string `json:"status"`
	Company     string `json:"company"`
}

func (d boothDTO) toBooth() Booth {
	size := Size1x1
	if d.Size == string(Size2x1) {
		size = Size2x1
	}

	return Booth{
		ID:      strconv.FormatInt(d.ID, 10),
		Number:  d.BoothNumber,
		X:       d.X,
		Y:       d.Y,
		Width:   d.Width,
		Height:  d.Height,
		Price:   d.Price,
		Size:    size,
		Status:  BoothStatus(strings.ToLower(d.Status)),
		Company: d.Company,
	}
}

type serviceDTO struct {
	ServiceCode string `json:"serviceCode"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	VAT         int    `json:"vat"`
}

func (d serviceDTO) toService() Service {
	return Service{
		ID:          d.ServiceCode,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		VAT:         d.VAT,
	}
}

type reservationDTO struct {
	ID          string `json:"id"`
	BoothID     int64  `json:"boothId"`
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	InvoiceAddress InvoiceAddress `json:"invoiceAddress"`

	Services    []string `json:"services"`
	TotalAmount int      `json:"totalAmount"`

	AgreedToTerms         bool `json:"agreedToTerms"`
	AgreedToParticipation bool `json:"agreedToParticipation"`
	AgreedToConditions    bool `json:"agreedToConditions"`

	CreatedAt time.Time `json:"createdAt"`
}

func (d reservationDTO) toReservation() Reservation {
	return Reservation{
		ID:          d.ID,
		BoothID:     strconv.FormatInt(d.BoothID, 10),
		CompanyName: d.CompanyName,
		Industry:    d.Industry,
		Website:     d.Website,

		ContactName:  d.ContactName,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,

		InvoiceAddress: d.InvoiceAddress,

		Services:    d.Services,
		TotalAmount: d.TotalAmount,

		AgreedToTerms:         d.AgreedToTerms,
		AgreedToParticipation: d.AgreedToParticipation,
		AgreedToConditions:    d.AgreedToConditions,

		CreatedAt: d.CreatedAt,
	}
}

type reservationPayload struct {
	BoothID     int64  `json:"boothId"`
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	InvoiceAddress InvoiceAddress `json:"invoiceAddress"`

	Services    []string `json:"services"`
	TotalAmount int      `json:"totalAmount"`

	AgreedToTerms         bool `json:"agreedToTerms"`
	AgreedToParticipation bool `json:"agreedToParticipation"`
	AgreedToConditions    bool `json:"agreedToConditions"`
}
