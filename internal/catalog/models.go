package catalog

import "time"

// Service is an optional paid add-on attachable to a reservation. Prices are
// VAT-exclusive integers; VAT is a display-only percentage.
type Service struct {
	ServiceCode string    `gorm:"primaryKey" json:"serviceCode"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       int       `gorm:"not null" json:"price"`
	VAT         int       `gorm:"column:vat;not null" json:"vat"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName sets the table name for Service
func (Service) TableName() string {
	return "services"
}
