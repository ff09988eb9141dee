package booths

import "time"

// Booth statuses as stored server-side. The wire contract is case-insensitive;
// clients normalize to lowercase.
const (
	StatusAvailable = "AVAILABLE"
	StatusReserved  = "RESERVED"
	StatusOccupied  = "OCCUPIED"
)

// Booth is a reservable stand on the exhibition floor. Geometry is consumed
// only by floor-plan renderers; price is an integer in the domain currency
// unit, VAT-exclusive.
type Booth struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BoothNumber string    `gorm:"uniqueIndex;not null" json:"boothNumber"`
	X           int       `gorm:"not null" json:"x"`
	Y           int       `gorm:"not null" json:"y"`
	Width       int       `gorm:"not null" json:"width"`
	Height      int       `gorm:"not null" json:"height"`
	Price       int       `gorm:"not null" json:"price"`
	Size        string    `gorm:"type:varchar(8);default:'1x1'" json:"size"`
	Status      string    `gorm:"type:varchar(20);check:status IN ('AVAILABLE','RESERVED','OCCUPIED');default:'AVAILABLE'" json:"status"`
	Company     string    `json:"company,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName sets the table name for Booth
func (Booth) TableName() string {
	return "booths"
}

func (b *Booth) IsAvailable() bool {
	return b.Status == StatusAvailable
}
