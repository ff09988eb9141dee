package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an exhibitor account that can log in and reserve booths.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the id so no database extension is needed.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
