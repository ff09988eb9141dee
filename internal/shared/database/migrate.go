package database

import (
	"expohall/internal/booths"
	"expohall/internal/catalog"
	"expohall/internal/reservations"
	"expohall/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&booths.Booth{},
		&catalog.Service{},
		&reservations.Reservation{},
	)
}
