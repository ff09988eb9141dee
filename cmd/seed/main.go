package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"expohall/internal/booths"
	"expohall/internal/catalog"
	"expohall/internal/reservations"
	"expohall/internal/shared/config"
	"expohall/internal/shared/database"
	"expohall/internal/users"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Expohall database seeder...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed. Demo login: exhibitor@example.com / changeme1")
}

// CleanDatabase truncates all tables (reservations first, they reference booths)
func (s *Seeder) CleanDatabase() error {
	pg := s.db.GetPostgreSQL()
	for _, model := range []interface{}{
		&reservations.Reservation{},
		&booths.Booth{},
		&catalog.Service{},
		&users.User{},
	} {
		if err := pg.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.seedBooths(ctx); err != nil {
		return fmt.Errorf("booths: %w", err)
	}
	if err := s.seedServices(ctx); err != nil {
		return fmt.Errorf("services: %w", err)
	}
	if err := s.seedUsers(ctx); err != nil {
		return fmt.Errorf("users: %w", err)
	}
	return nil
}

// seedBooths lays out the hall as a 6x10 grid matching the floor-plan
// diagram: alternating 1x1 and 2x1 stands at 1300/1600.
func (s *Seeder) seedBooths(ctx context.Context) error {
	repo := booths.NewRepository(s.db.GetPostgreSQL())

	list := make([]booths.Booth, 0, 60)
	for i := 0; i < 60; i++ {
		size := "1x1"
		price := 1300
		if i%2 != 0 {
			size = "2x1"
			price = 1600
		}

		list = append(list, booths.Booth{
			BoothNumber: fmt.Sprintf("%d", i+1),
			X:           (i%10)*90 + 40,
			Y:           (i/10)*80 + 50,
			Width:       70,
			Height:      60,
			Price:       price,
			Size:        size,
			Status:      booths.StatusAvailable,
		})
	}

	return repo.CreateBooths(ctx, list)
}

func (s *Seeder) seedServices(ctx context.Context) error {
	repo := catalog.NewRepository(s.db.GetPostgreSQL())

	return repo.CreateServices(ctx, []catalog.Service{
		{ServiceCode: "catering", Name: "Catering package", Description: "Lunch and coffee for booth staff, both fair days", Price: 200, VAT: 23},
		{ServiceCode: "power", Name: "Extra power supply", Description: "Dedicated 230V/16A circuit at the booth", Price: 150, VAT: 23},
		{ServiceCode: "furniture", Name: "Furniture set", Description: "Counter, two stools and a brochure rack", Price: 250, VAT: 23},
		{ServiceCode: "network", Name: "Wired network uplink", Description: "Dedicated 100 Mbps wired connection", Price: 100, VAT: 23},
		{ServiceCode: "logo", Name: "Logo placement", Description: "Company logo in the printed fair guide", Price: 300, VAT: 23},
	})
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	password, err := bcrypt.GenerateFromPassword([]byte("changeme1"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &users.User{
		Email:    "exhibitor@example.com",
		Name:     "Demo Exhibitor",
		Password: string(password),
	}
	return s.db.GetPostgreSQL().WithContext(ctx).Create(user).Error
}
