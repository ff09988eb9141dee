// Command kiosk is a terminal demo client: it logs in, loads the floor plan
// and service catalog, picks the first available booth and reserves it with
// a demo exhibitor profile. Useful as an end-to-end smoke check against a
// freshly seeded server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"expohall/internal/client/floorplan"
	"expohall/internal/client/gateway"
	"expohall/internal/client/session"
	"expohall/internal/client/store"
	"expohall/internal/client/workflow"

	"github.com/joho/godotenv"
)

func main() {
	baseURL := flag.String("base-url", envOr("EXPOHALL_BASE_URL", "http://localhost:8080"), "server base URL")
	email := flag.String("email", envOr("EXPOHALL_EMAIL", "exhibitor@example.com"), "login email")
	password := flag.String("password", envOr("EXPOHALL_PASSWORD", "changeme1"), "login password")
	company := flag.String("company", "Acme Robotics", "company name for the reservation")
	boothNumber := flag.String("booth", "", "booth number to reserve (default: first available)")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	if err := run(*baseURL, *email, *password, *company, *boothNumber); err != nil {
		log.Fatalf("kiosk run failed: %v", err)
	}
}

func run(baseURL, email, password, company, boothNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storage := session.NewFileStorage(sessionPath())
	sess := session.New(storage, baseURL)
	gw := gateway.New(baseURL+"/api", sess, gateway.WithUnauthorizedHook(func() {
		fmt.Println("session expired, please log in again")
	}))
	st := store.New(gw)

	if _, ok := sess.Token(); !ok || sess.IsExpired() {
		fmt.Printf("logging in as %s...\n", email)
		if _, err := sess.Login(ctx, email, password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}
	if subject, ok := sess.CurrentSubject(); ok {
		fmt.Printf("session active for %s\n", subject)
	}

	if err := st.EnsureLoaded(ctx); err != nil {
		return fmt.Errorf("loading floor plan: %w", err)
	}

	selector := floorplan.NewSelector(st, nil)
	booths := selector.DisplayBooths()
	fmt.Printf("floor plan loaded: %d booths, %d services\n", len(booths), len(st.Services()))

	target, err := pickBooth(st, boothNumber)
	if err != nil {
		return err
	}
	fmt.Printf("selecting booth %s (%s, %d)\n", target.Number, target.Size, target.Price)
	if err := selector.SelectNumber(target.Number); err != nil {
		return fmt.Errorf("selecting booth: %w", err)
	}

	selected, ok := st.Selection().Booth()
	if !ok {
		return fmt.Errorf("selection did not open")
	}

	wf := workflow.New(st, selected)
	wf.SetData(workflow.FormData{
		CompanyName:  company,
		Industry:     "Robotics",
		Website:      "https://example.com",
		ContactName:  "Demo Exhibitor",
		ContactEmail: email,
		ContactPhone: "+48 600 100 200",

		InvoiceCompanyName: company + " Sp. z o.o.",
		InvoiceStreet:      "Targowa 1",
		InvoicePostalCode:  "00-001",
		InvoiceCity:        "Warszawa",
		InvoiceCountry:     "Poland",
		InvoiceNIP:         "5260001246",

		AgreedToTerms:         true,
		AgreedToParticipation: true,
		AgreedToConditions:    true,
	})
	wf.ToggleService("catering")

	fmt.Printf("submitting reservation, total %d\n", wf.Total())
	if err := wf.Submit(ctx); err != nil {
		return fmt.Errorf("reservation: %w", err)
	}

	reservation, ok := st.ReservationByBoothID(selected.ID)
	if !ok {
		return fmt.Errorf("reservation missing from store after submit")
	}
	fmt.Printf("reserved booth %s: reservation %s, total %d\n",
		selected.Number, reservation.ID, reservation.TotalAmount)
	return nil
}

// pickBooth resolves the requested booth number, or the first available one.
func pickBooth(st *store.Store, number string) (store.Booth, error) {
	if number != "" {
		booth, ok := st.BoothByNumber(number)
		if !ok {
			return store.Booth{}, fmt.Errorf("booth %s not found", number)
		}
		return booth, nil
	}
	for _, booth := range st.Booths() {
		if booth.Status == store.StatusAvailable {
			return booth, nil
		}
	}
	return store.Booth{}, fmt.Errorf("no available booths left")
}

func sessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".expohall-session.json"
	}
	return filepath.Join(home, ".expohall", "session.json")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
