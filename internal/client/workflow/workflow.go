// Package workflow is the modal reservation form: a state machine scoped to
// one booth that collects company, contact, billing and service-selection
// data, validates it, computes the total price and submits to the store.
//
// States: editing -> submitting -> closed on success, or back to editing
// with errors. Validation failures never reach the network.
package workflow

import (
	"context"
	"fmt"
	"strings"

	"expohall/internal/client/store"
)

// State is the workflow phase.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// FormData is everything the form collects. Optional fields stay empty
// strings; the submitted payload never carries absent sub-fields.
type FormData struct {
	CompanyName string `validate:"required"`
	Industry    string
	Website     string

	ContactName  string `validate:"required"`
	ContactEmail string `validate:"required"`
	ContactPhone string `validate:"required"`

	InvoiceCompanyName string `validate:"required"`
	InvoiceStreet      string `validate:"required"`
	InvoicePostalCode  string
	InvoiceCity        string
	InvoiceCountry     string
	InvoiceNIP         string `validate:"required"`

	Services []string

	AgreedToTerms         bool
	AgreedToParticipation bool
	AgreedToConditions    bool
}

// Workflow drives the reservation form for one selected booth. It is meant
// to be owned by a single view; the store it submits to is the concurrency
// boundary.
type Workflow struct {
	store *store.Store
	booth store.Booth

	data   FormData
	errors map[string]string
	state  State
}

// New opens a workflow for the given booth. The caller has already put the
// booth into the store's selection.
func New(st *store.Store, booth store.Booth) *Workflow {
	return &Workflow{
		store:  st,
		booth:  booth,
		errors: map[string]string{},
		state:  StateEditing,
	}
}

// Booth returns the booth this workflow reserves.
func (w *Workflow) Booth() store.Booth {
	return w.booth
}

// State returns the current phase.
func (w *Workflow) State() State {
	return w.state
}

// Data returns the current form contents.
func (w *Workflow) Data() FormData {
	return w.data
}

// SetData replaces the form contents while editing.
func (w *Workflow) SetData(data FormData) {
	if w.state != StateEditing {
		return
	}
	w.data = data
}

// FieldErrors returns the errors of the last validation run, keyed by field.
func (w *Workflow) FieldErrors() map[string]string {
	return w.errors
}

// ToggleService adds the service id to the selection, or removes it when
// already selected. Toggling twice restores the original selection.
func (w *Workflow) ToggleService(id string) {
	if w.state != StateEditing {
		return
	}
	for i, existing := range w.data.Services {
		if existing == id {
			w.data.Services = append(w.data.Services[:i], w.data.Services[i+1:]...)
			return
		}
	}
	w.data.Services = append(w.data.Services, id)
}

// Total computes booth price plus the prices of all selected services,
// order independent. VAT is display-only and not part of the total.
func (w *Workflow) Total() int {
	total := w.booth.Price
	catalog := w.store.Services()
	for _, id := range w.data.Services {
		for _, svc := range catalog {
			if svc.ID == id {
				total += svc.Price
				break
			}
		}
	}
	return total
}

// Submit validates the form and hands the reservation to the store. With
// validation errors the form stays in editing and nothing reaches the
// network. A store failure also returns to editing, with the store's error
// left for the view to surface; success closes the workflow and clears the
// store's selection.
func (w *Workflow) Submit(ctx context.Context) error {
	if w.state != StateEditing {
		return fmt.Errorf("cannot submit while %s", w.state)
	}

	normalized := w.normalized()
	if errs := validate(normalized); len(errs) > 0 {
		w.errors = errs
		return &ValidationError{Fields: errs}
	}
	w.errors = map[string]string{}

	request := store.ReservationRequest{
		CompanyName: normalized.CompanyName,
		Industry:    normalized.Industry,
		Website:     normalized.Website,

		ContactName:  normalized.ContactName,
		ContactEmail: normalized.ContactEmail,
		ContactPhone: normalized.ContactPhone,

		InvoiceAddress: store.InvoiceAddress{
			CompanyName: normalized.InvoiceCompanyName,
			Street:      normalized.InvoiceStreet,
			PostalCode:  normalized.InvoicePostalCode,
			City:        normalized.InvoiceCity,
			Country:     normalized.InvoiceCountry,
			NIP:         normalized.InvoiceNIP,
		},

		Services:    append([]string{}, normalized.Services...),
		TotalAmount: w.Total(),

		AgreedToTerms:         normalized.AgreedToTerms,
		AgreedToParticipation: normalized.AgreedToParticipation,
		AgreedToConditions:    normalized.AgreedToConditions,
	}

	w.state = StateSubmitting
	_, err := w.store.ReserveBooth(ctx, w.booth.ID, request)
	if err != nil {
		w.state = StateEditing
		return err
	}

	w.state = StateClosed
	w.store.CloseSelection()
	return nil
}

// normalized returns a copy with every text field trimmed, so the emptiness
// checks and the submitted payload agree.
func (w *Workflow) normalized() FormData {
	data := w.data
	data.CompanyName = strings.TrimSpace(data.CompanyName)
	data.Industry = strings.TrimSpace(data.Industry)
	data.Website = strings.TrimSpace(data.Website)
	data.ContactName = strings.TrimSpace(data.ContactName)
	data.ContactEmail = strings.TrimSpace(data.ContactEmail)
	data.ContactPhone = strings.TrimSpace(data.ContactPhone)
	data.InvoiceCompanyName = strings.TrimSpace(data.InvoiceCompanyName)
	data.InvoiceStreet = strings.TrimSpace(data.InvoiceStreet)
	data.InvoicePostalCode = strings.TrimSpace(data.InvoicePostalCode)
	data.InvoiceCity = strings.TrimSpace(data.InvoiceCity)
	data.InvoiceCountry = strings.TrimSpace(data.InvoiceCountry)
	data.InvoiceNIP = strings.TrimSpace(data.InvoiceNIP)
	return data
}
