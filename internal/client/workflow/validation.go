package workflow

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern is deliberately loose: one local part, one @, a dot in the
// domain. Deliverability is the mail server's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var formValidator = validator.New()

// fieldKeys maps FormData struct fields to the error keys the view renders
// under each input.
var fieldKeys = map[string]string{
	"CompanyName":        "companyName",
	"ContactName":        "contactName",
	"ContactEmail":       "contactEmail",
	"ContactPhone":       "contactPhone",
	"InvoiceCompanyName": "invoiceCompanyName",
	"InvoiceStreet":      "invoiceStreet",
	"InvoiceNIP":         "invoiceNip",
}

var fieldMessages = map[string]string{
	"companyName":        "company name is required",
	"contactName":        "contact name is required",
	"contactEmail":       "contact email is required",
	"contactPhone":       "contact phone is required",
	"invoiceCompanyName": "invoice company name is required",
	"invoiceStreet":      "invoice street is required",
	"invoiceNip":         "invoice NIP is required",
}

// ValidationError carries per-field messages from a failed Submit. Fields
// use the view's input keys; the three consent checkboxes collapse into a
// single "agreements" entry.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %s", strings.Join(keys, ", "))
}

// validate checks already-trimmed form data. At most one error per field:
// a missing email reports only "required", a present-but-malformed one only
// the format message.
func validate(data FormData) map[string]string {
	errs := map[string]string{}

	if err := formValidator.Struct(data); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				key, known := fieldKeys[fe.StructField()]
				if !known {
					continue
				}
				errs[key] = fieldMessages[key]
			}
		}
	}

	if data.ContactEmail != "" && !emailPattern.MatchString(data.ContactEmail) {
		errs["contactEmail"] = "contact email is invalid"
	}

	if !data.AgreedToTerms || !data.AgreedToParticipation || !data.AgreedToConditions {
		errs["agreements"] = "all agreements must be accepted"
	}

	return errs
}
