// =============================================================================
// Voyage Data Collector - Field Validators
// =============================================================================
//
// This module provides format validation for collected voyage fields:
//   - IMO numbers (exactly 7 ASCII digits)
//   - Dates (strict dd/mm/yyyy with real calendar semantics)
//   - Times (strict 24-hour HH:MM)
//   - Percentage enumerations (exactly 0, 50 or 100 after numeric parse)
//
// VALIDATION STRATEGY:
//   Every validator is a pure predicate: it takes the raw response string and
//   returns a boolean. Malformed input never panics or returns an error; it
//   returns false and the collector re-prompts.
//
//   Whole-record validation (ValidateRecord) is used at load time, where
//   there is no prompt loop to recover through. Errors are collected, not
//   returned on first failure, so the report names every offending field.
//
// =============================================================================

package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"voyage-collector/internal/voyage"
)

// Strict layouts. Both reject non-zero-padded components, so "1/1/2025" and
// "9:30" fail while "01/01/2025" and "09:30" pass.
const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04"
)

// =============================================================================
// FIELD PREDICATES
// =============================================================================

// IMONumber reports whether the value is exactly 7 ASCII digits.
func IMONumber(value string) bool {
	if len(value) != 7 {
		return false
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Date reports whether the value is a real calendar date in dd/mm/yyyy form.
// "29/02/2024" is valid (leap year); "31/02/2025" is not.
func Date(value string) bool {
	if len(value) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, value)
	return err == nil
}

// Time reports whether the value is a valid 24-hour HH:MM time.
func Time(value string) bool {
	if len(value) != len(timeLayout) {
		return false
	}
	_, err := time.Parse(timeLayout, value)
	return err == nil
}

// Percentage reports whether the value parses as a number equal to exactly
// 0, 50 or 100. "50.0" passes (parses to 50); "25" and "49.9" do not.
func Percentage(value string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return false
	}
	return f == 0 || f == 50 || f == 100
}

// =============================================================================
// RECORD VALIDATION
// =============================================================================

// FieldError describes one field that failed format validation.
type FieldError struct {
	// Field is the record field name (flattened-key form).
	Field string

	// Value is the offending value.
	Value string

	// Message is a human-readable description of the rule violated.
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
}

// ValidateRecord checks the format-constrained fields of a loaded record and
// returns every violation found. Optional fields are only checked when set;
// the IMO number is always checked.
func ValidateRecord(r *voyage.Record) []*FieldError {
	var errs []*FieldError

	if !IMONumber(r.IMONumber) {
		errs = append(errs, &FieldError{
			Field:   "imo_number",
			Value:   r.IMONumber,
			Message: "must be exactly 7 digits",
		})
	}

	dates := map[string]string{
		"departure_date":      r.DepartureDate,
		"arrival_date":        r.ArrivalDate,
		"port_arrival_date":   r.PortArrivalDate,
		"port_departure_date": r.PortDepartureDate,
	}
	for field, value := range dates {
		if value != "" && !Date(value) {
			errs = append(errs, &FieldError{
				Field:   field,
				Value:   value,
				Message: "must be a valid dd/mm/yyyy date",
			})
		}
	}

	times := map[string]string{
		"departure_time":      r.DepartureTime,
		"arrival_time":        r.ArrivalTime,
		"port_arrival_time":   r.PortArrivalTime,
		"port_departure_time": r.PortDepartureTime,
	}
	for field, value := range times {
		if value != "" && !Time(value) {
			errs = append(errs, &FieldError{
				Field:   field,
				Value:   value,
				Message: "must be a valid hh:mm time",
			})
		}
	}

	pcts := map[string]int{
		"eu_ets_percentage": r.EUETSPercentage,
		"fueleu_percentage": r.FuelEUPercentage,
	}
	for field, value := range pcts {
		if value != 0 && value != 50 && value != 100 {
			errs = append(errs, &FieldError{
				Field:   field,
				Value:   strconv.Itoa(value),
				Message: "must be 0, 50 or 100",
			})
		}
	}

	return errs
}

// FormatErrors renders a list of field errors as a multi-line report for
// console output. Returns an empty string when there are no errors.
func FormatErrors(errs []*FieldError) string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Found %d validation error(s):\n", len(errs)))
	for _, e := range errs {
		b.WriteString("  - ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return b.String()
}
