// Package forms validates individual form-field values before the
// dialogue engine accepts them into a slot. Each field validator has the
// same two-outcome contract: accept the (possibly normalized) value, or
// reject it with a re-prompt message and a cleared field.
package forms

import (
	"strings"
	"unicode/utf8"
)

// Validation is the outcome of validating one field value.
type Validation struct {
	// Value is the accepted value; empty when rejected.
	Value string
	// OK reports whether the value was accepted.
	OK bool
	// Message is the rejection prompt shown to the user when !OK.
	Message string
}

// ValidateField runs the validator for the named field against a raw
// value. Fields without a dedicated validator accept any non-empty value.
func ValidateField(field, raw string) Validation {
	switch field {
	case "symptom":
		return validateSymptom(raw)
	default:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return Validation{Message: "I didn't catch that. Could you say it again?"}
		}
		return Validation{Value: trimmed, OK: true}
	}
}

// validateSymptom accepts textual values longer than 2 characters.
func validateSymptom(raw string) Validation {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) > 2 {
		return Validation{Value: trimmed, OK: true}
	}
	return Validation{Message: "That doesn't seem like a valid symptom. Please describe it."}
}
