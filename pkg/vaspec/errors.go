package vaspec

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for the construction-time failure kinds. All are
// non-retryable and surfaced immediately to the caller; a record is either
// fully valid or not constructed at all.
const (
	ErrMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrUnknownDiscriminator = "UNKNOWN_DISCRIMINATOR"
	ErrAmbiguousVariant     = "AMBIGUOUS_OR_UNKNOWN_VARIANT"
	ErrMissingCoding        = "MISSING_CODING"
	ErrSystemMismatch       = "SYSTEM_MISMATCH"
	ErrInvalidCode          = "INVALID_CODE"
)

// ValidationError reports a construction-time validation failure. Field
// carries the JSON path of the offending field, Code one of the error code
// constants, and Permitted the allowed value set when the failure is a code
// membership violation.
type ValidationError struct {
	Code      string   `json:"code"`
	Field     string   `json:"field"`
	Message   string   `json:"message"`
	Permitted []string `json:"permitted,omitempty"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Permitted) > 0 {
		return fmt.Sprintf("%s: field '%s': %s (permitted: %s)",
			e.Code, e.Field, e.Message, strings.Join(e.Permitted, ", "))
	}
	return fmt.Sprintf("%s: field '%s': %s", e.Code, e.Field, e.Message)
}

// NewMissingFieldError reports a required field absent from input.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{
		Code:    ErrMissingRequiredField,
		Field:   field,
		Message: "required field is missing",
	}
}

// NewDiscriminatorError reports a `type` literal not matching the kind
// being constructed.
func NewDiscriminatorError(field, got, want string) *ValidationError {
	return &ValidationError{
		Code:    ErrUnknownDiscriminator,
		Field:   field,
		Message: fmt.Sprintf("type must be %q, got %q", want, got),
	}
}

// NewAmbiguousVariantError reports a polymorphic input matching zero
// registered kinds for its slot.
func NewAmbiguousVariantError(field, detail string) *ValidationError {
	return &ValidationError{
		Code:    ErrAmbiguousVariant,
		Field:   field,
		Message: detail,
	}
}

// NewMissingCodingError reports a profile-bound concept without a
// primaryCoding.
func NewMissingCodingError(field string) *ValidationError {
	return &ValidationError{
		Code:    ErrMissingCoding,
		Field:   field + ".primaryCoding",
		Message: "primaryCoding is required",
	}
}

// NewSystemMismatchError reports a primaryCoding.system that does not equal
// the exact literal the profile requires. The message names the required
// literal.
func NewSystemMismatchError(field, got, want string) *ValidationError {
	return &ValidationError{
		Code:    ErrSystemMismatch,
		Field:   field + ".primaryCoding.system",
		Message: fmt.Sprintf("system must be %q, got %q", want, got),
	}
}

// NewInvalidCodeError reports a primaryCoding.code outside the profile's
// permitted set. The permitted set is carried for diagnostics.
func NewInvalidCodeError(field, code string, permitted []string) *ValidationError {
	return &ValidationError{
		Code:      ErrInvalidCode,
		Field:     field + ".primaryCoding.code",
		Message:   fmt.Sprintf("code %q is not permitted", code),
		Permitted: permitted,
	}
}

// prefixField qualifies an error from a nested record with the enclosing
// slot path, so a failure inside the third evidence item reads
// hasEvidenceItems[2].<field>. The nested error is copied, never mutated.
func prefixField(field string, err error) error {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		prefixed := *vErr
		if prefixed.Field == "" {
			prefixed.Field = field
		} else {
			prefixed.Field = field + "." + prefixed.Field
		}
		return &prefixed
	}
	return fmt.Errorf("%s: %w", field, err)
}
