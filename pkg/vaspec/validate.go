package vaspec

import (
	"fmt"

	"github.com/ga4gh/va-spec-go/pkg/gkscore"
	"github.com/ga4gh/va-spec-go/pkg/vocab"
)

// Profile cross-field validators. Guideline profiles compose these into
// their construction paths to bind coded fields to an exact system literal
// and a registry-backed permitted code set. All checks run eagerly at
// construction and are idempotent: re-validating a valid record is a no-op.

// ValidateCodedField applies the profile binding for a MappableConcept
// field, in order: an absent optional field passes; a present field must
// carry a primaryCoding; its system must equal the profile's exact literal;
// its code must be a member of the registry's permitted set for the
// system and category.
func ValidateCodedField(field string, mc *gkscore.MappableConcept, system vocab.System, category vocab.Category, required bool) error {
	if mc == nil {
		if required {
			return NewMissingFieldError(field)
		}
		return nil
	}
	if mc.PrimaryCoding == nil {
		return NewMissingCodingError(field)
	}
	if mc.PrimaryCoding.System != string(system) {
		return NewSystemMismatchError(field, mc.PrimaryCoding.System, string(system))
	}
	permitted, err := vocab.PermittedCodes(system, category)
	if err != nil {
		return err
	}
	for _, code := range permitted {
		if code == mc.PrimaryCoding.Code {
			return nil
		}
	}
	return NewInvalidCodeError(field, mc.PrimaryCoding.Code, permitted)
}

// ValidateDirection enforces presence and membership of a direction term.
func ValidateDirection(field string, d Direction) error {
	if d == "" {
		return NewMissingFieldError(field)
	}
	if !d.IsValid() {
		return &ValidationError{
			Code:      ErrInvalidCode,
			Field:     field,
			Message:   "direction is not a permitted term",
			Permitted: []string{"supports", "neutral", "disputes"},
		}
	}
	return nil
}

// ValidateSpecifiedBy enforces a profile's requirement that the specifiedBy
// slot is populated. When requireReportedIn is set, an inline Method must
// additionally carry reportedIn naming the guideline document; an IRI
// reference is accepted as-is.
func ValidateSpecifiedBy(ref *MethodRef, requireReportedIn bool) error {
	if ref == nil || (ref.Method == nil && ref.IRI.IsZero()) {
		return NewMissingFieldError("specifiedBy")
	}
	if requireReportedIn && ref.Method != nil && ref.Method.ReportedIn == nil {
		return &ValidationError{
			Code:    ErrMissingRequiredField,
			Field:   "specifiedBy.reportedIn",
			Message: "reportedIn is required on an inline method",
		}
	}
	return nil
}

// ValidateStrengthDirection enforces the conditional requirement tying an
// evidence-line strength field to the direction of evidence provided: when
// the direction is supports or disputes the strength field is required;
// when it is neutral the strength field must be absent. This rule composes
// with, and is checked independently of, the coded-field binding.
func ValidateStrengthDirection(direction Direction, field string, strength *gkscore.MappableConcept) error {
	switch direction {
	case DirectionSupports, DirectionDisputes:
		if strength == nil {
			return &ValidationError{
				Code:  ErrMissingRequiredField,
				Field: field,
				Message: fmt.Sprintf("required when directionOfEvidenceProvided is %q",
					string(direction)),
			}
		}
	case DirectionNeutral:
		if strength != nil {
			return &ValidationError{
				Code:    ErrInvalidCode,
				Field:   field,
				Message: `must be absent when directionOfEvidenceProvided is "neutral"`,
			}
		}
	}
	return nil
}
