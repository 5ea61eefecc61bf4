package vaspec

import (
	"encoding/json"

	"github.com/ga4gh/va-spec-go/pkg/gkscore"
)

// TypeStatement is the Statement discriminator literal.
const TypeStatement = "Statement"

// Direction indicates whether a Statement supports, disputes, or remains
// neutral toward the validity of the Proposition it evaluates.
type Direction string

const (
	DirectionSupports Direction = "supports"
	DirectionNeutral  Direction = "neutral"
	DirectionDisputes Direction = "disputes"
)

// IsValid reports whether the direction is one of the permitted terms.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionSupports, DirectionNeutral, DirectionDisputes:
		return true
	default:
		return false
	}
}

// String returns the string representation of the direction.
func (d Direction) String() string {
	return string(d)
}

// Statement asserts the validity of a Proposition with a direction and
// optional strength, score, and classification, and may carry the evidence
// lines the assertion rests on.
type Statement struct {
	InformationEntity
	Proposition      Proposition              `json:"proposition"`
	Direction        Direction                `json:"direction"`
	Strength         *gkscore.MappableConcept `json:"strength,omitempty"`
	Score            *float64                 `json:"score,omitempty"`
	Classification   *gkscore.MappableConcept `json:"classification,omitempty"`
	HasEvidenceLines []EvidenceLineRef        `json:"hasEvidenceLines,omitempty"`
}

func (*Statement) isEvidenceItem() {}

// StatementFields lists the Statement JSON field set.
func StatementFields() []string {
	return informationEntityFields(
		"proposition", "direction", "strength", "score", "classification", "hasEvidenceLines")
}

// Validate checks the Statement's required fields and direction term.
func (s *Statement) Validate() error {
	if s.Proposition == nil {
		return NewMissingFieldError("proposition")
	}
	return ValidateDirection("direction", s.Direction)
}

// ParseStatement constructs a Statement from a JSON document. The nested
// proposition is resolved polymorphically and the whole record is validated
// before the Statement is returned; on failure nothing is constructed.
// Statement is embedded by profile statement kinds, so decoding lives here
// rather than in an UnmarshalJSON method that embedding would promote.
func ParseStatement(data []byte) (*Statement, error) {
	var s Statement
	aux := struct {
		*Statement
		Proposition json.RawMessage `json:"proposition"`
	}{Statement: &s}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, err
	}
	if err := CheckType("type", s.Type, TypeStatement); err != nil {
		return nil, err
	}
	s.Type = TypeStatement
	if len(aux.Proposition) > 0 && !isJSONNull(aux.Proposition) {
		proposition, err := ResolveProposition("proposition", aux.Proposition)
		if err != nil {
			return nil, err
		}
		s.Proposition = proposition
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func init() {
	RegisterKind(Kind{
		Name:   TypeStatement,
		Type:   TypeStatement,
		Fields: StatementFields(),
		Parse:  func(data []byte) (any, error) { return ParseStatement(data) },
	})
}
