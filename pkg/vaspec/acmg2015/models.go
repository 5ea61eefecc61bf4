// Package acmg2015 profiles the base record kinds to align with the
// terminology and conventions of the ACMG 2015 guidelines for the
// interpretation of sequence variant pathogenicity. Coded fields are bound
// to the ACMG 2015 vocabulary rows; classification additionally admits the
// ClinGen low penetrance and risk allele recommendations.
package acmg2015

import (
	"encoding/json"

	"github.com/ga4gh/va-spec-go/pkg/gkscore"
	"github.com/ga4gh/va-spec-go/pkg/vaspec"
	"github.com/ga4gh/va-spec-go/pkg/vocab"
)

// Schema titles for the ACMG 2015 profile kinds. Profile kinds keep the
// base discriminator literal; the title names the narrowed schema.
const (
	NameVariantPathogenicityStatement                    = "VariantPathogenicityStatement"
	NameVariantPathogenicityFunctionalImpactEvidenceLine = "VariantPathogenicityFunctionalImpactEvidenceLine"
)

// VariantPathogenicityStatement describes the role of a variant in causing
// an inherited condition, classified per the ACMG 2015 guidelines.
type VariantPathogenicityStatement struct {
	vaspec.Statement
	Proposition *vaspec.VariantPathogenicityProposition `json:"proposition,omitempty"`
}

// Validate applies the profile bindings: classification is required and
// coded in the ACMG 2015 or ClinGen system, strength is coded in the ACMG
// 2015 strength row, and specifiedBy must be populated.
func (s *VariantPathogenicityStatement) Validate() error {
	if err := vaspec.ValidateDirection("direction", s.Direction); err != nil {
		return err
	}
	if s.Proposition != nil {
		if err := s.Proposition.Validate(); err != nil {
			return err
		}
	}
	if err := vaspec.ValidateCodedField("strength", s.Strength, vocab.ACMG, vocab.CategoryStrength, false); err != nil {
		return err
	}
	if err := validateClassification(s.Classification); err != nil {
		return err
	}
	return vaspec.ValidateSpecifiedBy(s.SpecifiedBy, false)
}

// validateClassification admits a classification coded in either the ACMG
// 2015 system or the ClinGen low penetrance / risk allele system, and
// requires the code to be a member of the matching classification row.
func validateClassification(mc *gkscore.MappableConcept) error {
	if mc == nil {
		return vaspec.NewMissingFieldError("classification")
	}
	if mc.PrimaryCoding == nil {
		return vaspec.NewMissingCodingError("classification")
	}
	system := vocab.System(mc.PrimaryCoding.System)
	switch system {
	case vocab.ACMG, vocab.ClinGen:
	default:
		return &vaspec.ValidationError{
			Code:      vaspec.ErrSystemMismatch,
			Field:     "classification.primaryCoding.system",
			Message:   "system must name the ACMG 2015 or ClinGen guidelines",
			Permitted: []string{string(vocab.ACMG), string(vocab.ClinGen)},
		}
	}
	permitted, err := vocab.PermittedCodes(system, vocab.CategoryClassification)
	if err != nil {
		return err
	}
	for _, code := range permitted {
		if code == mc.PrimaryCoding.Code {
			return nil
		}
	}
	return vaspec.NewInvalidCodeError("classification", mc.PrimaryCoding.Code, permitted)
}

// ParseVariantPathogenicityStatement constructs a profile statement from a
// JSON document, resolving and validating the narrowed proposition.
func ParseVariantPathogenicityStatement(data []byte) (*VariantPathogenicityStatement, error) {
	var s VariantPathogenicityStatement
	aux := struct {
		*VariantPathogenicityStatement
		Proposition json.RawMessage `json:"proposition"`
	}{VariantPathogenicityStatement: &s}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, err
	}
	if err := vaspec.CheckType("type", s.Type, vaspec.TypeStatement); err != nil {
		return nil, err
	}
	s.Type = vaspec.TypeStatement
	if len(aux.Proposition) > 0 && string(aux.Proposition) != "null" {
		p, err := vaspec.ParseVariantPathogenicityProposition(aux.Proposition)
		if err != nil {
			return nil, err
		}
		s.Proposition = p
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// VariantPathogenicityFunctionalImpactEvidenceLine describes how
// information about the functional impact of a variant on a gene or gene
// product was interpreted as evidence for or against the variant's
// pathogenicity.
type VariantPathogenicityFunctionalImpactEvidenceLine struct {
	vaspec.EvidenceLine
	TargetProposition *vaspec.VariantPathogenicityProposition `json:"targetProposition,omitempty"`
}

// Validate applies the profile bindings: the strength of evidence and
// evidence outcome are coded in the ACMG 2015 rows, the strength field is
// tied to the direction of evidence provided, and specifiedBy must carry
// the interpretation guideline with its source document.
func (el *VariantPathogenicityFunctionalImpactEvidenceLine) Validate() error {
	if err := vaspec.ValidateDirection("directionOfEvidenceProvided", el.DirectionOfEvidenceProvided); err != nil {
		return err
	}
	if el.TargetProposition != nil {
		if err := el.TargetProposition.Validate(); err != nil {
			return err
		}
	}
	if err := vaspec.ValidateCodedField("strengthOfEvidenceProvided", el.StrengthOfEvidenceProvided,
		vocab.ACMG, vocab.CategoryEvidenceStrength, false); err != nil {
		return err
	}
	if err := vaspec.ValidateStrengthDirection(el.DirectionOfEvidenceProvided,
		"strengthOfEvidenceProvided", el.StrengthOfEvidenceProvided); err != nil {
		return err
	}
	if err := vaspec.ValidateCodedField("evidenceOutcome", el.EvidenceOutcome,
		vocab.ACMG, vocab.CategoryEvidenceOutcome, false); err != nil {
		return err
	}
	return vaspec.ValidateSpecifiedBy(el.SpecifiedBy, true)
}

// ParseVariantPathogenicityFunctionalImpactEvidenceLine constructs a
// profile evidence line from a JSON document.
func ParseVariantPathogenicityFunctionalImpactEvidenceLine(data []byte) (*VariantPathogenicityFunctionalImpactEvidenceLine, error) {
	var el VariantPathogenicityFunctionalImpactEvidenceLine
	aux := struct {
		*VariantPathogenicityFunctionalImpactEvidenceLine
		TargetProposition json.RawMessage   `json:"targetProposition"`
		HasEvidenceItems  []json.RawMessage `json:"hasEvidenceItems"`
	}{VariantPathogenicityFunctionalImpactEvidenceLine: &el}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, err
	}
	if err := vaspec.CheckType("type", el.Type, vaspec.TypeEvidenceLine); err != nil {
		return nil, err
	}
	el.Type = vaspec.TypeEvidenceLine
	if len(aux.TargetProposition) > 0 && string(aux.TargetProposition) != "null" {
		p, err := vaspec.ParseVariantPathogenicityProposition(aux.TargetProposition)
		if err != nil {
			return nil, err
		}
		el.TargetProposition = p
	}
	items, err := vaspec.ResolveEvidenceItems(aux.HasEvidenceItems)
	if err != nil {
		return nil, err
	}
	el.HasEvidenceItems = items
	if err := el.Validate(); err != nil {
		return nil, err
	}
	return &el, nil
}

func init() {
	vaspec.RegisterKind(vaspec.Kind{
		Name:   NameVariantPathogenicityStatement,
		Type:   vaspec.TypeStatement,
		Fields: vaspec.StatementFields(),
		Parse:  func(data []byte) (any, error) { return ParseVariantPathogenicityStatement(data) },
	})
	vaspec.RegisterKind(vaspec.Kind{
		Name:   NameVariantPathogenicityFunctionalImpactEvidenceLine,
		Type:   vaspec.TypeEvidenceLine,
		Fields: vaspec.EvidenceLineFields(),
		Parse: func(data []byte) (any, error) {
			return ParseVariantPathogenicityFunctionalImpactEvidenceLine(data)
		},
	})
}
