// Package ccv2022 profiles the base record kinds to align with the
// terminology and conventions of the ClinGen/CGC/VICC (CCV) 2022 community
// guidelines for cancer variant interpretation. Statement-level strength
// and classification splice in the ClinGen low penetrance and risk allele
// recommendations; evidence-line fields bind to the CCV 2022 rows.
package ccv2022

import (
	"encoding/json"

	"github.com/ga4gh/va-spec-go/pkg/vaspec"
	"github.com/ga4gh/va-spec-go/pkg/vocab"
)

// Schema titles for the CCV 2022 profile kinds.
const (
	NameVariantOncogenicityStudyStatement               = "VariantOncogenicityStudyStatement"
	NameVariantOncogenicityFunctionalImpactEvidenceLine = "VariantOncogenicityFunctionalImpactEvidenceLine"
)

// VariantOncogenicityStudyStatement reports a conclusion from a single
// study about whether a variant is associated with oncogenicity.
type VariantOncogenicityStudyStatement struct {
	vaspec.Statement
	Proposition *vaspec.VariantOncogenicityProposition `json:"proposition,omitempty"`
}

// Validate applies the profile bindings: strength and classification are
// coded in the ClinGen recommendation rows, classification is required,
// and specifiedBy must be populated.
func (s *VariantOncogenicityStudyStatement) Validate() error {
	if err := vaspec.ValidateDirection("direction", s.Direction); err != nil {
		return err
	}
	if s.Proposition != nil {
		if err := s.Proposition.Validate(); err != nil {
			return err
		}
	}
	if err := vaspec.ValidateCodedField("strength", s.Strength,
		vocab.ClinGen, vocab.CategoryStrength, false); err != nil {
		return err
	}
	if err := vaspec.ValidateCodedField("classification", s.Classification,
		vocab.ClinGen, vocab.CategoryClassification, true); err != nil {
		return err
	}
	return vaspec.ValidateSpecifiedBy(s.SpecifiedBy, false)
}

// ParseVariantOncogenicityStudyStatement constructs a profile statement
// from a JSON document.
func ParseVariantOncogenicityStudyStatement(data []byte) (*VariantOncogenicityStudyStatement, error) {
	var s VariantOncogenicityStudyStatement
	aux := struct {
		*VariantOncogenicityStudyStatement
		Proposition json.RawMessage `json:"proposition"`
	}{VariantOncogenicityStudyStatement: &s}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, err
	}
	if err := vaspec.CheckType("type", s.Type, vaspec.TypeStatement); err != nil {
		return nil, err
	}
	s.Type = vaspec.TypeStatement
	if len(aux.Proposition) > 0 && string(aux.Proposition) != "null" {
		p, err := vaspec.ParseVariantOncogenicityProposition(aux.Proposition)
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

// VariantOncogenicityFunctionalImpactEvidenceLine describes how
// information about the functional impact of a variant on a gene or gene
// product was interpreted as evidence for or against the variant's
// oncogenicity.
type VariantOncogenicityFunctionalImpactEvidenceLine struct {
	vaspec.EvidenceLine
	TargetProposition *vaspec.VariantOncogenicityProposition `json:"targetProposition,omitempty"`
}

// Validate applies the profile bindings: the strength of evidence and
// evidence outcome are coded in the CCV 2022 rows, the strength field is
// tied to the direction of evidence provided, and specifiedBy must carry
// the applied criterion with its source document.
func (el *VariantOncogenicityFunctionalImpactEvidenceLine) Validate() error {
	if err := vaspec.ValidateDirection("directionOfEvidenceProvided", el.DirectionOfEvidenceProvided); err != nil {
		return err
	}
	if el.TargetProposition != nil {
		if err := el.TargetProposition.Validate(); err != nil {
			return err
		}
	}
	if err := vaspec.ValidateCodedField("strengthOfEvidenceProvided", el.StrengthOfEvidenceProvided,
		vocab.CCV, vocab.CategoryEvidenceStrength, false); err != nil {
		return err
	}
	if err := vaspec.ValidateStrengthDirection(el.DirectionOfEvidenceProvided,
		"strengthOfEvidenceProvided", el.StrengthOfEvidenceProvided); err != nil {
		return err
	}
	if err := vaspec.ValidateCodedField("evidenceOutcome", el.EvidenceOutcome,
		vocab.CCV, vocab.CategoryEvidenceOutcome, false); err != nil {
		return err
	}
	return vaspec.ValidateSpecifiedBy(el.SpecifiedBy, true)
}

// ParseVariantOncogenicityFunctionalImpactEvidenceLine constructs a
// profile evidence line from a JSON document.
func ParseVariantOncogenicityFunctionalImpactEvidenceLine(data []byte) (*VariantOncogenicityFunctionalImpactEvidenceLine, error) {
	var el VariantOncogenicityFunctionalImpactEvidenceLine
	aux := struct {
		*VariantOncogenicityFunctionalImpactEvidenceLine
		TargetProposition json.RawMessage   `json:"targetProposition"`
		HasEvidenceItems  []json.RawMessage `json:"hasEvidenceItems"`
	}{VariantOncogenicityFunctionalImpactEvidenceLine: &el}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, err
	}
	if err := vaspec.CheckType("type", el.Type, vaspec.TypeEvidenceLine); err != nil {
		return nil, err
	}
	el.Type = vaspec.TypeEvidenceLine
	if len(aux.TargetProposition) > 0 && string(aux.TargetProposition) != "null" {
		p, err := vaspec.ParseVariantOncogenicityProposition(aux.TargetProposition)
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
		Name:   NameVariantOncogenicityStudyStatement,
		Type:   vaspec.TypeStatement,
		Fields: vaspec.StatementFields(),
		Parse:  func(data []byte) (any, error) { return ParseVariantOncogenicityStudyStatement(data) },
	})
	vaspec.RegisterKind(vaspec.Kind{
		Name:   NameVariantOncogenicityFunctionalImpactEvidenceLine,
		Type:   vaspec.TypeEvidenceLine,
		Fields: vaspec.EvidenceLineFields(),
		Parse: func(data []byte) (any, error) {
			return ParseVariantOncogenicityFunctionalImpactEvidenceLine(data)
		},
	})
}
