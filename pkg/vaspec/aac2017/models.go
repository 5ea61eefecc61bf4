// Package aac2017 profiles the base record kinds to align with the
// terminology and conventions of the AMP/ASCO/CAP (AAC) 2017 guidelines
// for the interpretation and reporting of sequence variants in cancer.
// Every coded field binds to the AAC 2017 system literal: classifications
// to the Tier I-IV row and strengths to the Level A-D row.
package aac2017

import (
	"encoding/json"

	"github.com/ga4gh/va-spec-go/pkg/gkscore"
	"github.com/ga4gh/va-spec-go/pkg/vaspec"
	"github.com/ga4gh/va-spec-go/pkg/vocab"
)

// Schema titles for the AAC 2017 profile kinds.
const (
	NameVariantDiagnosticStudyStatement          = "VariantDiagnosticStudyStatement"
	NameVariantPrognosticStudyStatement          = "VariantPrognosticStudyStatement"
	NameVariantTherapeuticResponseStudyStatement = "VariantTherapeuticResponseStudyStatement"
)

// validateCodedFields applies the shared AAC 2017 bindings: strength is
// optional and coded in the Level A-D row, classification is required and
// coded in the Tier I-IV row.
func validateCodedFields(strength, classification *gkscore.MappableConcept) error {
	if err := vaspec.ValidateCodedField("strength", strength,
		vocab.AMPAscoCap, vocab.CategoryStrength, false); err != nil {
		return err
	}
	return vaspec.ValidateCodedField("classification", classification,
		vocab.AMPAscoCap, vocab.CategoryClassification, true)
}

// VariantDiagnosticStudyStatement reports a conclusion from a single study
// about whether a variant is associated with the presence or absence of a
// disease.
type VariantDiagnosticStudyStatement struct {
	vaspec.Statement
	Proposition *vaspec.VariantDiagnosticProposition `json:"proposition"`
}

// Validate applies the AAC 2017 profile bindings.
func (s *VariantDiagnosticStudyStatement) Validate() error {
	if err := vaspec.ValidateDirection("direction", s.Direction); err != nil {
		return err
	}
	if s.Proposition == nil {
		return vaspec.NewMissingFieldError("proposition")
	}
	if err := s.Proposition.Validate(); err != nil {
		return err
	}
	if err := validateCodedFields(s.Strength, s.Classification); err != nil {
		return err
	}
	return vaspec.ValidateSpecifiedBy(s.SpecifiedBy, false)
}

// ParseVariantDiagnosticStudyStatement constructs a profile statement from
// a JSON document.
func ParseVariantDiagnosticStudyStatement(data []byte) (*VariantDiagnosticStudyStatement, error) {
	var s VariantDiagnosticStudyStatement
	aux := struct {
		*VariantDiagnosticStudyStatement
		Proposition json.RawMessage `json:"proposition"`
	}{VariantDiagnosticStudyStatement: &s}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, err
	}
	if err := vaspec.CheckType("type", s.Type, vaspec.TypeStatement); err != nil {
		return nil, err
	}
	s.Type = vaspec.TypeStatement
	if len(aux.Proposition) > 0 && string(aux.Proposition) != "null" {
		p, err := vaspec.ParseVariantDiagnosticProposition(aux.Proposition)
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

// VariantPrognosticStudyStatement reports a conclusion from a single study
// about whether a variant is associated with a disease prognosis.
type VariantPrognosticStudyStatement struct {
	vaspec.Statement
	Proposition *vaspec.VariantPrognosticProposition `json:"proposition"`
}

// Validate applies the AAC 2017 profile bindings.
func (s *VariantPrognosticStudyStatement) Validate() error {
	if err := vaspec.ValidateDirection("direction", s.Direction); err != nil {
		return err
	}
	if s.Proposition == nil {
		return vaspec.NewMissingFieldError("proposition")
	}
	if err := s.Proposition.Validate(); err != nil {
		return err
	}
	if err := validateCodedFields(s.Strength, s.Classification); err != nil {
		return err
	}
	return vaspec.ValidateSpecifiedBy(s.SpecifiedBy, false)
}

// ParseVariantPrognosticStudyStatement constructs a profile statement from
// a JSON document.
func ParseVariantPrognosticStudyStatement(data []byte) (*VariantPrognosticStudyStatement, error) {
	var s VariantPrognosticStudyStatement
	aux := struct {
		*VariantPrognosticStudyStatement
		Proposition json.RawMessage `json:"proposition"`
	}{VariantPrognosticStudyStatement: &s}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, err
	}
	if err := vaspec.CheckType("type", s.Type, vaspec.TypeStatement); err != nil {
		return nil, err
	}
	s.Type = vaspec.TypeStatement
	if len(aux.Proposition) > 0 && string(aux.Proposition) != "null" {
		p, err := vaspec.ParseVariantPrognosticProposition(aux.Proposition)
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

// VariantTherapeuticResponseStudyStatement reports a conclusion from a
// single study about whether a variant is associated with a positive or
// negative therapeutic response.
type VariantTherapeuticResponseStudyStatement struct {
	vaspec.Statement
	Proposition *vaspec.VariantTherapeuticResponseProposition `json:"proposition"`
}

// Validate applies the AAC 2017 profile bindings.
func (s *VariantTherapeuticResponseStudyStatement) Validate() error {
	if err := vaspec.ValidateDirection("direction", s.Direction); err != nil {
		return err
	}
	if s.Proposition == nil {
		return vaspec.NewMissingFieldError("proposition")
	}
	if err := s.Proposition.Validate(); err != nil {
		return err
	}
	if err := validateCodedFields(s.Strength, s.Classification); err != nil {
		return err
	}
	return vaspec.ValidateSpecifiedBy(s.SpecifiedBy, false)
}

// ParseVariantTherapeuticResponseStudyStatement constructs a profile
// statement from a JSON document.
func ParseVariantTherapeuticResponseStudyStatement(data []byte) (*VariantTherapeuticResponseStudyStatement, error) {
	var s VariantTherapeuticResponseStudyStatement
	aux := struct {
		*VariantTherapeuticResponseStudyStatement
		Proposition json.RawMessage `json:"proposition"`
	}{VariantTherapeuticResponseStudyStatement: &s}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, err
	}
	if err := vaspec.CheckType("type", s.Type, vaspec.TypeStatement); err != nil {
		return nil, err
	}
	s.Type = vaspec.TypeStatement
	if len(aux.Proposition) > 0 && string(aux.Proposition) != "null" {
		p, err := vaspec.ParseVariantTherapeuticResponseProposition(aux.Proposition)
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

func init() {
	vaspec.RegisterKind(vaspec.Kind{
		Name:   NameVariantDiagnosticStudyStatement,
		Type:   vaspec.TypeStatement,
		Fields: vaspec.StatementFields(),
		Parse:  func(data []byte) (any, error) { return ParseVariantDiagnosticStudyStatement(data) },
	})
	vaspec.RegisterKind(vaspec.Kind{
		Name:   NameVariantPrognosticStudyStatement,
		Type:   vaspec.TypeStatement,
		Fields: vaspec.StatementFields(),
		Parse:  func(data []byte) (any, error) { return ParseVariantPrognosticStudyStatement(data) },
	})
	vaspec.RegisterKind(vaspec.Kind{
		Name:   NameVariantTherapeuticResponseStudyStatement,
		Type:   vaspec.TypeStatement,
		Fields: vaspec.StatementFields(),
		Parse: func(data []byte) (any, error) {
			return ParseVariantTherapeuticResponseStudyStatement(data)
		},
	})
}
