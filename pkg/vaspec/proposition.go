package vaspec

import (
	"encoding/json"
	"fmt"

	"github.com/ga4gh/va-spec-go/pkg/gkscore"
)

// Discriminator literals for the proposition kinds.
const (
	TypeExperimentalVariantFunctionalImpactProposition = "ExperimentalVariantFunctionalImpactProposition"
	TypeVariantDiagnosticProposition                   = "VariantDiagnosticProposition"
	TypeVariantOncogenicityProposition                 = "VariantOncogenicityProposition"
	TypeVariantPathogenicityProposition                = "VariantPathogenicityProposition"
	TypeVariantPrognosticProposition                   = "VariantPrognosticProposition"
	TypeVariantTherapeuticResponseProposition          = "VariantTherapeuticResponseProposition"
)

// Predicate literals fixed by the proposition kinds.
const (
	PredicateDiagnosticInclusion = "isDiagnosticInclusionCriterionFor"
	PredicateDiagnosticExclusion = "isDiagnosticExclusionCriterionFor"
	PredicateBetterOutcome       = "associatedWithBetterOutcomeFor"
	PredicateWorseOutcome        = "associatedWithWorseOutcomeFor"
	PredicateSensitivity         = "predictsSensitivityTo"
	PredicateResistance          = "predictsResistanceTo"
	PredicateCausal              = "isCausalFor"
	PredicateImpactsFunction     = "impactsFunctionOf"
)

// Proposition is the closed set of subject-variant proposition kinds. A
// proposition is an abstract, truth-evaluable claim connecting a subject
// variant to an object (condition, therapeutic, tumor type, or sequence
// feature) via a named predicate. Propositions are constructed once from
// input and never mutated; Statements and EvidenceLines consume them by
// reference.
type Proposition interface {
	TypeLiteral() string
	isProposition()
}

// ClinicalVariantProposition carries the fields shared by propositions
// describing variant effects in human subjects. It is an abstract shape,
// not a constructible kind.
type ClinicalVariantProposition struct {
	gkscore.Entity
	SubjectVariant        *VariationRef `json:"subjectVariant,omitempty"`
	GeneContextQualifier  *ConceptRef   `json:"geneContextQualifier,omitempty"`
	AlleleOriginQualifier *ConceptRef   `json:"alleleOriginQualifier,omitempty"`
	Predicate             string        `json:"predicate"`
}

func clinicalPropositionFields(rest ...string) []string {
	fields := append(gkscore.EntityFields(),
		"subjectVariant", "geneContextQualifier", "alleleOriginQualifier", "predicate")
	return append(fields, rest...)
}

// checkPredicate enforces membership of the predicate in the kind's allowed
// set, filling in the default when exactly one value is allowed and the
// input omits it.
func checkPredicate(got string, allowed ...string) (string, error) {
	if got == "" {
		if len(allowed) == 1 {
			return allowed[0], nil
		}
		return "", NewMissingFieldError("predicate")
	}
	for _, a := range allowed {
		if got == a {
			return got, nil
		}
	}
	return "", &ValidationError{
		Code:      ErrInvalidCode,
		Field:     "predicate",
		Message:   fmt.Sprintf("predicate %q is not permitted", got),
		Permitted: allowed,
	}
}

// VariantDiagnosticProposition claims that a variant is a diagnostic
// inclusion or exclusion criterion for a disease.
type VariantDiagnosticProposition struct {
	ClinicalVariantProposition
	ObjectCondition ConditionRef `json:"objectCondition"`
}

// TypeLiteral returns the kind's discriminator literal.
func (*VariantDiagnosticProposition) TypeLiteral() string {
	return TypeVariantDiagnosticProposition
}
func (*VariantDiagnosticProposition) isProposition() {}

// Validate checks the proposition's predicate and required fields.
func (p *VariantDiagnosticProposition) Validate() error {
	predicate, err := checkPredicate(p.Predicate, PredicateDiagnosticInclusion, PredicateDiagnosticExclusion)
	if err != nil {
		return err
	}
	p.Predicate = predicate
	if p.ObjectCondition.IsZero() {
		return NewMissingFieldError("objectCondition")
	}
	return nil
}

// ParseVariantDiagnosticProposition constructs a VariantDiagnosticProposition
// from a JSON document.
func ParseVariantDiagnosticProposition(data []byte) (*VariantDiagnosticProposition, error) {
	var p VariantDiagnosticProposition
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := CheckType("type", p.Type, TypeVariantDiagnosticProposition); err != nil {
		return nil, err
	}
	p.Type = TypeVariantDiagnosticProposition
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// VariantPrognosticProposition claims that a variant is associated with an
// improved or worse outcome for a disease.
type VariantPrognosticProposition struct {
	ClinicalVariantProposition
	ObjectCondition ConditionRef `json:"objectCondition"`
}

// TypeLiteral returns the kind's discriminator literal.
func (*VariantPrognosticProposition) TypeLiteral() string {
	return TypeVariantPrognosticProposition
}
func (*VariantPrognosticProposition) isProposition() {}

// Validate checks the proposition's predicate and required fields.
func (p *VariantPrognosticProposition) Validate() error {
	predicate, err := checkPredicate(p.Predicate, PredicateBetterOutcome, PredicateWorseOutcome)
	if err != nil {
		return err
	}
	p.Predicate = predicate
	if p.ObjectCondition.IsZero() {
		return NewMissingFieldError("objectCondition")
	}
	return nil
}

// ParseVariantPrognosticProposition constructs a VariantPrognosticProposition
// from a JSON document.
func ParseVariantPrognosticProposition(data []byte) (*VariantPrognosticProposition, error) {
	var p VariantPrognosticProposition
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := CheckType("type", p.Type, TypeVariantPrognosticProposition); err != nil {
		return nil, err
	}
	p.Type = TypeVariantPrognosticProposition
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// VariantOncogenicityProposition claims a causal role for a variant in a
// tumor type.
type VariantOncogenicityProposition struct {
	ClinicalVariantProposition
	ObjectTumorType ConditionRef `json:"objectTumorType"`
}

// TypeLiteral returns the kind's discriminator literal.
func (*VariantOncogenicityProposition) TypeLiteral() string {
	return TypeVariantOncogenicityProposition
}
func (*VariantOncogenicityProposition) isProposition() {}

// Validate checks the proposition's predicate and required fields.
func (p *VariantOncogenicityProposition) Validate() error {
	predicate, err := checkPredicate(p.Predicate, PredicateCausal)
	if err != nil {
		return err
	}
	p.Predicate = predicate
	if p.ObjectTumorType.IsZero() {
		return NewMissingFieldError("objectTumorType")
	}
	return nil
}

// ParseVariantOncogenicityProposition constructs a
// VariantOncogenicityProposition from a JSON document.
func ParseVariantOncogenicityProposition(data []byte) (*VariantOncogenicityProposition, error) {
	var p VariantOncogenicityProposition
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := CheckType("type", p.Type, TypeVariantOncogenicityProposition); err != nil {
		return nil, err
	}
	p.Type = TypeVariantOncogenicityProposition
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// VariantPathogenicityProposition claims a causal role for a variant in a
// heritable condition.
type VariantPathogenicityProposition struct {
	ClinicalVariantProposition
	ObjectCondition            ConditionRef             `json:"objectCondition"`
	PenetranceQualifier        *gkscore.MappableConcept `json:"penetranceQualifier,omitempty"`
	ModeOfInheritanceQualifier *gkscore.MappableConcept `json:"modeOfInheritanceQualifier,omitempty"`
}

// TypeLiteral returns the kind's discriminator literal.
func (*VariantPathogenicityProposition) TypeLiteral() string {
	return TypeVariantPathogenicityProposition
}
func (*VariantPathogenicityProposition) isProposition() {}

// Validate checks the proposition's predicate and required fields.
func (p *VariantPathogenicityProposition) Validate() error {
	predicate, err := checkPredicate(p.Predicate, PredicateCausal)
	if err != nil {
		return err
	}
	p.Predicate = predicate
	if p.ObjectCondition.IsZero() {
		return NewMissingFieldError("objectCondition")
	}
	return nil
}

// ParseVariantPathogenicityProposition constructs a
// VariantPathogenicityProposition from a JSON document.
func ParseVariantPathogenicityProposition(data []byte) (*VariantPathogenicityProposition, error) {
	var p VariantPathogenicityProposition
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := CheckType("type", p.Type, TypeVariantPathogenicityProposition); err != nil {
		return nil, err
	}
	p.Type = TypeVariantPathogenicityProposition
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// VariantTherapeuticResponseProposition claims a role for a variant in
// modulating the response of a neoplasm to a therapeutic.
type VariantTherapeuticResponseProposition struct {
	ClinicalVariantProposition
	ObjectTherapeutic  TherapeuticRef `json:"objectTherapeutic"`
	ConditionQualifier ConditionRef   `json:"conditionQualifier"`
}

// TypeLiteral returns the kind's discriminator literal.
func (*VariantTherapeuticResponseProposition) TypeLiteral() string {
	return TypeVariantTherapeuticResponseProposition
}
func (*VariantTherapeuticResponseProposition) isProposition() {}

// Validate checks the proposition's predicate and required fields. The
// disease-context qualifier is required on therapeutic response
// propositions.
func (p *VariantTherapeuticResponseProposition) Validate() error {
	predicate, err := checkPredicate(p.Predicate, PredicateSensitivity, PredicateResistance)
	if err != nil {
		return err
	}
	p.Predicate = predicate
	if p.ObjectTherapeutic.IsZero() {
		return NewMissingFieldError("objectTherapeutic")
	}
	if p.ConditionQualifier.IsZero() {
		return NewMissingFieldError("conditionQualifier")
	}
	return nil
}

// ParseVariantTherapeuticResponseProposition constructs a
// VariantTherapeuticResponseProposition from a JSON document.
func ParseVariantTherapeuticResponseProposition(data []byte) (*VariantTherapeuticResponseProposition, error) {
	var p VariantTherapeuticResponseProposition
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := CheckType("type", p.Type, TypeVariantTherapeuticResponseProposition); err != nil {
		return nil, err
	}
	p.Type = TypeVariantTherapeuticResponseProposition
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ExperimentalVariantFunctionalImpactProposition claims an impact of a
// variant on the function of a sequence feature, typically a gene or gene
// product.
type ExperimentalVariantFunctionalImpactProposition struct {
	gkscore.Entity
	SubjectVariant               *VariationRef   `json:"subjectVariant,omitempty"`
	Predicate                    string          `json:"predicate"`
	ObjectSequenceFeature        *ConceptRef     `json:"objectSequenceFeature"`
	ExperimentalContextQualifier json.RawMessage `json:"experimentalContextQualifier,omitempty"`
}

// TypeLiteral returns the kind's discriminator literal.
func (*ExperimentalVariantFunctionalImpactProposition) TypeLiteral() string {
	return TypeExperimentalVariantFunctionalImpactProposition
}
func (*ExperimentalVariantFunctionalImpactProposition) isProposition() {}

// Validate checks the proposition's predicate and required fields.
func (p *ExperimentalVariantFunctionalImpactProposition) Validate() error {
	predicate, err := checkPredicate(p.Predicate, PredicateImpactsFunction)
	if err != nil {
		return err
	}
	p.Predicate = predicate
	if p.ObjectSequenceFeature == nil {
		return NewMissingFieldError("objectSequenceFeature")
	}
	return nil
}

// ParseExperimentalVariantFunctionalImpactProposition constructs an
// ExperimentalVariantFunctionalImpactProposition from a JSON document.
func ParseExperimentalVariantFunctionalImpactProposition(data []byte) (*ExperimentalVariantFunctionalImpactProposition, error) {
	var p ExperimentalVariantFunctionalImpactProposition
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := CheckType("type", p.Type, TypeExperimentalVariantFunctionalImpactProposition); err != nil {
		return nil, err
	}
	p.Type = TypeExperimentalVariantFunctionalImpactProposition
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// propositionParsers maps discriminator literals to parse functions, in the
// declared candidate order used by field-signature resolution.
var propositionParsers = map[string]func([]byte) (Proposition, error){
	TypeExperimentalVariantFunctionalImpactProposition: func(d []byte) (Proposition, error) {
		return ParseExperimentalVariantFunctionalImpactProposition(d)
	},
	TypeVariantPathogenicityProposition: func(d []byte) (Proposition, error) {
		return ParseVariantPathogenicityProposition(d)
	},
	TypeVariantDiagnosticProposition: func(d []byte) (Proposition, error) {
		return ParseVariantDiagnosticProposition(d)
	},
	TypeVariantPrognosticProposition: func(d []byte) (Proposition, error) {
		return ParseVariantPrognosticProposition(d)
	},
	TypeVariantOncogenicityProposition: func(d []byte) (Proposition, error) {
		return ParseVariantOncogenicityProposition(d)
	},
	TypeVariantTherapeuticResponseProposition: func(d []byte) (Proposition, error) {
		return ParseVariantTherapeuticResponseProposition(d)
	},
}

// ResolveProposition resolves a JSON document to one of the subject-variant
// proposition kinds. Resolution first consults the `type` discriminator;
// when it is absent, the object-field signature decides: the distinguishing
// object field names the kind, and among the three kinds sharing
// objectCondition the predicate value breaks the tie deterministically.
func ResolveProposition(field string, data []byte) (Proposition, error) {
	if _, ok := asString(data); ok {
		return nil, NewAmbiguousVariantError(field, "a proposition must be an inline object, not a reference")
	}
	typeLiteral, err := peekType(data)
	if err != nil {
		return nil, err
	}
	if typeLiteral != "" {
		parse, ok := propositionParsers[typeLiteral]
		if !ok {
			return nil, NewAmbiguousVariantError(field,
				fmt.Sprintf("type %q does not name a proposition kind", typeLiteral))
		}
		return parse(data)
	}

	fields, err := peekFields(data)
	if err != nil {
		return nil, err
	}
	var predicate string
	if raw, ok := fields["predicate"]; ok {
		_ = json.Unmarshal(raw, &predicate)
	}
	switch {
	case hasField(fields, "objectSequenceFeature"):
		return ParseExperimentalVariantFunctionalImpactProposition(data)
	case hasField(fields, "objectTherapeutic"):
		return ParseVariantTherapeuticResponseProposition(data)
	case hasField(fields, "objectTumorType"):
		return ParseVariantOncogenicityProposition(data)
	case hasField(fields, "objectCondition"):
		switch predicate {
		case PredicateDiagnosticInclusion, PredicateDiagnosticExclusion:
			return ParseVariantDiagnosticProposition(data)
		case PredicateBetterOutcome, PredicateWorseOutcome:
			return ParseVariantPrognosticProposition(data)
		case PredicateCausal, "":
			return ParseVariantPathogenicityProposition(data)
		}
		return nil, NewAmbiguousVariantError(field,
			fmt.Sprintf("predicate %q does not select an objectCondition proposition kind", predicate))
	}
	return nil, NewAmbiguousVariantError(field, "no object field identifies a proposition kind")
}

func hasField(fields map[string]json.RawMessage, name string) bool {
	raw, ok := fields[name]
	return ok && string(raw) != "null"
}

func init() {
	RegisterKind(Kind{
		Name:   TypeVariantDiagnosticProposition,
		Type:   TypeVariantDiagnosticProposition,
		Fields: clinicalPropositionFields("objectCondition"),
		Parse:  func(data []byte) (any, error) { return ParseVariantDiagnosticProposition(data) },
	})
	RegisterKind(Kind{
		Name:   TypeVariantPrognosticProposition,
		Type:   TypeVariantPrognosticProposition,
		Fields: clinicalPropositionFields("objectCondition"),
		Parse:  func(data []byte) (any, error) { return ParseVariantPrognosticProposition(data) },
	})
	RegisterKind(Kind{
		Name:   TypeVariantOncogenicityProposition,
		Type:   TypeVariantOncogenicityProposition,
		Fields: clinicalPropositionFields("objectTumorType"),
		Parse:  func(data []byte) (any, error) { return ParseVariantOncogenicityProposition(data) },
	})
	RegisterKind(Kind{
		Name:   TypeVariantPathogenicityProposition,
		Type:   TypeVariantPathogenicityProposition,
		Fields: clinicalPropositionFields("objectCondition", "penetranceQualifier", "modeOfInheritanceQualifier"),
		Parse:  func(data []byte) (any, error) { return ParseVariantPathogenicityProposition(data) },
	})
	RegisterKind(Kind{
		Name:   TypeVariantTherapeuticResponseProposition,
		Type:   TypeVariantTherapeuticResponseProposition,
		Fields: clinicalPropositionFields("objectTherapeutic", "conditionQualifier"),
		Parse:  func(data []byte) (any, error) { return ParseVariantTherapeuticResponseProposition(data) },
	})
	RegisterKind(Kind{
		Name: TypeExperimentalVariantFunctionalImpactProposition,
		Type: TypeExperimentalVariantFunctionalImpactProposition,
		Fields: append(gkscore.EntityFields(),
			"subjectVariant", "predicate", "objectSequenceFeature", "experimentalContextQualifier"),
		Parse: func(data []byte) (any, error) {
			return ParseExperimentalVariantFunctionalImpactProposition(data)
		},
	})
}
