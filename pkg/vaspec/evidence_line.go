package vaspec

import (
	"encoding/json"
	"fmt"

	"github.com/ga4gh/va-spec-go/pkg/gkscore"
)

// TypeEvidenceLine is the EvidenceLine discriminator literal.
const TypeEvidenceLine = "EvidenceLine"

// EvidenceItem is the closed set of values an EvidenceLine may cite as
// evidence: a StudyResult profile, a Statement, a nested EvidenceLine, or a
// Reference to any of them.
type EvidenceItem interface {
	isEvidenceItem()
}

// Reference is a lightweight indirection standing in for any Entity: an
// opaque URI-like string resolved lazily by an external collaborator, never
// expanded here.
type Reference gkscore.IRI

func (Reference) isEvidenceItem() {}

// String returns the reference value.
func (r Reference) String() string {
	return string(r)
}

// IRI returns the reference as a core IRI.
func (r Reference) IRI() gkscore.IRI {
	return gkscore.IRI(r)
}

// MarshalJSON implements json.Marshaler; a Reference serializes as a bare
// string.
func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

// EvidenceLine is an evidence-based argument that supports or disputes the
// validity of a target Proposition, built from one or more evidence items.
type EvidenceLine struct {
	InformationEntity
	TargetProposition           Proposition              `json:"targetProposition,omitempty"`
	HasEvidenceItems            []EvidenceItem           `json:"hasEvidenceItems,omitempty"`
	DirectionOfEvidenceProvided Direction                `json:"directionOfEvidenceProvided"`
	StrengthOfEvidenceProvided  *gkscore.MappableConcept `json:"strengthOfEvidenceProvided,omitempty"`
	ScoreOfEvidenceProvided     *float64                 `json:"scoreOfEvidenceProvided,omitempty"`
	EvidenceOutcome             *gkscore.MappableConcept `json:"evidenceOutcome,omitempty"`
}

func (*EvidenceLine) isEvidenceItem() {}

// EvidenceLineFields lists the EvidenceLine JSON field set.
func EvidenceLineFields() []string {
	return informationEntityFields(
		"targetProposition", "hasEvidenceItems", "directionOfEvidenceProvided",
		"strengthOfEvidenceProvided", "scoreOfEvidenceProvided", "evidenceOutcome")
}

// Validate checks the EvidenceLine's required direction term.
func (el *EvidenceLine) Validate() error {
	return ValidateDirection("directionOfEvidenceProvided", el.DirectionOfEvidenceProvided)
}

// ParseEvidenceLine constructs an EvidenceLine from a JSON document. Each
// evidence item and the target proposition resolve polymorphically; the
// record is validated before it is returned. EvidenceLine is embedded by
// profile evidence-line kinds, so decoding lives here rather than in an
// UnmarshalJSON method that embedding would promote.
func ParseEvidenceLine(data []byte) (*EvidenceLine, error) {
	var el EvidenceLine
	aux := struct {
		*EvidenceLine
		TargetProposition json.RawMessage   `json:"targetProposition"`
		HasEvidenceItems  []json.RawMessage `json:"hasEvidenceItems"`
	}{EvidenceLine: &el}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, err
	}
	if err := CheckType("type", el.Type, TypeEvidenceLine); err != nil {
		return nil, err
	}
	el.Type = TypeEvidenceLine
	if len(aux.TargetProposition) > 0 && !isJSONNull(aux.TargetProposition) {
		proposition, err := ResolveProposition("targetProposition", aux.TargetProposition)
		if err != nil {
			return nil, err
		}
		el.TargetProposition = proposition
	}
	items, err := ResolveEvidenceItems(aux.HasEvidenceItems)
	if err != nil {
		return nil, err
	}
	el.HasEvidenceItems = items
	if err := el.Validate(); err != nil {
		return nil, err
	}
	return &el, nil
}

// ResolveEvidenceItems resolves the raw elements of a hasEvidenceItems
// list; profile evidence-line parsers share it.
func ResolveEvidenceItems(raws []json.RawMessage) ([]EvidenceItem, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	items := make([]EvidenceItem, 0, len(raws))
	for i, raw := range raws {
		item, err := ResolveEvidenceItem(fmt.Sprintf("hasEvidenceItems[%d]", i), raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ResolveEvidenceItem resolves one element of a hasEvidenceItems list. A
// bare string becomes a Reference; an object resolves by its `type`
// discriminator against the kinds admitted at this slot. Resolving the same
// input always yields the same concrete kind.
func ResolveEvidenceItem(field string, data []byte) (EvidenceItem, error) {
	if s, ok := asString(data); ok {
		return Reference(s), nil
	}
	typeLiteral, err := peekType(data)
	if err != nil {
		return nil, prefixField(field, err)
	}
	var item EvidenceItem
	switch typeLiteral {
	case TypeStatement:
		item, err = ParseStatement(data)
	case TypeEvidenceLine:
		item, err = ParseEvidenceLine(data)
	case TypeCohortAlleleFrequencyStudyResult:
		item, err = ParseCohortAlleleFrequencyStudyResult(data)
	case TypeExperimentalVariantFunctionalImpactStudyResult:
		item, err = ParseExperimentalVariantFunctionalImpactStudyResult(data)
	case "":
		return nil, NewAmbiguousVariantError(field, "missing type discriminator")
	default:
		return nil, NewAmbiguousVariantError(field,
			fmt.Sprintf("type %q does not name an evidence item kind", typeLiteral))
	}
	if err != nil {
		return nil, prefixField(field, err)
	}
	return item, nil
}

func init() {
	RegisterKind(Kind{
		Name:   TypeEvidenceLine,
		Type:   TypeEvidenceLine,
		Fields: EvidenceLineFields(),
		Parse:  func(data []byte) (any, error) { return ParseEvidenceLine(data) },
	})
}
