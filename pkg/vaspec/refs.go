package vaspec

import (
	"encoding/json"

	"github.com/ga4gh/va-spec-go/pkg/gkscore"
)

// One-of reference wrappers. Each wrapper is a closed tagged variant for a
// polymorphic slot: exactly one member is set after resolution. A bare JSON
// string resolves to the IRI member; an object resolves by discriminator.

// MethodRef holds either an inline Method or an IRI reference.
type MethodRef struct {
	Method *Method
	IRI    gkscore.IRI
}

// MarshalJSON implements json.Marshaler.
func (r MethodRef) MarshalJSON() ([]byte, error) {
	if !r.IRI.IsZero() {
		return json.Marshal(r.IRI)
	}
	return json.Marshal(r.Method)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *MethodRef) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*r = MethodRef{}
		return nil
	}
	if iri, ok := asIRI(data); ok {
		*r = MethodRef{IRI: iri}
		return nil
	}
	m, err := ParseMethod(data)
	if err != nil {
		return err
	}
	*r = MethodRef{Method: m}
	return nil
}

// DocumentRef holds either an inline Document or an IRI reference.
type DocumentRef struct {
	Document *Document
	IRI      gkscore.IRI
}

// MarshalJSON implements json.Marshaler.
func (r DocumentRef) MarshalJSON() ([]byte, error) {
	if !r.IRI.IsZero() {
		return json.Marshal(r.IRI)
	}
	return json.Marshal(r.Document)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *DocumentRef) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*r = DocumentRef{}
		return nil
	}
	if iri, ok := asIRI(data); ok {
		*r = DocumentRef{IRI: iri}
		return nil
	}
	d, err := ParseDocument(data)
	if err != nil {
		return err
	}
	*r = DocumentRef{Document: d}
	return nil
}

// ConceptRef holds either an inline MappableConcept or an IRI reference.
type ConceptRef struct {
	Concept *gkscore.MappableConcept
	IRI     gkscore.IRI
}

// MarshalJSON implements json.Marshaler.
func (r ConceptRef) MarshalJSON() ([]byte, error) {
	if !r.IRI.IsZero() {
		return json.Marshal(r.IRI)
	}
	return json.Marshal(r.Concept)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ConceptRef) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*r = ConceptRef{}
		return nil
	}
	if iri, ok := asIRI(data); ok {
		*r = ConceptRef{IRI: iri}
		return nil
	}
	var c gkscore.MappableConcept
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*r = ConceptRef{Concept: &c}
	return nil
}

// ConditionRef holds a disease/condition slot value: an inline
// MappableConcept, an inline TraitSet, or an IRI reference.
type ConditionRef struct {
	Concept  *gkscore.MappableConcept
	TraitSet *TraitSet
	IRI      gkscore.IRI
}

// MarshalJSON implements json.Marshaler.
func (r ConditionRef) MarshalJSON() ([]byte, error) {
	if !r.IRI.IsZero() {
		return json.Marshal(r.IRI)
	}
	if r.TraitSet != nil {
		return json.Marshal(r.TraitSet)
	}
	return json.Marshal(r.Concept)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ConditionRef) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*r = ConditionRef{}
		return nil
	}
	if iri, ok := asIRI(data); ok {
		*r = ConditionRef{IRI: iri}
		return nil
	}
	typeLiteral, err := peekType(data)
	if err != nil {
		return err
	}
	if typeLiteral == TypeTraitSet {
		ts, err := ParseTraitSet(data)
		if err != nil {
			return err
		}
		*r = ConditionRef{TraitSet: ts}
		return nil
	}
	var c gkscore.MappableConcept
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*r = ConditionRef{Concept: &c}
	return nil
}

// IsZero reports whether no member is set.
func (r ConditionRef) IsZero() bool {
	return r.Concept == nil && r.TraitSet == nil && r.IRI.IsZero()
}

// TherapeuticRef holds a therapeutic slot value: an inline MappableConcept,
// an inline TherapyGroup, or an IRI reference.
type TherapeuticRef struct {
	Concept *gkscore.MappableConcept
	Group   *TherapyGroup
	IRI     gkscore.IRI
}

// MarshalJSON implements json.Marshaler.
func (r TherapeuticRef) MarshalJSON() ([]byte, error) {
	if !r.IRI.IsZero() {
		return json.Marshal(r.IRI)
	}
	if r.Group != nil {
		return json.Marshal(r.Group)
	}
	return json.Marshal(r.Concept)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *TherapeuticRef) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*r = TherapeuticRef{}
		return nil
	}
	if iri, ok := asIRI(data); ok {
		*r = TherapeuticRef{IRI: iri}
		return nil
	}
	typeLiteral, err := peekType(data)
	if err != nil {
		return err
	}
	if typeLiteral == TypeTherapyGroup {
		g, err := ParseTherapyGroup(data)
		if err != nil {
			return err
		}
		*r = TherapeuticRef{Group: g}
		return nil
	}
	var c gkscore.MappableConcept
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*r = TherapeuticRef{Concept: &c}
	return nil
}

// IsZero reports whether no member is set.
func (r TherapeuticRef) IsZero() bool {
	return r.Concept == nil && r.Group == nil && r.IRI.IsZero()
}

// VariationRef holds a variant/allele slot value. Variant representation
// types are supplied by an external variant library and treated as opaque
// validated documents here; a bare string resolves to an IRI reference.
type VariationRef struct {
	IRI       gkscore.IRI
	Variation json.RawMessage
}

// MarshalJSON implements json.Marshaler.
func (r VariationRef) MarshalJSON() ([]byte, error) {
	if !r.IRI.IsZero() {
		return json.Marshal(r.IRI)
	}
	if len(r.Variation) == 0 {
		return []byte("null"), nil
	}
	return r.Variation, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *VariationRef) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*r = VariationRef{}
		return nil
	}
	if iri, ok := asIRI(data); ok {
		*r = VariationRef{IRI: iri}
		return nil
	}
	raw := make(json.RawMessage, len(data))
	copy(raw, data)
	*r = VariationRef{Variation: raw}
	return nil
}

// IsZero reports whether no member is set.
func (r VariationRef) IsZero() bool {
	return r.IRI.IsZero() && len(r.Variation) == 0
}

// EvidenceLineRef holds either an inline EvidenceLine or an IRI reference,
// for a Statement's hasEvidenceLines elements.
type EvidenceLineRef struct {
	EvidenceLine *EvidenceLine
	IRI          gkscore.IRI
}

// MarshalJSON implements json.Marshaler.
func (r EvidenceLineRef) MarshalJSON() ([]byte, error) {
	if !r.IRI.IsZero() {
		return json.Marshal(r.IRI)
	}
	return json.Marshal(r.EvidenceLine)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *EvidenceLineRef) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*r = EvidenceLineRef{}
		return nil
	}
	if iri, ok := asIRI(data); ok {
		*r = EvidenceLineRef{IRI: iri}
		return nil
	}
	el, err := ParseEvidenceLine(data)
	if err != nil {
		return err
	}
	*r = EvidenceLineRef{EvidenceLine: el}
	return nil
}
