// Package gkscore contains the GKS core entity model shared by every VA-Spec
// record kind: the Entity base shape, Coding and MappableConcept value types,
// the IRI reference type, and GA4GH digest/identifier helpers.
//
// Reference: GA4GH GKS Core Information Model (gks-core), which the VA-Spec
// record kinds extend.
package gkscore

// Coding represents a term taken from a named code system, pairing the system
// identifier with the code value assigned by that system.
type Coding struct {
	Name          string `json:"name,omitempty"`
	System        string `json:"system"`
	SystemVersion string `json:"systemVersion,omitempty"`
	Code          string `json:"code"`
}

// ConceptMapping maps a concept to a Coding in another code system.
type ConceptMapping struct {
	Coding   Coding `json:"coding"`
	Relation string `json:"relation"`
}

// MappableConcept represents a concept from a controlled vocabulary. The
// primary coding carries the authoritative system/code pair; name is an
// optional human-readable label. No validation happens at this layer -
// whether a given system/code combination is acceptable depends on the
// guideline profile that binds the field, and is enforced by the profile's
// validators at record construction time.
type MappableConcept struct {
	ConceptType   string           `json:"conceptType,omitempty"`
	Name          string           `json:"name,omitempty"`
	PrimaryCoding *Coding          `json:"primaryCoding,omitempty"`
	Mappings      []ConceptMapping `json:"mappings,omitempty"`
}

// NewConcept builds a MappableConcept with a primary coding from its
// system/code/name subfields.
func NewConcept(system, code, name string) MappableConcept {
	return MappableConcept{
		Name:          name,
		PrimaryCoding: &Coding{System: system, Code: code},
	}
}

// Equal reports structural equality: two concepts are equal iff all fields
// are equal.
func (m MappableConcept) Equal(o MappableConcept) bool {
	if m.ConceptType != o.ConceptType || m.Name != o.Name {
		return false
	}
	if (m.PrimaryCoding == nil) != (o.PrimaryCoding == nil) {
		return false
	}
	if m.PrimaryCoding != nil && *m.PrimaryCoding != *o.PrimaryCoding {
		return false
	}
	if len(m.Mappings) != len(o.Mappings) {
		return false
	}
	for i := range m.Mappings {
		if m.Mappings[i] != o.Mappings[i] {
			return false
		}
	}
	return true
}
