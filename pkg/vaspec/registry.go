package vaspec

import (
	"fmt"
	"sort"
)

// Kind describes a registered concrete record kind: its schema title, its
// discriminator literal, the exact JSON field set its schema declares, and
// a parse function constructing (and validating) an instance from a JSON
// document. Name and Type coincide for the base kinds; guideline profile
// kinds keep the base discriminator literal (a profile statement still has
// type "Statement") under their own schema title. The field set and
// literal are introspectable so external conformance harnesses can check
// field-set and discriminator parity against the VA-Spec JSON Schema.
type Kind struct {
	Name   string
	Type   string
	Fields []string
	Parse  func(data []byte) (any, error)
}

var kinds = map[string]Kind{}

// RegisterKind adds a concrete kind to the catalog. Kinds register during
// package initialization; duplicate names indicate a catalog bug and panic.
func RegisterKind(k Kind) {
	if _, exists := kinds[k.Name]; exists {
		panic(fmt.Sprintf("vaspec: kind %q registered twice", k.Name))
	}
	kinds[k.Name] = k
}

// LookupKind returns the kind registered under the schema title.
func LookupKind(name string) (Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}

// Kinds returns all registered kinds sorted by schema title.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
