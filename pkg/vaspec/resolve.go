package vaspec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ga4gh/va-spec-go/pkg/gkscore"
)

// The resolution engine turns loosely-typed input into a concrete record
// kind. A bare JSON string always resolves to an IRI reference; a JSON
// object resolves by its `type` discriminator or, for propositions, by its
// field-presence signature. Resolution is pure: it never mutates input and
// a failed resolution constructs nothing.

// isJSONNull reports whether data is the JSON null literal.
func isJSONNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

// asString reports whether data is a bare JSON string, and decodes it.
func asString(data []byte) (string, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}

// asIRI resolves a bare JSON string to an IRI reference.
func asIRI(data []byte) (gkscore.IRI, bool) {
	s, ok := asString(data)
	if !ok {
		return "", false
	}
	return gkscore.IRI(s), true
}

// peekType extracts the `type` discriminator from a JSON object without
// constructing anything else.
func peekType(data []byte) (string, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", fmt.Errorf("malformed record document: %w", err)
	}
	return envelope.Type, nil
}

// peekFields reports which top-level field names are present in a JSON
// object, for field-presence-signature resolution.
func peekFields(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("malformed record document: %w", err)
	}
	return fields, nil
}

// CheckType enforces discriminator fidelity: an absent type is filled in
// with the kind's registered literal during construction, a present type
// must equal it exactly.
func CheckType(field, got, want string) error {
	if got != "" && got != want {
		return NewDiscriminatorError(field, got, want)
	}
	return nil
}
