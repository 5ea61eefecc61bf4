package gkscore

// IRI is a lightweight reference standing in for any Entity: an opaque
// URI-like string resolved lazily by an external collaborator. It is never
// expanded by this library. An IRI serializes as a bare JSON string.
type IRI string

// String returns the reference value.
func (i IRI) String() string {
	return string(i)
}

// IsZero reports whether the reference is empty.
func (i IRI) IsZero() bool {
	return i == ""
}
