package gkscore

// Extension captures a non-standard attribute attached to an Entity.
type Extension struct {
	Name        string `json:"name"`
	Value       any    `json:"value,omitempty"`
	Description string `json:"description,omitempty"`
}

// Entity is the base shape embedded by every addressable record kind. The
// id is an optional caller-assigned opaque identifier; type is the fixed
// discriminator literal of the concrete kind and is set by the kind's
// constructor regardless of input.
type Entity struct {
	ID          string      `json:"id,omitempty"`
	Type        string      `json:"type"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Extensions  []Extension `json:"extensions,omitempty"`
}

// EntityFields lists the JSON field names contributed by the Entity base
// shape, in declaration order. Concrete kinds prepend these to their own
// field sets when registering with the kind registry.
func EntityFields() []string {
	return []string{"id", "type", "name", "description", "extensions"}
}
