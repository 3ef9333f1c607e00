package jsonschema

// Schema is a minimal JSON Schema representation used both for export and as
// the authoring surface for schema definitions loaded from YAML or JSON.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type   string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format string   `json:"format,omitempty" yaml:"format,omitempty"`
	Enum   []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string           `json:"required,omitempty" yaml:"required,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`
}
