// Package schemayaml loads schema definitions authored in YAML and compiles
// them into the sift schema model. Decoding is strict: unknown keys in a
// definition are an error rather than being silently dropped.
package schemayaml

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	sift "github.com/annokit/sift"
	js "github.com/annokit/sift/jsonschema"
)

// Load parses a YAML schema definition and compiles it into a SchemaNode
// tree. The definition uses the JSON-Schema-shaped subset: type, format,
// enum, properties, required, items.
func Load(data []byte) (*sift.SchemaNode, error) {
	return LoadReader(bytes.NewReader(data))
}

// LoadReader is the io.Reader variant of Load.
func LoadReader(r io.Reader) (*sift.SchemaNode, error) {
	var s js.Schema
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, sift.NewValidationError([]sift.Violation{{
			Code:    sift.CodeParseError,
			Message: err.Error(),
		}})
	}
	return sift.FromJSONSchema(&s)
}
