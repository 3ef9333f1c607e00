package schemayaml_test

import (
	"context"
	"reflect"
	"testing"

	sift "github.com/annokit/sift"
	"github.com/annokit/sift/schemayaml"
)

const searchDef = `
type: object
required: [order]
properties:
  order:
    type: string
    enum: [asc, desc]
  limit:
    type: integer
  quote:
    type: array
    items: {type: string}
  filter:
    type: object
    properties:
      uri: {type: string, format: uri}
`

func TestLoad_CompilesDefinition(t *testing.T) {
	root, err := schemayaml.Load([]byte(searchDef))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if n := root.Lookup("order"); n == nil || n.Kind != sift.KindEnum || !n.Required {
		t.Fatalf("order: %+v", n)
	}
	if n := root.Lookup("quote"); !n.IsSequence() {
		t.Fatalf("quote: %+v", n)
	}
	if n := root.Lookup("filter"); n.Kind != sift.KindObject || n.Lookup("uri").Format != "uri" {
		t.Fatalf("filter: %+v", n)
	}
}

func TestLoad_EndToEndWithQueryParams(t *testing.T) {
	root, err := schemayaml.Load([]byte(searchDef))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var m sift.Multimap
	m.Add("order", "desc")
	m.Add("limit", "10")
	m.Add("quote", "a")
	m.Add("quote", "b")

	out, err := sift.ValidateParams(context.Background(), root, m)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if out["order"] != "desc" || out["limit"] != 10 {
		t.Fatalf("got %v", out)
	}
	if !reflect.DeepEqual(out["quote"], []any{"a", "b"}) {
		t.Fatalf("quote: %v", out["quote"])
	}
}

func TestLoad_UnknownDefinitionKeyIsStrict(t *testing.T) {
	_, err := schemayaml.Load([]byte("type: object\nbogus: true\n"))
	ve, ok := sift.AsValidationError(err)
	if !ok || ve.Violations[0].Code != sift.CodeParseError {
		t.Fatalf("unknown definition keys must fail strictly, got %v", err)
	}
}

func TestLoad_UnsupportedType(t *testing.T) {
	_, err := schemayaml.Load([]byte("type: blob\n"))
	if _, ok := sift.AsValidationError(err); !ok {
		t.Fatalf("unsupported type must fail with ValidationError, got %v", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := schemayaml.Load([]byte("type: [unclosed"))
	if _, ok := sift.AsValidationError(err); !ok {
		t.Fatalf("malformed YAML must fail with ValidationError, got %v", err)
	}
}
