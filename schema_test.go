package sift_test

import (
	"reflect"
	"testing"

	sift "github.com/annokit/sift"
	"github.com/annokit/sift/dsl"
	js "github.com/annokit/sift/jsonschema"
)

func TestSchemaNode_Lookup(t *testing.T) {
	root := searchParamsSchema()

	if n := root.Lookup("limit"); n == nil || n.Kind != sift.KindInteger {
		t.Fatalf("lookup(limit) = %v", n)
	}
	if n := root.Lookup("nope"); n != nil {
		t.Fatalf("lookup of unknown name must be nil, got %v", n)
	}
}

func TestSchemaNode_IsSequence(t *testing.T) {
	root := searchParamsSchema()

	if !root.Lookup("quote").IsSequence() {
		t.Fatalf("quote is declared repeatable")
	}
	if root.Lookup("limit").IsSequence() {
		t.Fatalf("limit is a scalar")
	}
	var nilNode *sift.SchemaNode
	if nilNode.IsSequence() {
		t.Fatalf("nil node is not a sequence")
	}
}

func TestFromJSONSchema_Subset(t *testing.T) {
	def := &js.Schema{
		Type: "object",
		Properties: map[string]*js.Schema{
			"name":  {Type: "string"},
			"limit": {Type: "integer"},
			"order": {Type: "string", Enum: []string{"asc", "desc"}},
			"tags":  {Type: "array", Items: &js.Schema{Type: "string"}},
			"scopes": {
				Type: "object",
				Properties: map[string]*js.Schema{
					"enforced": {Type: "boolean"},
				},
			},
		},
		Required: []string{"name"},
	}

	root, err := sift.FromJSONSchema(def)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if root.Kind != sift.KindObject || len(root.Children) != 5 {
		t.Fatalf("unexpected root: %+v", root)
	}
	if n := root.Lookup("name"); n == nil || !n.Required || n.Kind != sift.KindString {
		t.Fatalf("name: %+v", n)
	}
	if n := root.Lookup("order"); n == nil || n.Kind != sift.KindEnum || n.Type == nil {
		t.Fatalf("order: %+v", n)
	}
	if n := root.Lookup("tags"); !n.IsSequence() || n.Elem.Kind != sift.KindString {
		t.Fatalf("tags: %+v", n)
	}
	if n := root.Lookup("scopes"); n.Kind != sift.KindObject || n.Lookup("enforced") == nil {
		t.Fatalf("scopes: %+v", n)
	}
}

func TestFromJSONSchema_RejectsUnsupportedType(t *testing.T) {
	_, err := sift.FromJSONSchema(&js.Schema{
		Type: "object",
		Properties: map[string]*js.Schema{
			"blob": {Type: "binary"},
		},
	})
	ve, ok := sift.AsValidationError(err)
	if !ok || len(ve.Violations) != 1 || ve.Violations[0].Code != sift.CodeParseError {
		t.Fatalf("expected parse_error for unsupported type, got %v", err)
	}
}

func TestSchemaNode_JSONSchemaProjection(t *testing.T) {
	root := dsl.Object().
		Field("name", dsl.String().Format("email")).Required().
		Field("order", dsl.Enum(orderAsc, orderDesc)).
		Field("tags", dsl.Array(dsl.String())).
		MustBuild()

	got := root.JSONSchema()
	if got.Type != "object" || len(got.Properties) != 3 {
		t.Fatalf("unexpected projection: %+v", got)
	}
	if !reflect.DeepEqual(got.Required, []string{"name"}) {
		t.Fatalf("required: %v", got.Required)
	}
	if p := got.Properties["name"]; p.Type != "string" || p.Format != "email" {
		t.Fatalf("name: %+v", p)
	}
	if p := got.Properties["order"]; !reflect.DeepEqual(p.Enum, []string{"asc", "desc"}) {
		t.Fatalf("order: %+v", p)
	}
	if p := got.Properties["tags"]; p.Type != "array" || p.Items.Type != "string" {
		t.Fatalf("tags: %+v", p)
	}
}
