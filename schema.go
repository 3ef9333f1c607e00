package sift

import (
	"context"
	"fmt"
	"sort"

	js "github.com/annokit/sift/jsonschema"
)

// Kind enumerates the shapes a schema node can take. Scalar kinds carry the
// concrete wire type so that query-string coercion knows what to produce.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBoolean
	KindObject
	KindSequence
	KindEnum
)

// String returns the JSON-Schema-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindSequence:
		return "array"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// IsScalar reports whether the kind is a leaf wire type (including enums).
func (k Kind) IsScalar() bool {
	switch k {
	case KindString, KindInteger, KindNumber, KindBoolean, KindEnum:
		return true
	default:
		return false
	}
}

// CheckFunc is an extra per-node check run after the structural type check
// passes. It exists as the hook point for external capabilities such as CSRF
// verification; the core never constructs one itself.
type CheckFunc func(ctx context.Context, path string, value any) error

// SchemaNode is one node in the declarative schema tree. A node of kind
// KindObject always has Children defined (possibly empty); a node of kind
// KindSequence always has Elem defined. Nodes are immutable once constructed
// and safe to share across concurrent validations.
type SchemaNode struct {
	Name     string
	Kind     Kind
	Children []*SchemaNode // KindObject only; ordered, names unique among siblings.
	Elem     *SchemaNode   // KindSequence only.
	Required bool
	Format   string   // Optional format check for string scalars.
	Type     NodeType // KindEnum only; serialize/deserialize contract.
	Check    CheckFunc
}

// Lookup returns the child with the given name, or nil when no such child
// exists. It is meaningful only for object nodes.
func (n *SchemaNode) Lookup(name string) *SchemaNode {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IsSequence reports whether the node describes a repeatable (list-valued)
// field.
func (n *SchemaNode) IsSequence() bool {
	return n != nil && n.Kind == KindSequence
}

// JSONSchema projects the node into a minimal JSON Schema representation.
func (n *SchemaNode) JSONSchema() *js.Schema {
	if n == nil {
		return &js.Schema{}
	}
	switch n.Kind {
	case KindObject:
		props := make(map[string]*js.Schema, len(n.Children))
		var req []string
		for _, c := range n.Children {
			props[c.Name] = c.JSONSchema()
			if c.Required {
				req = append(req, c.Name)
			}
		}
		sort.Strings(req)
		return &js.Schema{Type: "object", Properties: props, Required: req}
	case KindSequence:
		return &js.Schema{Type: "array", Items: n.Elem.JSONSchema()}
	case KindEnum:
		s := &js.Schema{Type: "string"}
		if n.Type != nil {
			s.Enum = n.Type.Members()
		}
		return s
	default:
		return &js.Schema{Type: n.Kind.String(), Format: n.Format}
	}
}

// FromJSONSchema compiles a JSON-Schema-shaped definition into a SchemaNode
// tree. Only the documented subset is accepted: object/array/string/integer/
// number/boolean types, properties, required, format, enum, and nested
// objects. Anything else fails with a ValidationError carrying CodeParseError.
func FromJSONSchema(s *js.Schema) (*SchemaNode, error) {
	return compileSchema("", s)
}

func compileSchema(name string, s *js.Schema) (*SchemaNode, error) {
	if s == nil {
		return nil, NewValidationError([]Violation{{Path: name, Code: CodeParseError, Message: "nil schema definition"}})
	}
	if len(s.Enum) > 0 {
		return &SchemaNode{Name: name, Kind: KindEnum, Type: EnumOf(s.Enum...)}, nil
	}
	switch s.Type {
	case "object":
		node := &SchemaNode{Name: name, Kind: KindObject, Children: []*SchemaNode{}}
		// properties in sorted key order for deterministic traversal
		keys := make([]string, 0, len(s.Properties))
		for k := range s.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		req := make(map[string]struct{}, len(s.Required))
		for _, r := range s.Required {
			req[r] = struct{}{}
		}
		for _, k := range keys {
			child, err := compileSchema(k, s.Properties[k])
			if err != nil {
				return nil, err
			}
			if _, ok := req[k]; ok {
				child.Required = true
			}
			node.Children = append(node.Children, child)
		}
		return node, nil
	case "array":
		elem, err := compileSchema(name, s.Items)
		if err != nil {
			return nil, err
		}
		return &SchemaNode{Name: name, Kind: KindSequence, Elem: elem}, nil
	case "string":
		return &SchemaNode{Name: name, Kind: KindString, Format: s.Format}, nil
	case "integer":
		return &SchemaNode{Name: name, Kind: KindInteger}, nil
	case "number":
		return &SchemaNode{Name: name, Kind: KindNumber}, nil
	case "boolean":
		return &SchemaNode{Name: name, Kind: KindBoolean}, nil
	default:
		return nil, NewValidationError([]Violation{{
			Path: name, Code: CodeParseError,
			Message: fmt.Sprintf("unsupported schema type %q", s.Type),
		}})
	}
}
