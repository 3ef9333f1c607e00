// Package dsl provides fluent builders for composing sift schema trees.
//
//	root := dsl.Object().
//		Field("order", dsl.Enum(OrderAsc, OrderDesc)).
//		Field("limit", dsl.Int()).Required().
//		Field("quote", dsl.Array(dsl.String())).
//		MustBuild()
package dsl

import (
	"fmt"

	sift "github.com/annokit/sift"
)

// FieldSpec describes the shape of a single field before it is attached to an
// object. Specs are value-like; attaching one copies the underlying node, so
// a spec can be reused for several fields.
type FieldSpec struct {
	node sift.SchemaNode
	err  error
}

// String declares a string scalar field.
func String() FieldSpec { return FieldSpec{node: sift.SchemaNode{Kind: sift.KindString}} }

// Int declares an integer scalar field.
func Int() FieldSpec { return FieldSpec{node: sift.SchemaNode{Kind: sift.KindInteger}} }

// Number declares a floating-point scalar field.
func Number() FieldSpec { return FieldSpec{node: sift.SchemaNode{Kind: sift.KindNumber}} }

// Bool declares a boolean scalar field.
func Bool() FieldSpec { return FieldSpec{node: sift.SchemaNode{Kind: sift.KindBoolean}} }

// Enum declares an enumerated field backed by sift.EnumOf over the given
// members.
func Enum[E ~string](members ...E) FieldSpec {
	return FieldSpec{node: sift.SchemaNode{Kind: sift.KindEnum, Type: sift.EnumOf(members...)}}
}

// Array declares a repeatable field holding elements of the given spec.
func Array(elem FieldSpec) FieldSpec {
	e := elem.node
	return FieldSpec{node: sift.SchemaNode{Kind: sift.KindSequence, Elem: &e}}
}

// objectSource is satisfied by *ObjectBuilder and by the chain value returned
// from Field, so nested objects can be embedded mid-chain.
type objectSource interface {
	Build() (*sift.SchemaNode, error)
}

// ObjectOf embeds a nested object built by another builder. A nested build
// error surfaces at the outer Build.
func ObjectOf(b objectSource) FieldSpec {
	n, err := b.Build()
	if err != nil {
		return FieldSpec{node: sift.SchemaNode{Kind: sift.KindObject, Children: []*sift.SchemaNode{}}, err: err}
	}
	return FieldSpec{node: *n}
}

// Node embeds a pre-built schema node (for example sift.CSRFNode).
func Node(n *sift.SchemaNode) FieldSpec { return FieldSpec{node: *n} }

// Format attaches a named format check to a string spec.
func (f FieldSpec) Format(name string) FieldSpec {
	f.node.Format = name
	return f
}

// ObjectBuilder accumulates fields for an object node.
type ObjectBuilder struct {
	children []*sift.SchemaNode
	err      error
}

type fieldStep struct {
	b    *ObjectBuilder
	node *sift.SchemaNode
}

// Object creates a new object builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{children: []*sift.SchemaNode{}}
}

// Field attaches a spec under the given name. Names must be unique among
// siblings; duplicates surface at Build time.
func (b *ObjectBuilder) Field(name string, f FieldSpec) *fieldStep {
	if f.err != nil && b.err == nil {
		b.err = f.err
	}
	for _, c := range b.children {
		if c.Name == name {
			if b.err == nil {
				b.err = fmt.Errorf("dsl: duplicate field %q", name)
			}
			return &fieldStep{b: b, node: c}
		}
	}
	n := f.node
	n.Name = name
	b.children = append(b.children, &n)
	return &fieldStep{b: b, node: &n}
}

// Required marks the field as required and returns the builder.
func (s *fieldStep) Required() *ObjectBuilder {
	s.node.Required = true
	return s.b
}

// Optional marks the field as optional (the default) and returns the builder.
func (s *fieldStep) Optional() *ObjectBuilder {
	s.node.Required = false
	return s.b
}

func (s *fieldStep) Field(name string, f FieldSpec) *fieldStep { return s.b.Field(name, f) }
func (s *fieldStep) Require(names ...string) *ObjectBuilder    { return s.b.Require(names...) }
func (s *fieldStep) Build() (*sift.SchemaNode, error)          { return s.b.Build() }
func (s *fieldStep) MustBuild() *sift.SchemaNode               { return s.b.MustBuild() }

// Require marks one or more previously attached fields as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	for _, name := range names {
		for _, c := range b.children {
			if c.Name == name {
				c.Required = true
			}
		}
	}
	return b
}

// Build validates the builder and returns the object root.
func (b *ObjectBuilder) Build() (*sift.SchemaNode, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &sift.SchemaNode{Kind: sift.KindObject, Children: b.children}, nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() *sift.SchemaNode {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}
