package sift

import "fmt"

// NodeType is the serialize/deserialize contract a schema node can delegate
// its leaf handling to. The empty string is the "absent" sentinel on the wire:
// Deserialize("") yields the absent member without error, and Serialize of an
// absent member yields "".
type NodeType interface {
	// Deserialize maps a raw wire token to a typed member. path locates the
	// node for error reporting.
	Deserialize(path, token string) (any, error)
	// Serialize maps a member back to its wire token. It never fails;
	// absent members serialize to the empty string.
	Serialize(member any) string
	// Members lists the legal wire tokens in declaration order.
	Members() []string
}

// enumType binds NodeType to one enumerated string type. Lookup is by member
// name, exact and case-sensitive.
type enumType[E ~string] struct {
	members []E
	byName  map[string]E
}

// EnumOf returns a NodeType backed by the given enum members. One generic
// constructor serves every enumerated field without per-enum boilerplate.
func EnumOf[E ~string](members ...E) NodeType {
	t := enumType[E]{members: members, byName: make(map[string]E, len(members))}
	for _, m := range members {
		t.byName[string(m)] = m
	}
	return t
}

func (t enumType[E]) Deserialize(path, token string) (any, error) {
	if token == "" {
		var zero E
		return zero, nil
	}
	if m, ok := t.byName[token]; ok {
		return m, nil
	}
	return nil, NewValidationError([]Violation{{
		Path:    path,
		Code:    CodeInvalidEnum,
		Message: fmt.Sprintf("%q is not a known value", token),
	}})
}

func (t enumType[E]) Serialize(member any) string {
	switch m := member.(type) {
	case nil:
		return ""
	case E:
		return string(m)
	case string:
		return m
	default:
		return ""
	}
}

func (t enumType[E]) Members() []string {
	out := make([]string, 0, len(t.members))
	for _, m := range t.members {
		out = append(out, string(m))
	}
	return out
}
