package sift

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"github.com/annokit/sift/i18n"
)

// Validator wraps a schema and validates documents against it. Construct one
// per schema definition; a Validator is immutable and safe for concurrent use
// once built, since each Validate call operates on its own deep copy.
type Validator struct {
	root   *SchemaNode
	strict bool
}

// ValidatorOption configures a Validator at construction time.
type ValidatorOption func(*Validator)

// Strict makes schema-unknown properties a violation instead of ignoring
// them (additionalProperties: false semantics).
func Strict() ValidatorOption {
	return func(v *Validator) { v.strict = true }
}

// NewValidator builds a Validator for the given object root.
func NewValidator(root *SchemaNode, opts ...ValidatorOption) *Validator {
	v := &Validator{root: root}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate deep-copies doc, runs every applicable rule against the copy, and
// either returns the validated copy or fails with a single aggregated
// ValidationError listing every violation found. The caller's original is
// never mutated and there is no partial success.
func (v *Validator) Validate(ctx context.Context, doc any) (any, error) {
	cp := CloneValue(doc)
	var vs []Violation
	v.checkNode(ctx, "", v.root, cp, &vs)
	if len(vs) > 0 {
		return nil, NewValidationError(vs)
	}
	return cp, nil
}

func (v *Validator) checkNode(ctx context.Context, path string, node *SchemaNode, value any, vs *[]Violation) {
	if IsFailFast(ctx) && len(*vs) > 0 {
		return
	}
	before := len(*vs)
	switch node.Kind {
	case KindObject:
		v.checkObject(ctx, path, node, value, vs)
	case KindSequence:
		v.checkSequence(ctx, path, node, value, vs)
	case KindString:
		v.checkString(path, node, value, vs)
	case KindInteger:
		if !isInteger(value) {
			*vs = AppendViolations(*vs, typeViolation(path, "integer"))
		}
	case KindNumber:
		if !isNumber(value) {
			*vs = AppendViolations(*vs, typeViolation(path, "number"))
		}
	case KindBoolean:
		if _, ok := value.(bool); !ok {
			*vs = AppendViolations(*vs, typeViolation(path, "boolean"))
		}
	case KindEnum:
		v.checkEnum(path, node, value, vs)
	}
	// extra check runs only when the node itself passed structurally
	if node.Check != nil && len(*vs) == before {
		if err := node.Check(ctx, path, value); err != nil {
			*vs = AppendViolations(*vs, violationsFromErr(path, err)...)
		}
	}
}

func (v *Validator) checkObject(ctx context.Context, path string, node *SchemaNode, value any, vs *[]Violation) {
	m, ok := value.(map[string]any)
	if !ok {
		*vs = AppendViolations(*vs, typeViolation(path, "object"))
		return
	}
	// children in declaration order for deterministic reports
	for _, child := range node.Children {
		cpath := joinPath(path, child.Name)
		val, exists := m[child.Name]
		if !exists {
			if child.Required {
				*vs = AppendViolations(*vs, Violation{Path: cpath, Code: CodeRequired, Message: i18n.T(CodeRequired, nil)})
				if IsFailFast(ctx) {
					return
				}
			}
			continue
		}
		v.checkNode(ctx, cpath, child, val, vs)
		if IsFailFast(ctx) && len(*vs) > 0 {
			return
		}
	}
	if !v.strict {
		return
	}
	// unknown keys in sorted order
	var unknown []string
	for k := range m {
		if node.Lookup(k) == nil {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		*vs = AppendViolations(*vs, Violation{Path: joinPath(path, k), Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, nil)})
		if IsFailFast(ctx) {
			return
		}
	}
}

func (v *Validator) checkSequence(ctx context.Context, path string, node *SchemaNode, value any, vs *[]Violation) {
	arr, ok := value.([]any)
	if !ok {
		*vs = AppendViolations(*vs, typeViolation(path, "array"))
		return
	}
	for i, el := range arr {
		v.checkNode(ctx, joinPath(path, strconv.Itoa(i)), node.Elem, el, vs)
		if IsFailFast(ctx) && len(*vs) > 0 {
			return
		}
	}
}

func (v *Validator) checkString(path string, node *SchemaNode, value any, vs *[]Violation) {
	s, ok := value.(string)
	if !ok {
		*vs = AppendViolations(*vs, typeViolation(path, "string"))
		return
	}
	if node.Format == "" {
		return
	}
	fn := lookupFormat(node.Format)
	if fn == nil {
		// unknown formats are ignored, not rejected
		return
	}
	if !fn(s) {
		*vs = AppendViolations(*vs, Violation{
			Path: path, Code: CodeInvalidFormat,
			Message: i18n.T(CodeInvalidFormat, map[string]string{"format": node.Format}),
		})
	}
}

func (v *Validator) checkEnum(path string, node *SchemaNode, value any, vs *[]Violation) {
	s, ok := value.(string)
	if !ok {
		*vs = AppendViolations(*vs, typeViolation(path, "string"))
		return
	}
	if node.Type == nil {
		return
	}
	if _, err := node.Type.Deserialize(path, s); err != nil {
		*vs = AppendViolations(*vs, violationsFromErr(path, err)...)
	}
}

func typeViolation(path, expected string) Violation {
	return Violation{
		Path: path, Code: CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": expected}),
	}
}

// violationsFromErr converts an error into violations, wrapping non-aggregated
// errors with CodeParseError at the given path.
func violationsFromErr(path string, err error) []Violation {
	if err == nil {
		return nil
	}
	if ve, ok := AsValidationError(err); ok {
		return ve.Violations
	}
	return []Violation{{Path: path, Code: CodeParseError, Message: err.Error()}}
}

func isInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return true
		}
		return false
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return math.Trunc(n) == n && !math.IsInf(n, 0)
	default:
		return false
	}
}

func isNumber(v any) bool {
	switch n := v.(type) {
	case json.Number:
		if _, err := strconv.ParseFloat(string(n), 64); err == nil {
			return true
		}
		return false
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}
