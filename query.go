package sift

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/annokit/sift/i18n"
)

// Param is one (key, value) arrival in a Multimap.
type Param struct {
	Key   string
	Value string
}

// Multimap is an ordered sequence of key/value pairs permitting repeated
// keys, typically sourced from a URL query string. It is consumed once and
// never mutated after handoff.
type Multimap []Param

// Add appends a pair, preserving arrival order.
func (m *Multimap) Add(key, value string) {
	*m = append(*m, Param{Key: key, Value: value})
}

// FromValues flattens url.Values into a Multimap. Per-key value order is
// preserved; keys are visited in sorted order because url.Values does not
// record cross-key arrival order.
func FromValues(vals url.Values) Multimap {
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var m Multimap
	for _, k := range keys {
		for _, v := range vals[k] {
			m.Add(k, v)
		}
	}
	return m
}

// CombineRepeated reconciles repeated keys against the schema's notion of
// scalar-vs-sequence fields. Keys declared as sequences keep every value in
// arrival order; all other keys (including schema-unknown ones) collapse to
// their last value, mirroring common query-string semantics.
func CombineRepeated(root *SchemaNode, m Multimap) map[string]any {
	order := make([]string, 0, len(m))
	grouped := make(map[string][]string, len(m))
	for _, p := range m {
		if _, seen := grouped[p.Key]; !seen {
			order = append(order, p.Key)
		}
		grouped[p.Key] = append(grouped[p.Key], p.Value)
	}

	out := make(map[string]any, len(order))
	for _, key := range order {
		values := grouped[key]
		if node := root.Lookup(key); node.IsSequence() {
			out[key] = values
			continue
		}
		out[key] = values[len(values)-1]
	}
	return out
}

// ValidateParams normalizes a multimap against the schema and deserializes
// the result: numeric strings become numbers, boolean strings become bools,
// enum tokens become enum members, and sequence fields become ordered slices.
// Schema-unknown keys are dropped. Failures surface as one aggregated
// ValidationError whose entries are merged by path (nested entries overwrite
// parent entries) and joined with newlines.
func ValidateParams(ctx context.Context, root *SchemaNode, m Multimap) (map[string]any, error) {
	combined := CombineRepeated(root, m)

	out := make(map[string]any, len(combined))
	var vs []Violation
	for _, child := range root.Children {
		raw, ok := combined[child.Name]
		if !ok {
			// an absent sequence is absent, not an error, unless required
			if child.Required {
				vs = AppendViolations(vs, Violation{Path: child.Name, Code: CodeRequired, Message: i18n.T(CodeRequired, nil)})
				if IsFailFast(ctx) {
					break
				}
			}
			continue
		}
		if child.IsSequence() {
			tokens, _ := raw.([]string)
			elems := make([]any, 0, len(tokens))
			var bad bool
			for i, tok := range tokens {
				val, i2 := coerceToken(joinPath(child.Name, strconv.Itoa(i)), child.Elem, tok)
				if len(i2) > 0 {
					vs = AppendViolations(vs, i2...)
					bad = true
					continue
				}
				elems = append(elems, val)
			}
			if !bad {
				out[child.Name] = elems
			}
			if IsFailFast(ctx) && len(vs) > 0 {
				break
			}
			continue
		}
		token, _ := raw.(string)
		val, i2 := coerceToken(child.Name, child, token)
		if len(i2) > 0 {
			vs = AppendViolations(vs, i2...)
			if IsFailFast(ctx) {
				break
			}
			continue
		}
		out[child.Name] = val
	}
	if len(vs) > 0 {
		return nil, newlineValidationError(mergeByPath(vs))
	}
	return out, nil
}

// coerceToken converts one raw wire token according to the node's declared
// scalar kind.
func coerceToken(path string, node *SchemaNode, token string) (any, []Violation) {
	switch node.Kind {
	case KindString:
		if node.Format != "" {
			if fn := lookupFormat(node.Format); fn != nil && !fn(token) {
				return nil, []Violation{{
					Path: path, Code: CodeInvalidFormat,
					Message: i18n.T(CodeInvalidFormat, map[string]string{"format": node.Format}),
				}}
			}
		}
		return token, nil
	case KindInteger:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, []Violation{typeViolation(path, "integer")}
		}
		return int(n), nil
	case KindNumber:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, []Violation{typeViolation(path, "number")}
		}
		return f, nil
	case KindBoolean:
		b, ok := parseBoolToken(token)
		if !ok {
			return nil, []Violation{typeViolation(path, "boolean")}
		}
		return b, nil
	case KindEnum:
		if node.Type == nil {
			return token, nil
		}
		member, err := node.Type.Deserialize(path, token)
		if err != nil {
			return nil, violationsFromErr(path, err)
		}
		return member, nil
	default:
		// objects cannot be expressed in a query string
		return nil, []Violation{typeViolation(path, node.Kind.String())}
	}
}

// parseBoolToken accepts the usual query-string boolean spellings,
// case-insensitively.
func parseBoolToken(token string) (bool, bool) {
	switch strings.ToLower(token) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}

// mergeByPath collapses violations into one entry per path. A later entry for
// the same path unconditionally overwrites the earlier one, so nested errors
// win over parent-level ones. First-seen path order is preserved.
func mergeByPath(vs []Violation) []Violation {
	order := make([]string, 0, len(vs))
	byPath := make(map[string]Violation, len(vs))
	for _, v := range vs {
		if _, seen := byPath[v.Path]; !seen {
			order = append(order, v.Path)
		}
		byPath[v.Path] = v
	}
	out := make([]Violation, 0, len(order))
	for _, p := range order {
		out = append(out, byPath[p])
	}
	return out
}
