package sift

// CloneValue returns a structural deep copy of a JSON-compatible value tree
// (nil, bool, string, numbers, []any, map[string]any). Values outside that
// set are returned as-is; the validator will reject them on type grounds
// rather than attempt to copy them.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = CloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = CloneValue(val)
		}
		return out
	default:
		return v
	}
}
