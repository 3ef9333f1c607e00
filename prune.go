package sift

// Prune deletes schema-unknown properties from doc in place, guided by the
// object node's children at each level. It never validates the properties it
// keeps: a retained value of the wrong type is left as-is for the validator
// to reject on a later pass. Pass a copy when the original must survive.
//
// A value whose schema node declares no nested children is never descended
// into, even when the data is object-shaped; such a value is structurally
// wrong and is left for a downstream consumer to reject, not reshaped here.
func Prune(doc map[string]any, root *SchemaNode) {
	if doc == nil || root == nil || root.Kind != KindObject {
		return
	}

	type frame struct {
		data map[string]any
		node *SchemaNode
	}
	work := []frame{{data: doc, node: root}}

	for len(work) > 0 {
		fr := work[len(work)-1]
		work = work[:len(work)-1]

		for key := range fr.data {
			if fr.node.Lookup(key) == nil {
				delete(fr.data, key)
			}
		}

		for key, val := range fr.data {
			nested, ok := val.(map[string]any)
			if !ok {
				continue
			}
			if child := fr.node.Lookup(key); child != nil && child.Kind == KindObject {
				work = append(work, frame{data: nested, node: child})
			}
		}
	}
}
