package sift_test

import (
	"reflect"
	"testing"

	sift "github.com/annokit/sift"
)

func TestCloneValue_DeepIndependence(t *testing.T) {
	orig := map[string]any{
		"a": "x",
		"b": []any{1, map[string]any{"c": true}},
		"d": map[string]any{"e": nil},
	}

	cp := sift.CloneValue(orig).(map[string]any)
	if !reflect.DeepEqual(cp, orig) {
		t.Fatalf("clone differs: %v vs %v", cp, orig)
	}

	cp["a"] = "changed"
	cp["b"].([]any)[1].(map[string]any)["c"] = false
	cp["d"].(map[string]any)["e"] = "filled"

	if orig["a"] != "x" {
		t.Fatalf("top-level mutation leaked into original")
	}
	if orig["b"].([]any)[1].(map[string]any)["c"] != true {
		t.Fatalf("nested mutation leaked into original")
	}
	if orig["d"].(map[string]any)["e"] != nil {
		t.Fatalf("nested map mutation leaked into original")
	}
}

func TestCloneValue_Primitives(t *testing.T) {
	for _, v := range []any{nil, true, "s", 42, 4.2} {
		if got := sift.CloneValue(v); got != v {
			t.Fatalf("clone of %v (%T) = %v", v, v, got)
		}
	}
}
