package sift_test

import (
	"fmt"
	"testing"

	sift "github.com/annokit/sift"
)

func TestValidationError_CommaJoined(t *testing.T) {
	err := sift.NewValidationError([]sift.Violation{
		{Path: "a", Code: sift.CodeInvalidType, Message: "is not of type 'string'"},
		{Path: "b", Code: sift.CodeRequired, Message: "is a required property"},
	})
	want := "a: is not of type 'string', b: is a required property"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestValidationError_RootViolationOmitsPath(t *testing.T) {
	err := sift.NewValidationError([]sift.Violation{
		{Code: sift.CodeInvalidType, Message: "is not of type 'object'"},
	})
	if err.Error() != "is not of type 'object'" {
		t.Fatalf("root-level violation should render message alone, got %q", err.Error())
	}
}

func TestNewValidationError_EmptyIsNil(t *testing.T) {
	if err := sift.NewValidationError(nil); err != nil {
		t.Fatalf("expected nil error for empty violation list, got %v", err)
	}
}

func TestAsValidationError(t *testing.T) {
	ve := sift.NewValidationError([]sift.Violation{{Path: "x", Code: sift.CodeRequired, Message: "is a required property"}})
	wrapped := fmt.Errorf("validate request: %w", ve)

	got, ok := sift.AsValidationError(wrapped)
	if !ok || len(got.Violations) != 1 || got.Violations[0].Path != "x" {
		t.Fatalf("expected wrapped ValidationError to be extracted, got %v ok=%v", got, ok)
	}

	if _, ok := sift.AsValidationError(fmt.Errorf("plain")); ok {
		t.Fatalf("plain error must not extract as ValidationError")
	}
	if _, ok := sift.AsValidationError(nil); ok {
		t.Fatalf("nil error must not extract as ValidationError")
	}
}
