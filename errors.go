package sift

import (
	"errors"
	"strings"
)

// Violation codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid_format"
	CodeInvalidEnum   = "invalid_enum"
	CodeUnknownKey    = "unknown_key"
	CodeParseError    = "parse_error"
	CodeCSRFFailure   = "csrf_failure"
)

// Violation represents a single constraint failure located by a dotted path.
// Path is empty for root-level failures (for example, a document that is not
// an object at all).
type Violation struct {
	Path    string // Dotted path (for example: filter.limit or quote.1).
	Code    string // One of the codes listed above.
	Message string
}

// String renders the violation as "<path>: <message>", or the bare message
// when the violation has no path.
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// ValidationError aggregates every violation found during one validation
// pass. Violations are ordered by schema traversal, so repeated runs on
// identical input produce identical reports.
type ValidationError struct {
	Violations []Violation

	sep string
}

// NewValidationError builds an aggregated error whose message joins each
// violation with ", ". It returns nil when there are no violations.
func NewValidationError(vs []Violation) *ValidationError {
	if len(vs) == 0 {
		return nil
	}
	return &ValidationError{Violations: vs, sep: ", "}
}

// newlineValidationError is the query-parameter variant: entries joined with
// newlines rather than commas.
func newlineValidationError(vs []Violation) *ValidationError {
	if len(vs) == 0 {
		return nil
	}
	return &ValidationError{Violations: vs, sep: "\n"}
}

func (e *ValidationError) Error() string {
	sep := e.sep
	if sep == "" {
		sep = ", "
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, sep)
}

// AppendViolations appends violations to the destination, initializing the
// slice when needed.
func AppendViolations(dst []Violation, more ...Violation) []Violation {
	if dst == nil {
		dst = []Violation{}
	}
	return append(dst, more...)
}

// AsValidationError extracts a *ValidationError from an error using
// errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// joinPath appends a child segment to a dotted path.
func joinPath(base, child string) string {
	if base == "" {
		return child
	}
	return base + "." + child
}
