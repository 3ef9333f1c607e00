package sift

import "context"

type contextKey int

const _ctxKeyFailFast contextKey = iota

// WithFailFast returns a child context that marks fail-fast validation
// behavior: the validator stops collecting after the first violation instead
// of aggregating the full report.
func WithFailFast(ctx context.Context, on bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, on)
}

// IsFailFast reports whether fail-fast behavior was requested on the context.
func IsFailFast(ctx context.Context) bool {
	v, _ := ctx.Value(_ctxKeyFailFast).(bool)
	return v
}
