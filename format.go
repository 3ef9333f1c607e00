package sift

import (
	"net/mail"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FormatFunc reports whether a string value satisfies a named format. Format
// checks only flag validity; they never transform the value.
type FormatFunc func(value string) bool

var (
	formatMu    sync.RWMutex
	formatFuncs = map[string]FormatFunc{
		"date-time": func(v string) bool {
			_, err := time.Parse(time.RFC3339, v)
			return err == nil
		},
		"email": func(v string) bool {
			_, err := mail.ParseAddress(v)
			return err == nil
		},
		"uri": func(v string) bool {
			u, err := url.Parse(v)
			return err == nil && u.Scheme != ""
		},
		"uuid": func(v string) bool {
			_, err := uuid.Parse(v)
			return err == nil
		},
	}
)

// RegisterFormat installs or replaces a named format checker. Passing a nil
// function removes the format.
func RegisterFormat(name string, fn FormatFunc) {
	formatMu.Lock()
	defer formatMu.Unlock()
	if fn == nil {
		delete(formatFuncs, name)
		return
	}
	formatFuncs[name] = fn
}

// lookupFormat returns the checker for a named format. Unknown formats return
// nil and are skipped during validation, matching the lenient behavior of
// JSON Schema format checkers.
func lookupFormat(name string) FormatFunc {
	formatMu.RLock()
	defer formatMu.RUnlock()
	return formatFuncs[name]
}
