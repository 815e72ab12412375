// Package errs defines the failure kinds every stage of the pipeline reports.
//
// Errors are plain wrapped errors: the kind sentinel and the underlying cause
// are both reachable through errors.Is, e.g.
//
//	fmt.Errorf("%w: opening %s: %w", errs.ErrIO, path, err)
package errs

import "errors"

// Failure kinds. Every error leaving the pipeline wraps exactly one of these.
var (
	ErrIO         = errors.New("i/o failure")
	ErrParse      = errors.New("parse failure")
	ErrValidation = errors.New("validation failure")
	ErrRender     = errors.New("rendering failure")
	ErrInvariant  = errors.New("internal invariant violated")
)

// Kind is a short classification used for logs and exit codes.
type Kind string

const (
	KindUnknown    Kind = "unknown"
	KindIO         Kind = "io"
	KindParse      Kind = "parse"
	KindValidation Kind = "validation"
	KindRender     Kind = "render"
	KindInvariant  Kind = "invariant"
)

var kinds = []struct {
	sentinel error
	kind     Kind
	code     int
}{
	{ErrIO, KindIO, 3},
	{ErrParse, KindParse, 4},
	{ErrValidation, KindValidation, 5},
	{ErrRender, KindRender, 6},
	{ErrInvariant, KindInvariant, 70},
}

// KindOf classifies err by the sentinel it wraps.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindUnknown
}

// ExitCode maps err to the process exit status. nil is 0, unclassified errors are 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.code
		}
	}
	return 1
}
