package predkit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrInvalidSpec is returned when a combinator is constructed with
	// self-contradictory parameters. It always surfaces at construction
	// time, never at call time.
	ErrInvalidSpec errorkit.Error = "ErrInvalidSpec"

	// ErrUnsupported is the panic value used when a predicate is applied
	// to a value its underlying operation cannot handle, such as asking
	// for the length of a value without one. Such failures are never
	// converted into a boolean false.
	ErrUnsupported errorkit.Error = "ErrUnsupported"
)
