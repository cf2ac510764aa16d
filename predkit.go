// Package predkit provides predicate combinators: higher-order functions
// that build boolean-valued callables by composing other predicates,
// and by inspecting the shape of a call.
//
// A predicate is a pure function from a call's arguments to a boolean.
// Calls are represented explicitly as a Call value, an ordered list of
// positional values plus a name-to-value mapping for keyword values,
// so the same predicate can be reused against calls of any shape.
package predkit

type (
	// Call is the explicit representation of a call's arguments:
	// the positional values in order, and the keyword values by name.
	Call struct {
		Args   []any
		KWArgs map[string]any
	}

	// Predicate is a pure function from a call's arguments to a boolean.
	Predicate func(c Call) bool

	// ValuePredicate is a predicate over a single value.
	ValuePredicate func(v any) bool
)

// CallTo makes a Call out of positional arguments.
func CallTo(args ...any) Call {
	return Call{Args: args}
}

// WithKW returns a copy of the Call extended with a keyword argument.
// The receiver is left untouched, so shared Call values stay safe to reuse.
func (c Call) WithKW(name string, value any) Call {
	kwargs := make(map[string]any, len(c.KWArgs)+1)
	for k, v := range c.KWArgs {
		kwargs[k] = v
	}
	kwargs[name] = value
	c.KWArgs = kwargs
	return c
}

// KW returns the named keyword argument of the call,
// or Absent when the name is missing.
func (c Call) KW(name string) any {
	if v, ok := c.KWArgs[name]; ok {
		return v
	}
	return Absent
}

// Absent is passed to per-name keyword predicates in place of a keyword
// argument that is missing from the call. It is distinct from any
// legitimate argument value, including nil.
var Absent = absentValue{}

type absentValue struct{}

func (absentValue) String() string { return "predkit.Absent" }
