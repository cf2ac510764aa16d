package predkit

import "go.llib.dev/frameless/port/option"

// Span selects a sub-range of a call's positional arguments.
//
// A Span is resolved lazily against the actual positional argument count
// of each tested call, never against an assumed length, so the same
// predicate reused across calls with differing argument counts re-resolves
// the range each time. Negative bounds count from the end of the call,
// out-of-range bounds clamp, and the stride may be negative.
type Span struct {
	start, stop bound
	step        int
	stepSet     bool
}

type bound struct {
	N   int
	Set bool
}

// Index selects a single positional argument. A non-negative index i
// selects the one-element [i, i+1) range, while a negative index selects
// everything from i, counted from the end, through the end of the call.
func Index(i int) Span {
	if i < 0 {
		return From(i)
	}
	return Between(i, i+1)
}

// Between selects the [start, stop) range of the positional arguments.
func Between(start, stop int) Span {
	return Span{
		start: bound{N: start, Set: true},
		stop:  bound{N: stop, Set: true},
	}
}

// From selects the positional arguments from start through the end of the call.
func From(start int) Span {
	return Span{start: bound{N: start, Set: true}}
}

// Until selects the positional arguments from the beginning of the call up to stop.
func Until(stop int) Span {
	return Span{stop: bound{N: stop, Set: true}}
}

// Everything selects all positional arguments.
func Everything() Span {
	return Span{}
}

// Step returns a copy of the Span with the given stride, so for example
// Everything().Step(2) selects every second positional argument.
// A negative stride walks the selection backwards. A zero stride is
// rejected with ErrInvalidSpec when the Span is built into a predicate.
func (s Span) Step(n int) Span {
	s.step = n
	s.stepSet = true
	return s
}

// indices resolves the span against the actual argument count of a call,
// with range-slicing semantics: negative bounds are counted from the end,
// out-of-range bounds clamp, and a negative step reverses the defaults.
func (s Span) indices(length int) (start, stop, step int) {
	step = s.step
	if step == 0 {
		step = 1
	}
	if step > 0 {
		start, stop = 0, length
	} else {
		start, stop = length-1, -1
	}
	if s.start.Set {
		start = adjustIndex(s.start.N, length, step)
	}
	if s.stop.Set {
		stop = adjustIndex(s.stop.N, length, step)
	}
	return start, stop, step
}

func adjustIndex(i, length, step int) int {
	if i < 0 {
		i += length
		if i < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return i
	}
	if i >= length {
		if step < 0 {
			return length - 1
		}
		return length
	}
	return i
}

// slice applies the span to the positional arguments of a call.
func (s Span) slice(args []any) []any {
	start, stop, step := s.indices(len(args))
	var out []any
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, args[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, args[i])
		}
	}
	return out
}

// ArgsOption configures the build stage of Args and ArgsAt.
type ArgsOption = option.Option[argsConfig]

type argsConfig struct {
	Positional ValuePredicate
	Keywords   map[string]ValuePredicate
}

// Where sets the predicate that every selected positional argument must
// satisfy.
func Where(predicate ValuePredicate) ArgsOption {
	return option.Func[argsConfig](func(c *argsConfig) {
		c.Positional = predicate
	})
}

// KW constrains the named keyword argument of the call with a predicate.
// When the name is missing from a tested call, the predicate receives
// Absent instead of a value.
func KW(name string, predicate ValuePredicate) ArgsOption {
	return option.Func[argsConfig](func(c *argsConfig) {
		if c.Keywords == nil {
			c.Keywords = map[string]ValuePredicate{}
		}
		c.Keywords[name] = predicate
	})
}

// Args builds a predicate that applies constraints to all positional
// arguments and/or to named keyword arguments of a call.
// It is pure sugar over ArgsAt with the full-range span:
//
//	fn := must.Must(predkit.Args(predkit.Where(predkit.IsString)))
//	fn(predkit.CallTo("a", "b")) // true
//	fn(predkit.CallTo("a", 42))  // false
func Args(opts ...ArgsOption) (Predicate, error) {
	return ArgsAt(Everything(), opts...)
}

// ArgsAt builds a predicate that applies a predicate to the positional
// arguments selected by the span, and, independently, per-name predicates
// to keyword arguments, combining the two checks with logical AND.
//
// The positional predicate is satisfied only when it holds for every
// element of the selection; a selection that resolves to zero elements
// is vacuously true. Building with neither Where nor KW constraints
// fails with ErrInvalidSpec.
func ArgsAt(key Span, opts ...ArgsOption) (Predicate, error) {
	c := option.Use(opts)
	if c.Positional == nil && len(c.Keywords) == 0 {
		return nil, ErrInvalidSpec.F("must specify a positional predicate with Where, keyword predicates with KW, or both")
	}
	if key.stepSet && key.step == 0 {
		return nil, ErrInvalidSpec.F("span step cannot be zero")
	}

	keywords := c.Keywords
	kwCheck := func(c Call) bool {
		for name, predicate := range keywords {
			if !predicate(c.KW(name)) {
				return false
			}
		}
		return true
	}

	// keyword predicates only: positional arguments are ignored entirely
	if c.Positional == nil {
		return kwCheck, nil
	}

	forAll := All(c.Positional)
	posCheck := func(c Call) bool {
		return forAll(Call{Args: key.slice(c.Args)})
	}

	// positional predicate only
	if len(keywords) == 0 {
		return posCheck, nil
	}

	// positional and keyword predicates; positional first, keyword name
	// lookups are cheap and independent
	return func(c Call) bool {
		return posCheck(c) && kwCheck(c)
	}, nil
}
