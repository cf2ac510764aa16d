package predkit

import "go.llib.dev/frameless/port/option"

// CountOption configures a count spec for NIs, FNIs, NArgs, NPos and NKW.
//
// AtLeast and AtMost may be combined, but Exactly must stand alone.
type CountOption = option.Option[countConfig]

type countConfig struct {
	AtLeast, AtMost, Exactly limit
}

type limit struct {
	N   int
	Set bool
}

// AtLeast constrains the tested number to be greater than or equal to n.
func AtLeast(n int) CountOption {
	return option.Func[countConfig](func(c *countConfig) {
		c.AtLeast = limit{N: n, Set: true}
	})
}

// AtMost constrains the tested number to be less than or equal to n.
func AtMost(n int) CountOption {
	return option.Func[countConfig](func(c *countConfig) {
		c.AtMost = limit{N: n, Set: true}
	})
}

// Exactly constrains the tested number to be equal to n.
func Exactly(n int) CountOption {
	return option.Func[countConfig](func(c *countConfig) {
		c.Exactly = limit{N: n, Set: true}
	})
}

// NIs builds a predicate over one number out of a count spec.
// The spec is validated here, once, at construction time:
// negative bounds, mixing Exactly with AtLeast or AtMost,
// and giving no bound at all each fail with ErrInvalidSpec.
func NIs(opts ...CountOption) (func(n int) bool, error) {
	c := option.Use(opts)
	if (c.AtLeast.Set && c.AtLeast.N < 0) ||
		(c.AtMost.Set && c.AtMost.N < 0) ||
		(c.Exactly.Set && c.Exactly.N < 0) {
		return nil, ErrInvalidSpec.F("count limits cannot be negative")
	}
	if c.Exactly.Set {
		if c.AtLeast.Set || c.AtMost.Set {
			return nil, ErrInvalidSpec.F("cannot mix Exactly with AtLeast or AtMost")
		}
		exactly := c.Exactly.N
		return func(n int) bool { return n == exactly }, nil
	}
	if !c.AtLeast.Set && !c.AtMost.Set {
		return nil, ErrInvalidSpec.F("must specify Exactly, or one or both of AtLeast and AtMost")
	}
	atleast := c.AtLeast.N // zero when not set, counts are non-negative anyway
	if !c.AtMost.Set {
		return func(n int) bool { return atleast <= n }, nil
	}
	atmost := c.AtMost.N
	return func(n int) bool { return atleast <= n && n <= atmost }, nil
}

// FNIs composes a count spec with a function that derives a number from
// a call, yielding a predicate over an arbitrary call.
func FNIs(fn func(c Call) int, opts ...CountOption) (Predicate, error) {
	nis, err := NIs(opts...)
	if err != nil {
		return nil, err
	}
	return func(c Call) bool { return nis(fn(c)) }, nil
}

// NArgs builds a predicate on the total number of arguments of a call,
// positional and keyword together. See NPos and NKW for separate
// constraints on positional and keyword arguments.
func NArgs(opts ...CountOption) (Predicate, error) {
	return FNIs(func(c Call) int { return len(c.Args) + len(c.KWArgs) }, opts...)
}

// NPos builds a predicate on the number of positional arguments of a call.
func NPos(opts ...CountOption) (Predicate, error) {
	return FNIs(func(c Call) int { return len(c.Args) }, opts...)
}

// NKW builds a predicate on the number of keyword arguments of a call.
func NKW(opts ...CountOption) (Predicate, error) {
	return FNIs(func(c Call) int { return len(c.KWArgs) }, opts...)
}
