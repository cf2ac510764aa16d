package predkit

import "go.llib.dev/frameless/port/option"

// KeySetOption configures a keyword-presence spec for InKW.
//
// KeysAtLeast and KeysAtMost may be combined, but KeysExactly must stand
// alone. To constrain against the keys of a mapping, pass them through
// mapkit.Keys: InKW(KeysAtLeast(mapkit.Keys(m)...)).
type KeySetOption = option.Option[keySetConfig]

type keySetConfig struct {
	AtLeast, AtMost, Exactly keySet
}

type keySet struct {
	Names map[string]struct{}
	Set   bool
}

func toKeySet(names []string) keySet {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return keySet{Names: set, Set: true}
}

// KeysAtLeast requires every given name to be present among the call's
// keyword argument names.
func KeysAtLeast(names ...string) KeySetOption {
	return option.Func[keySetConfig](func(c *keySetConfig) {
		c.AtLeast = toKeySet(names)
	})
}

// KeysAtMost requires every keyword argument name of the call to be one
// of the given names.
func KeysAtMost(names ...string) KeySetOption {
	return option.Func[keySetConfig](func(c *keySetConfig) {
		c.AtMost = toKeySet(names)
	})
}

// KeysExactly requires the call's keyword argument names to be precisely
// the given set, no more and no less.
func KeysExactly(names ...string) KeySetOption {
	return option.Func[keySetConfig](func(c *keySetConfig) {
		c.Exactly = toKeySet(names)
	})
}

// InKW builds a predicate that constrains which keyword argument names
// are present in a call. It constrains the names only, never the values;
// NKW constrains the number of keyword arguments instead.
//
// Giving no option at all, or mixing KeysExactly with KeysAtLeast or
// KeysAtMost, fails with ErrInvalidSpec. A between form whose KeysAtLeast
// is not a subset of its KeysAtMost constructs fine but can never be
// satisfied.
func InKW(opts ...KeySetOption) (Predicate, error) {
	c := option.Use(opts)
	if c.Exactly.Set {
		if c.AtLeast.Set || c.AtMost.Set {
			return nil, ErrInvalidSpec.F("cannot mix KeysExactly with KeysAtLeast or KeysAtMost")
		}
		exactly := c.Exactly.Names
		return func(c Call) bool {
			if len(c.KWArgs) != len(exactly) {
				return false
			}
			for name := range exactly {
				if _, ok := c.KWArgs[name]; !ok {
					return false
				}
			}
			return true
		}, nil
	}
	if !c.AtLeast.Set && !c.AtMost.Set {
		return nil, ErrInvalidSpec.F("must specify KeysExactly, or one or both of KeysAtLeast and KeysAtMost")
	}
	atleast := c.AtLeast.Names // nil when not set, the empty set
	if !c.AtMost.Set {
		return func(c Call) bool {
			return hasAllKeys(c.KWArgs, atleast)
		}, nil
	}
	atmost := c.AtMost.Names
	return func(c Call) bool {
		if !hasAllKeys(c.KWArgs, atleast) {
			return false
		}
		for name := range c.KWArgs {
			if _, ok := atmost[name]; !ok {
				return false
			}
		}
		return true
	}, nil
}

func hasAllKeys(kwargs map[string]any, names map[string]struct{}) bool {
	for name := range names {
		if _, ok := kwargs[name]; !ok {
			return false
		}
	}
	return true
}
