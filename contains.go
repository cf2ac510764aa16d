package predkit

import (
	"reflect"
	"strings"
)

// Contains reports whether every listed element is a member of the tested
// container: an element of a slice or array, a key of a map, or a
// substring of a string. A value that is not a container fails with
// ErrUnsupported.
func Contains(contents ...any) ValuePredicate {
	// vacuously true with nothing to look for
	if len(contents) == 0 {
		return ConstValue(true)
	}
	if len(contents) == 1 {
		element := contents[0]
		return func(container any) bool {
			return contains(container, element)
		}
	}
	return func(container any) bool {
		for _, element := range contents {
			if !contains(container, element) {
				return false
			}
		}
		return true
	}
}

func contains(container, element any) bool {
	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.String:
		s, ok := element.(string)
		return ok && strings.Contains(rv.String(), s)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if equalAny(rv.Index(i).Interface(), element) {
				return true
			}
		}
		return false
	case reflect.Map:
		ev := reflect.ValueOf(element)
		if !ev.IsValid() { // a nil element only matches an interface-keyed map's nil key
			if rv.Type().Key().Kind() != reflect.Interface {
				return false
			}
			ev = reflect.Zero(rv.Type().Key())
		} else if !ev.Type().AssignableTo(rv.Type().Key()) {
			return false
		}
		return rv.MapIndex(ev).IsValid()
	}
	panic(ErrUnsupported.F("predkit.Contains: %T is not a container", container))
}

func equalAny(a, b any) bool {
	if av := reflect.ValueOf(a); av.IsValid() && !av.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
