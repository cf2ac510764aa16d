package predkit

import "reflect"

// Is reports identity with the given singleton value, not mere equality:
// comparable values match by interface equality, while reference values
// such as pointers, maps, slices, channels and functions match by the
// identity of their referent.
func Is(singleton any) ValuePredicate {
	return func(v any) bool {
		return identical(v, singleton)
	}
}

func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	}
	if !av.Comparable() {
		return false
	}
	return a == b
}

var (
	// IsNil is true when the tested value is nil,
	// including typed nil references.
	IsNil ValuePredicate = func(v any) bool {
		if v == nil {
			return true
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
			reflect.Func, reflect.Interface, reflect.UnsafePointer:
			return rv.IsNil()
		}
		return false
	}
	// IsTrue is true when the tested value is the boolean true.
	IsTrue = Is(true)
	// IsFalse is true when the tested value is the boolean false.
	IsFalse = Is(false)
	// IsAbsent is true when the tested value is the Absent keyword sentinel.
	IsAbsent = Is(Absent)
)
