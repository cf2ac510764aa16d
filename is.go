package predkit

import "reflect"

// IsA reports whether the tested value is an instance of T.
// T may be a concrete type or an interface:
//
//	predkit.IsA[string]()
//	predkit.IsA[error]()
func IsA[T any]() ValuePredicate {
	return func(v any) bool {
		_, ok := v.(T)
		return ok
	}
}

// IsKind reports whether the tested value's reflect.Kind is one of the
// given kinds. It classifies by kind, so named types match the kind of
// their underlying type.
func IsKind(kinds ...reflect.Kind) ValuePredicate {
	return func(v any) bool {
		kind := reflect.ValueOf(v).Kind()
		for _, k := range kinds {
			if k == kind {
				return true
			}
		}
		return false
	}
}

var (
	// IsString is true when the tested value is a string.
	IsString = IsKind(reflect.String)
	// IsBool is true when the tested value is a bool.
	IsBool = IsKind(reflect.Bool)
	// IsInt is true for every integer kind, signed or unsigned.
	IsInt = IsKind(
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
	)
	// IsFloat is true when the tested value is a floating point number.
	IsFloat = IsKind(reflect.Float32, reflect.Float64)
	// IsFunc is true when the tested value is callable.
	IsFunc = IsKind(reflect.Func)
	// IsMap is true when the tested value is a mapping.
	IsMap = IsKind(reflect.Map)
	// IsSeq is true when the tested value is a sequence: a slice or an array.
	IsSeq = IsKind(reflect.Slice, reflect.Array)
	// IsChan is true when the tested value is a channel.
	IsChan = IsKind(reflect.Chan)
	// IsIterable is true for anything that can be ranged over:
	// sequences, mappings, channels and strings.
	IsIterable = IsKind(reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String)
	// HasLen is true for values with a defined length.
	HasLen = IsKind(reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String)
)

// IsEmpty reports whether the tested value has zero length.
// Empty means zero-length, not false-y: false and 0 are not empty,
// even though they are false in a boolean sense.
// A value without a defined length fails with ErrUnsupported.
func IsEmpty(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String:
		return rv.Len() == 0
	}
	panic(ErrUnsupported.F("predkit.IsEmpty: %T has no length", v))
}

// IsNSIterable reports whether the tested value is a non-string iterable.
func IsNSIterable(v any) bool {
	return IsIterable(v) && !IsString(v)
}

// IsAtom reports whether the tested value looks atomic: a string, or any
// non-iterable. This is a naive test, any non-string iterable yields false.
func IsAtom(v any) bool {
	return !IsNSIterable(v)
}
