package predkit

import (
	"cmp"
	"reflect"
)

// Eq reports equality with a fixed value.
// The result is a typed predicate; lift it with Of to use it as a
// ValuePredicate.
func Eq[T comparable](oth T) func(T) bool {
	return func(v T) bool { return v == oth }
}

// Ne reports inequality with a fixed value.
func Ne[T comparable](oth T) func(T) bool {
	return func(v T) bool { return v != oth }
}

// Lt reports whether the tested value is less than a fixed value.
func Lt[T cmp.Ordered](oth T) func(T) bool {
	return func(v T) bool { return v < oth }
}

// Le reports whether the tested value is less than or equal to a fixed value.
func Le[T cmp.Ordered](oth T) func(T) bool {
	return func(v T) bool { return v <= oth }
}

// Gt reports whether the tested value is greater than a fixed value.
func Gt[T cmp.Ordered](oth T) func(T) bool {
	return func(v T) bool { return v > oth }
}

// Ge reports whether the tested value is greater than or equal to a fixed value.
func Ge[T cmp.Ordered](oth T) func(T) bool {
	return func(v T) bool { return v >= oth }
}

// Of lifts a typed predicate into a ValuePredicate:
//
//	predkit.Of(predkit.Ge(42))
//
// Applying the result to a value that is not a T fails with ErrUnsupported.
func Of[T any](predicate func(T) bool) ValuePredicate {
	return func(v any) bool {
		val, ok := v.(T)
		if !ok {
			panic(ErrUnsupported.F("predkit.Of: %T is not a %s", v,
				reflect.TypeOf((*T)(nil)).Elem()))
		}
		return predicate(val)
	}
}
