package predkit

import "reflect"

// All returns a Predicate that holds when the value predicate holds for
// every positional argument of the call. Keyword arguments are ignored.
// With zero positional arguments the result is vacuously true.
func All(predicate ValuePredicate) Predicate {
	return func(c Call) bool {
		for _, v := range c.Args {
			if !predicate(v) {
				return false
			}
		}
		return true
	}
}

// Any returns a Predicate that holds when the value predicate holds for
// at least one positional argument of the call. Keyword arguments are
// ignored. With zero positional arguments the result is vacuously false.
func Any(predicate ValuePredicate) Predicate {
	return func(c Call) bool {
		for _, v := range c.Args {
			if predicate(v) {
				return true
			}
		}
		return false
	}
}

// None returns a Predicate that holds when the value predicate holds for
// no positional argument of the call. Keyword arguments are ignored.
// With zero positional arguments the result is vacuously true.
func None(predicate ValuePredicate) Predicate {
	return func(c Call) bool {
		for _, v := range c.Args {
			if predicate(v) {
				return false
			}
		}
		return true
	}
}

// Zip returns a Predicate that applies each value predicate to the
// positional argument at the same position: the first predicate to the
// first argument, and so on. It truncates to the shorter of the
// predicates and the arguments, and ignores keyword arguments.
func Zip(predicates ...ValuePredicate) Predicate {
	return func(c Call) bool {
		for i, predicate := range predicates {
			if len(c.Args) <= i {
				break
			}
			if !predicate(c.Args[i]) {
				return false
			}
		}
		return true
	}
}

// Unpack lifts a call predicate into a value predicate over a value that
// holds the arguments themselves: a Call, or any slice or array, whose
// elements are spread as the positional arguments. Its principal use is
// testing the contents of a single argument, for example
// Zip(IsInt, Unpack(All(IsString))). Anything that is not a call
// argument list fails with ErrUnsupported.
func Unpack(predicate Predicate) ValuePredicate {
	return func(v any) bool {
		switch val := v.(type) {
		case Call:
			return predicate(val)
		case []any:
			return predicate(Call{Args: val})
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			args := make([]any, rv.Len())
			for i := range args {
				args[i] = rv.Index(i).Interface()
			}
			return predicate(Call{Args: args})
		}
		panic(ErrUnsupported.F("predkit.Unpack: %T is not a call argument list", v))
	}
}
