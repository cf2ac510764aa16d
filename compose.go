package predkit

// And returns a Predicate that holds when every given predicate holds for
// the call. Evaluation is left to right and short-circuits on the first
// failure. With no predicates the result is vacuously true.
func And(predicates ...Predicate) Predicate {
	return func(c Call) bool {
		for _, predicate := range predicates {
			if !predicate(c) {
				return false
			}
		}
		return true
	}
}

// Or returns a Predicate that holds when at least one of the given
// predicates holds for the call. Evaluation is left to right and
// short-circuits on the first success. With no predicates the result is
// vacuously false.
func Or(predicates ...Predicate) Predicate {
	return func(c Call) bool {
		for _, predicate := range predicates {
			if predicate(c) {
				return true
			}
		}
		return false
	}
}

// Not returns a Predicate that holds when none of the given predicates
// hold for the call. It is the none-of form, not a single-predicate
// negation. Evaluation short-circuits on the first predicate that holds,
// since that already falsifies the claim. With no predicates the result
// is vacuously true.
func Not(predicates ...Predicate) Predicate {
	return func(c Call) bool {
		for _, predicate := range predicates {
			if predicate(c) {
				return false
			}
		}
		return true
	}
}
