package predkit_test

import (
	"fmt"
	"testing"

	"go.llib.dev/predkit"
	"go.llib.dev/testcase/assert"
)

// boom is a probe predicate that must never be invoked.
var boom predkit.Predicate = func(predkit.Call) bool {
	panic("boom: the predicate was not supposed to be invoked")
}

func ExampleAnd() {
	isShortStringArgs := predkit.And(
		predkit.All(predkit.IsString),
		predkit.All(predkit.Of(func(s string) bool { return len(s) < 8 })),
	)
	fmt.Println(isShortStringArgs(predkit.CallTo("a", "b")))
	// Output: true
}

func TestAnd(t *testing.T) {
	t.Run("vacuously true with no predicates", func(t *testing.T) {
		assert.True(t, predkit.And()(predkit.CallTo(rnd.String(), rnd.Int())))
	})
	t.Run("all hold", func(t *testing.T) {
		assert.True(t, predkit.And(predkit.True, predkit.True)(predkit.CallTo()))
	})
	t.Run("one fails", func(t *testing.T) {
		assert.False(t, predkit.And(predkit.True, predkit.False)(predkit.CallTo()))
	})
	t.Run("short-circuits after the first false", func(t *testing.T) {
		assert.NotPanic(t, func() {
			assert.False(t, predkit.And(predkit.False, boom)(predkit.CallTo()))
		})
	})
}

func TestOr(t *testing.T) {
	t.Run("vacuously false with no predicates", func(t *testing.T) {
		assert.False(t, predkit.Or()(predkit.CallTo(rnd.String())))
	})
	t.Run("one holds", func(t *testing.T) {
		assert.True(t, predkit.Or(predkit.False, predkit.True)(predkit.CallTo()))
	})
	t.Run("none hold", func(t *testing.T) {
		assert.False(t, predkit.Or(predkit.False, predkit.False)(predkit.CallTo()))
	})
	t.Run("short-circuits after the first true", func(t *testing.T) {
		assert.NotPanic(t, func() {
			assert.True(t, predkit.Or(predkit.True, boom)(predkit.CallTo()))
		})
	})
}

func TestNot(t *testing.T) {
	t.Run("vacuously true with no predicates", func(t *testing.T) {
		assert.True(t, predkit.Not()(predkit.CallTo()))
	})
	t.Run("none-of form, not single negation", func(t *testing.T) {
		assert.True(t, predkit.Not(predkit.False, predkit.False)(predkit.CallTo()))
		assert.False(t, predkit.Not(predkit.False, predkit.True)(predkit.CallTo()))
	})
	t.Run("short-circuits after the first true", func(t *testing.T) {
		assert.NotPanic(t, func() {
			assert.False(t, predkit.Not(predkit.True, boom)(predkit.CallTo()))
		})
	})
}

func TestComposition_roundTrip(t *testing.T) {
	// the composed predicate must match the pointwise combination
	// of its leaves for every input
	var (
		notString     = predkit.Not(predkit.All(predkit.IsString))
		emptyOrAtomic = predkit.Or(
			predkit.All(predkit.IsEmpty),
			predkit.All(predkit.IsAtom),
		)
		composed = predkit.And(notString, emptyOrAtomic)
	)
	for _, c := range []predkit.Call{
		predkit.CallTo(),
		predkit.CallTo(""),
		predkit.CallTo("x"),
		predkit.CallTo([]any{}),
		predkit.CallTo([]any{1, 2}),
	} {
		exp := notString(c) && emptyOrAtomic(c)
		assert.Equal(t, exp, composed(c), assert.MessageF("input: %#v", c))
	}
}
