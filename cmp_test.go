package predkit_test

import (
	"testing"

	"go.llib.dev/predkit"
	"go.llib.dev/testcase/assert"
)

func TestComparisons(t *testing.T) {
	t.Run("Eq", func(t *testing.T) {
		assert.True(t, predkit.Eq(42)(42))
		assert.False(t, predkit.Eq(42)(41))
	})
	t.Run("Ne", func(t *testing.T) {
		assert.True(t, predkit.Ne(42)(41))
		assert.False(t, predkit.Ne(42)(42))
	})
	t.Run("ordering", func(t *testing.T) {
		assert.True(t, predkit.Lt(42)(41))
		assert.False(t, predkit.Lt(42)(42))
		assert.True(t, predkit.Le(42)(42))
		assert.True(t, predkit.Gt(42)(43))
		assert.False(t, predkit.Gt(42)(42))
		assert.True(t, predkit.Ge(42)(42))
	})
	t.Run("strings order lexically", func(t *testing.T) {
		assert.True(t, predkit.Lt("b")("a"))
		assert.False(t, predkit.Lt("a")("b"))
	})
}

func TestOf(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		atLeastAnswer := predkit.Of(predkit.Ge(42))
		assert.True(t, atLeastAnswer(42))
		assert.False(t, atLeastAnswer(41))
	})
	t.Run("composes with call predicates", func(t *testing.T) {
		fn := predkit.All(predkit.Of(func(s string) bool { return s != "" }))
		assert.True(t, fn(predkit.CallTo("a", "b")))
		assert.False(t, fn(predkit.CallTo("a", "")))
	})
	t.Run("rainy: a value of the wrong type is unsupported", func(t *testing.T) {
		out := assert.Panic(t, func() {
			_ = predkit.Of(predkit.Ge(42))("not an int")
		})
		err, ok := out.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, predkit.ErrUnsupported)
	})
}
