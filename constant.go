package predkit

import (
	"reflect"
	"sync"
)

// Const builds a callable that ignores its call and always returns val.
// Constants that support equality share a single memoized instance
// process-wide, so Const(true) hands back the same predicate every time;
// values without equality support get a fresh instance per Const call.
// The memo is append-only and safe for concurrent use.
func Const[T any](val T) func(Call) T {
	return memoConst[func(Call) T](val, func() func(Call) T {
		return func(Call) T { return val }
	})
}

// ConstValue is the single-value flavour of Const.
func ConstValue[T any](val T) func(any) T {
	return memoConst[func(any) T](val, func() func(any) T {
		return func(any) T { return val }
	})
}

var (
	// True is the constant true predicate.
	True = Predicate(Const(true))
	// False is the constant false predicate.
	False = Predicate(Const(false))
)

type constKey struct {
	Flavour reflect.Type
	Value   any
}

var constants = struct {
	sync.RWMutex
	cache map[constKey]any
}{cache: map[constKey]any{}}

func memoConst[F any](val any, build func() F) F {
	if rv := reflect.ValueOf(val); rv.IsValid() && !rv.Comparable() {
		return build()
	}
	key := constKey{
		Flavour: reflect.TypeOf((*F)(nil)).Elem(),
		Value:   val,
	}
	constants.RLock()
	cached, ok := constants.cache[key]
	constants.RUnlock()
	if ok {
		return cached.(F)
	}
	constants.Lock()
	defer constants.Unlock()
	if cached, ok := constants.cache[key]; ok {
		return cached.(F)
	}
	fn := build()
	constants.cache[key] = fn
	return fn
}
