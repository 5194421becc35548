package fn

import (
	"github.com/on-the-ground/functional_go/internal/helper"
	"github.com/on-the-ground/functional_go/pure"
	"github.com/on-the-ground/functional_go/throwable"
)

type BiFunction[I1, I2, O any] func(I1, I2) O

func (f BiFunction[I1, I2, O]) Apply(i1 I1, i2 I2) O {
	return f(i1, i2)
}

func (f BiFunction[I1, I2, O]) Memoized() *MemoizedBiFunction[I1, I2, O] {
	return f.MemoizedWith(pure.DefaultConfig())
}

func (f BiFunction[I1, I2, O]) MemoizedWith(config pure.Config) *MemoizedBiFunction[I1, I2, O] {
	helper.RequireFunc(f, "function")
	return &MemoizedBiFunction[I1, I2, O]{
		memo: pure.NewMemo(2, func(args []any) (O, error) {
			return f(args[0].(I1), args[1].(I2)), nil
		}, config),
	}
}

func (f BiFunction[I1, I2, O]) Catching() ThrowingBiFunction[I1, I2, O] {
	helper.RequireFunc(f, "function")
	return func(i1 I1, i2 I2) (O, error) {
		return throwable.Try(f.bind(i1, i2))
	}
}

func (f BiFunction[I1, I2, O]) bind(i1 I1, i2 I2) func() O {
	if f == nil {
		return nil
	}
	return func() O { return f(i1, i2) }
}

type ThrowingBiFunction[I1, I2, O any] func(I1, I2) (O, error)

func (f ThrowingBiFunction[I1, I2, O]) Apply(i1 I1, i2 I2) (O, error) {
	return f(i1, i2)
}

func (f ThrowingBiFunction[I1, I2, O]) Memoized() *MemoizedThrowingBiFunction[I1, I2, O] {
	return f.MemoizedWith(pure.DefaultConfig())
}

func (f ThrowingBiFunction[I1, I2, O]) MemoizedWith(config pure.Config) *MemoizedThrowingBiFunction[I1, I2, O] {
	helper.RequireFunc(f, "function")
	return &MemoizedThrowingBiFunction[I1, I2, O]{
		memo: pure.NewMemo(2, func(args []any) (O, error) {
			return f(args[0].(I1), args[1].(I2))
		}, config),
	}
}

func (f ThrowingBiFunction[I1, I2, O]) SneakyThrow() BiFunction[I1, I2, O] {
	helper.RequireFunc(f, "function")
	return func(i1 I1, i2 I2) O {
		return throwable.Sneaky(f.bind(i1, i2))
	}
}

func (f ThrowingBiFunction[I1, I2, O]) Recover(mapper func(error) BiFunction[I1, I2, O]) BiFunction[I1, I2, O] {
	helper.RequireFunc(f, "function")
	helper.RequireFunc(mapper, "recover mapper")
	return func(i1 I1, i2 I2) O {
		return throwable.Recover(f.bind(i1, i2), func(err error) func() O {
			return mapper(err).bind(i1, i2)
		})
	}
}

func (f ThrowingBiFunction[I1, I2, O]) Nest() BiFunction[I1, I2, O] {
	return f.NestWith(throwable.Wrap)
}

func (f ThrowingBiFunction[I1, I2, O]) NestWith(mapper func(error) error) BiFunction[I1, I2, O] {
	helper.RequireFunc(f, "function")
	helper.RequireFunc(mapper, "nest mapper")
	return func(i1 I1, i2 I2) O {
		return throwable.Nest(f.bind(i1, i2), mapper)
	}
}

func (f ThrowingBiFunction[I1, I2, O]) Fallback(defaultFn BiFunction[I1, I2, O]) BiFunction[I1, I2, O] {
	helper.RequireFunc(f, "function")
	helper.RequireFunc(defaultFn, "fallback")
	return func(i1 I1, i2 I2) O {
		return throwable.Fallback(f.bind(i1, i2), defaultFn.bind(i1, i2))
	}
}

func (f ThrowingBiFunction[I1, I2, O]) OrReturn(value O) BiFunction[I1, I2, O] {
	helper.RequireFunc(f, "function")
	return func(i1 I1, i2 I2) O {
		return throwable.OrReturn(f.bind(i1, i2), value)
	}
}

func (f ThrowingBiFunction[I1, I2, O]) OrReturnFrom(supplier Supplier[O]) BiFunction[I1, I2, O] {
	helper.RequireFunc(f, "function")
	helper.RequireFunc(supplier, "supplier")
	return func(i1 I1, i2 I2) O {
		return throwable.OrReturnFrom(f.bind(i1, i2), supplier)
	}
}

func (f ThrowingBiFunction[I1, I2, O]) bind(i1 I1, i2 I2) func() (O, error) {
	return func() (O, error) { return f(i1, i2) }
}

type MemoizedBiFunction[I1, I2, O any] struct {
	memo *pure.Memo[O]
}

func (m *MemoizedBiFunction[I1, I2, O]) Apply(i1 I1, i2 I2) O {
	v, _ := m.memo.Call(i1, i2)
	return v
}

// Memoized returns m itself.
func (m *MemoizedBiFunction[I1, I2, O]) Memoized() *MemoizedBiFunction[I1, I2, O] { return m }
func (m *MemoizedBiFunction[I1, I2, O]) Func() BiFunction[I1, I2, O]              { return m.Apply }
func (m *MemoizedBiFunction[I1, I2, O]) Id() string                               { return m.memo.Id }
func (m *MemoizedBiFunction[I1, I2, O]) Len() int                                 { return m.memo.Len() }

type MemoizedThrowingBiFunction[I1, I2, O any] struct {
	memo *pure.Memo[O]
}

func (m *MemoizedThrowingBiFunction[I1, I2, O]) Apply(i1 I1, i2 I2) (O, error) {
	return m.memo.Call(i1, i2)
}

// Memoized returns m itself.
func (m *MemoizedThrowingBiFunction[I1, I2, O]) Memoized() *MemoizedThrowingBiFunction[I1, I2, O] {
	return m
}
func (m *MemoizedThrowingBiFunction[I1, I2, O]) Func() ThrowingBiFunction[I1, I2, O] { return m.Apply }
func (m *MemoizedThrowingBiFunction[I1, I2, O]) Id() string                          { return m.memo.Id }
func (m *MemoizedThrowingBiFunction[I1, I2, O]) Len() int                            { return m.memo.Len() }
