package fn

import (
	"github.com/on-the-ground/functional_go/internal/helper"
	"github.com/on-the-ground/functional_go/pure"
	"github.com/on-the-ground/functional_go/throwable"
)

type Function[I, O any] func(I) O

func (f Function[I, O]) Apply(i I) O {
	return f(i)
}

func (f Function[I, O]) Memoized() *MemoizedFunction[I, O] {
	return f.MemoizedWith(pure.DefaultConfig())
}

func (f Function[I, O]) MemoizedWith(config pure.Config) *MemoizedFunction[I, O] {
	helper.RequireFunc(f, "function")
	return &MemoizedFunction[I, O]{
		memo: pure.NewMemo(1, func(args []any) (O, error) {
			return f(args[0].(I)), nil
		}, config),
	}
}

// Catching returns a function reporting errors thrown by f as returned errors.
func (f Function[I, O]) Catching() ThrowingFunction[I, O] {
	helper.RequireFunc(f, "function")
	return func(i I) (O, error) {
		return throwable.Try(f.bind(i))
	}
}

func (f Function[I, O]) bind(i I) func() O {
	if f == nil {
		return nil
	}
	return func() O { return f(i) }
}

type ThrowingFunction[I, O any] func(I) (O, error)

func (f ThrowingFunction[I, O]) Apply(i I) (O, error) {
	return f(i)
}

func (f ThrowingFunction[I, O]) Memoized() *MemoizedThrowingFunction[I, O] {
	return f.MemoizedWith(pure.DefaultConfig())
}

// MemoizedWith memoizes successful results only; a failing argument is
// computed again on its next call.
func (f ThrowingFunction[I, O]) MemoizedWith(config pure.Config) *MemoizedThrowingFunction[I, O] {
	helper.RequireFunc(f, "function")
	return &MemoizedThrowingFunction[I, O]{
		memo: pure.NewMemo(1, func(args []any) (O, error) {
			return f(args[0].(I))
		}, config),
	}
}

// SneakyThrow returns f with its error thrown instead of returned.
func (f ThrowingFunction[I, O]) SneakyThrow() Function[I, O] {
	helper.RequireFunc(f, "function")
	return func(i I) O {
		return throwable.Sneaky(f.bind(i))
	}
}

// Recover returns f with recoverable errors answered by the function mapper
// picks, applied to the same argument.
func (f ThrowingFunction[I, O]) Recover(mapper func(error) Function[I, O]) Function[I, O] {
	helper.RequireFunc(f, "function")
	helper.RequireFunc(mapper, "recover mapper")
	return func(i I) O {
		return throwable.Recover(f.bind(i), func(err error) func() O {
			return mapper(err).bind(i)
		})
	}
}

// Nest returns f with recoverable errors thrown as *throwable.WrappedError.
func (f ThrowingFunction[I, O]) Nest() Function[I, O] {
	return f.NestWith(throwable.Wrap)
}

// NestWith returns f with recoverable errors replaced by mapper's and thrown.
func (f ThrowingFunction[I, O]) NestWith(mapper func(error) error) Function[I, O] {
	helper.RequireFunc(f, "function")
	helper.RequireFunc(mapper, "nest mapper")
	return func(i I) O {
		return throwable.Nest(f.bind(i), mapper)
	}
}

func (f ThrowingFunction[I, O]) Fallback(defaultFn Function[I, O]) Function[I, O] {
	helper.RequireFunc(f, "function")
	helper.RequireFunc(defaultFn, "fallback")
	return func(i I) O {
		return throwable.Fallback(f.bind(i), defaultFn.bind(i))
	}
}

func (f ThrowingFunction[I, O]) OrReturn(value O) Function[I, O] {
	helper.RequireFunc(f, "function")
	return func(i I) O {
		return throwable.OrReturn(f.bind(i), value)
	}
}

func (f ThrowingFunction[I, O]) OrReturnFrom(supplier Supplier[O]) Function[I, O] {
	helper.RequireFunc(f, "function")
	helper.RequireFunc(supplier, "supplier")
	return func(i I) O {
		return throwable.OrReturnFrom(f.bind(i), supplier)
	}
}

func (f ThrowingFunction[I, O]) bind(i I) func() (O, error) {
	return func() (O, error) { return f(i) }
}

// MemoizedFunction is a Function backed by a memo table.
type MemoizedFunction[I, O any] struct {
	memo *pure.Memo[O]
}

func (m *MemoizedFunction[I, O]) Apply(i I) O {
	v, _ := m.memo.Call(i)
	return v
}

// Memoized returns m itself.
func (m *MemoizedFunction[I, O]) Memoized() *MemoizedFunction[I, O] {
	return m
}

func (m *MemoizedFunction[I, O]) Func() Function[I, O] {
	return m.Apply
}

func (m *MemoizedFunction[I, O]) Id() string { return m.memo.Id }
func (m *MemoizedFunction[I, O]) Len() int   { return m.memo.Len() }

// MemoizedThrowingFunction is a ThrowingFunction backed by a memo table.
type MemoizedThrowingFunction[I, O any] struct {
	memo *pure.Memo[O]
}

func (m *MemoizedThrowingFunction[I, O]) Apply(i I) (O, error) {
	return m.memo.Call(i)
}

// Memoized returns m itself.
func (m *MemoizedThrowingFunction[I, O]) Memoized() *MemoizedThrowingFunction[I, O] {
	return m
}

func (m *MemoizedThrowingFunction[I, O]) Func() ThrowingFunction[I, O] {
	return m.Apply
}

func (m *MemoizedThrowingFunction[I, O]) Id() string { return m.memo.Id }
func (m *MemoizedThrowingFunction[I, O]) Len() int   { return m.memo.Len() }
