package fn

import (
	"github.com/on-the-ground/functional_go/internal/helper"
	"github.com/on-the-ground/functional_go/pure"
	"github.com/on-the-ground/functional_go/throwable"
)

type Supplier[O any] func() O

func (s Supplier[O]) Get() O {
	return s()
}

// Memoized returns a supplier computing its value at most once.
func (s Supplier[O]) Memoized() *MemoizedSupplier[O] {
	return s.MemoizedWith(pure.DefaultConfig())
}

func (s Supplier[O]) MemoizedWith(config pure.Config) *MemoizedSupplier[O] {
	helper.RequireFunc(s, "supplier")
	return &MemoizedSupplier[O]{
		memo: pure.NewMemo(0, func([]any) (O, error) {
			return s(), nil
		}, config),
	}
}

func (s Supplier[O]) Catching() ThrowingSupplier[O] {
	helper.RequireFunc(s, "supplier")
	return func() (O, error) {
		return throwable.Try(s)
	}
}

type ThrowingSupplier[O any] func() (O, error)

func (s ThrowingSupplier[O]) Get() (O, error) {
	return s()
}

// Memoized returns a supplier that keeps its first successful value.
func (s ThrowingSupplier[O]) Memoized() *MemoizedThrowingSupplier[O] {
	return s.MemoizedWith(pure.DefaultConfig())
}

func (s ThrowingSupplier[O]) MemoizedWith(config pure.Config) *MemoizedThrowingSupplier[O] {
	helper.RequireFunc(s, "supplier")
	return &MemoizedThrowingSupplier[O]{
		memo: pure.NewMemo(0, func([]any) (O, error) {
			return s()
		}, config),
	}
}

func (s ThrowingSupplier[O]) SneakyThrow() Supplier[O] {
	helper.RequireFunc(s, "supplier")
	return func() O {
		return throwable.Sneaky(s)
	}
}

func (s ThrowingSupplier[O]) Recover(mapper func(error) Supplier[O]) Supplier[O] {
	helper.RequireFunc(s, "supplier")
	helper.RequireFunc(mapper, "recover mapper")
	return func() O {
		return throwable.Recover(s, func(err error) func() O {
			return mapper(err)
		})
	}
}

func (s ThrowingSupplier[O]) Nest() Supplier[O] {
	return s.NestWith(throwable.Wrap)
}

func (s ThrowingSupplier[O]) NestWith(mapper func(error) error) Supplier[O] {
	helper.RequireFunc(s, "supplier")
	helper.RequireFunc(mapper, "nest mapper")
	return func() O {
		return throwable.Nest(s, mapper)
	}
}

func (s ThrowingSupplier[O]) Fallback(defaultSupplier Supplier[O]) Supplier[O] {
	helper.RequireFunc(s, "supplier")
	helper.RequireFunc(defaultSupplier, "fallback")
	return func() O {
		return throwable.Fallback(s, defaultSupplier)
	}
}

func (s ThrowingSupplier[O]) OrReturn(value O) Supplier[O] {
	helper.RequireFunc(s, "supplier")
	return func() O {
		return throwable.OrReturn(s, value)
	}
}

func (s ThrowingSupplier[O]) OrReturnFrom(supplier Supplier[O]) Supplier[O] {
	helper.RequireFunc(s, "supplier")
	helper.RequireFunc(supplier, "supplier")
	return func() O {
		return throwable.OrReturnFrom(s, supplier)
	}
}

type MemoizedSupplier[O any] struct {
	memo *pure.Memo[O]
}

func (m *MemoizedSupplier[O]) Get() O {
	v, _ := m.memo.Call()
	return v
}

// Memoized returns m itself.
func (m *MemoizedSupplier[O]) Memoized() *MemoizedSupplier[O] { return m }
func (m *MemoizedSupplier[O]) Func() Supplier[O]              { return m.Get }
func (m *MemoizedSupplier[O]) Id() string                     { return m.memo.Id }
func (m *MemoizedSupplier[O]) Len() int                       { return m.memo.Len() }

type MemoizedThrowingSupplier[O any] struct {
	memo *pure.Memo[O]
}

func (m *MemoizedThrowingSupplier[O]) Get() (O, error) {
	return m.memo.Call()
}

// Memoized returns m itself.
func (m *MemoizedThrowingSupplier[O]) Memoized() *MemoizedThrowingSupplier[O] { return m }
func (m *MemoizedThrowingSupplier[O]) Func() ThrowingSupplier[O]              { return m.Get }
func (m *MemoizedThrowingSupplier[O]) Id() string                             { return m.memo.Id }
func (m *MemoizedThrowingSupplier[O]) Len() int                               { return m.memo.Len() }
