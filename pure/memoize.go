package pure

import "github.com/on-the-ground/functional_go/internal/helper"

// ErrContractViolation is the error wrapped by every misuse panic of this package.
var ErrContractViolation = helper.ErrContractViolation

func MemoizeI1O1[I1, O1 any](pureFn func(I1) O1) func(I1) O1 {
	helper.RequireFunc(pureFn, "pureFn")
	memo := NewMemo(1, func(args []any) (O1, error) {
		return pureFn(args[0].(I1)), nil
	}, DefaultConfig())
	return func(i1 I1) O1 {
		v, _ := memo.Call(i1)
		return v
	}
}

func MemoizeI2O1[I1, I2, O1 any](pureFn func(I1, I2) O1) func(I1, I2) O1 {
	helper.RequireFunc(pureFn, "pureFn")
	memo := NewMemo(2, func(args []any) (O1, error) {
		return pureFn(args[0].(I1), args[1].(I2)), nil
	}, DefaultConfig())
	return func(i1 I1, i2 I2) O1 {
		v, _ := memo.Call(i1, i2)
		return v
	}
}

func MemoizeI3O1[I1, I2, I3, O1 any](pureFn func(I1, I2, I3) O1) func(I1, I2, I3) O1 {
	helper.RequireFunc(pureFn, "pureFn")
	memo := NewMemo(3, func(args []any) (O1, error) {
		return pureFn(args[0].(I1), args[1].(I2), args[2].(I3)), nil
	}, DefaultConfig())
	return func(i1 I1, i2 I2, i3 I3) O1 {
		v, _ := memo.Call(i1, i2, i3)
		return v
	}
}

func MemoizeI4O1[I1, I2, I3, I4, O1 any](pureFn func(I1, I2, I3, I4) O1) func(I1, I2, I3, I4) O1 {
	helper.RequireFunc(pureFn, "pureFn")
	memo := NewMemo(4, func(args []any) (O1, error) {
		return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4)), nil
	}, DefaultConfig())
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		v, _ := memo.Call(i1, i2, i3, i4)
		return v
	}
}

// MemoizeI1OE memoizes a function that may fail. Failed calls are not cached.
func MemoizeI1OE[I1, O1 any](pureFn func(I1) (O1, error)) func(I1) (O1, error) {
	helper.RequireFunc(pureFn, "pureFn")
	memo := NewMemo(1, func(args []any) (O1, error) {
		return pureFn(args[0].(I1))
	}, DefaultConfig())
	return func(i1 I1) (O1, error) {
		return memo.Call(i1)
	}
}

func MemoizeI2OE[I1, I2, O1 any](pureFn func(I1, I2) (O1, error)) func(I1, I2) (O1, error) {
	helper.RequireFunc(pureFn, "pureFn")
	memo := NewMemo(2, func(args []any) (O1, error) {
		return pureFn(args[0].(I1), args[1].(I2))
	}, DefaultConfig())
	return func(i1 I1, i2 I2) (O1, error) {
		return memo.Call(i1, i2)
	}
}

func MemoizeI3OE[I1, I2, I3, O1 any](pureFn func(I1, I2, I3) (O1, error)) func(I1, I2, I3) (O1, error) {
	helper.RequireFunc(pureFn, "pureFn")
	memo := NewMemo(3, func(args []any) (O1, error) {
		return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
	}, DefaultConfig())
	return func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return memo.Call(i1, i2, i3)
	}
}

func MemoizeI4OE[I1, I2, I3, I4, O1 any](pureFn func(I1, I2, I3, I4) (O1, error)) func(I1, I2, I3, I4) (O1, error) {
	helper.RequireFunc(pureFn, "pureFn")
	memo := NewMemo(4, func(args []any) (O1, error) {
		return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
	}, DefaultConfig())
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, error) {
		return memo.Call(i1, i2, i3, i4)
	}
}
