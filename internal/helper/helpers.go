package helper

import (
	"errors"
	"fmt"
)

// ErrContractViolation marks misuse of the library: nil functions, nil
// mappers, nil results where a value is required, unkeyable arguments.
// It is always raised as a panic and is never the target of recovery.
var ErrContractViolation = errors.New("contract violation")

// Violation builds the panic value for a broken contract.
func Violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...))
}

// RequireFunc panics when a function argument is nil.
func RequireFunc[F any](f F, what string) {
	if IsNilFunc(f) {
		panic(Violation("%s must not be nil", what))
	}
}

// IsNilFunc reports whether f is a nil func value of any func type.
func IsNilFunc[F any](f F) bool {
	return any(f) == nil || isNilFunc(any(f))
}

// GetTypedValueOf2 safely asserts the result of a getter function to the expected type T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// MustGetTypedValue asserts raw to T and panics on mismatch.
// Use where the type is guaranteed by construction.
func MustGetTypedValue[T any](raw any) T {
	val, ok := raw.(T)
	if !ok {
		panic(fmt.Errorf("unexpected type: %T", raw))
	}
	return val
}
