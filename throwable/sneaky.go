package throwable

import (
	"github.com/on-the-ground/functional_go/internal/helper"
)

// thrown carries an error through a panic. Only Catch and Try recover it.
type thrown struct {
	err error
}

// Throw panics with err so that it escapes through code that declares no
// error. Catch or Try on the way up returns the identical error value.
func Throw(err error) {
	if err == nil {
		panic(helper.Violation("cannot throw a nil error"))
	}
	panic(thrown{err: err})
}

// Sneaky runs op and throws its error, if any.
func Sneaky[O any](op func() (O, error)) O {
	v, err := op()
	if err != nil {
		Throw(err)
	}
	return v
}

// Catch runs fn and returns the error thrown by it, if any.
// Panics not raised by Throw are re-raised unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			t, ok := r.(thrown)
			if !ok {
				panic(r)
			}
			err = t.err
		}
	}()
	fn()
	return nil
}

// Try runs fn and turns a thrown error back into a returned one.
func Try[O any](fn func() O) (res O, err error) {
	err = Catch(func() {
		res = fn()
	})
	return
}
