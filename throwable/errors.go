package throwable

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/functional_go/internal/helper"
	"go.uber.org/multierr"
)

// ErrContractViolation is wrapped by every misuse panic of the library.
var ErrContractViolation = helper.ErrContractViolation

// FatalError marks an error no combinator may intercept.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }
func (e *FatalError) Unwrap() error { return e.Err }

// Fatal marks err as fatal. Marking is idempotent; Fatal(nil) is nil.
func Fatal(err error) error {
	if err == nil || IsFatal(err) {
		return err
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err, or any error it wraps, is marked fatal.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

// WrappedError is the error thrown by Nest's default mapper.
type WrappedError struct {
	Msg   string
	Cause error
}

func (e *WrappedError) Error() string { return e.Msg }
func (e *WrappedError) Unwrap() error { return e.Cause }

// Wrap builds a WrappedError carrying err's message with err as its cause.
func Wrap(err error) error {
	if err == nil {
		panic(helper.Violation("cannot wrap a nil error"))
	}
	return &WrappedError{Msg: err.Error(), Cause: err}
}

// SuppressingError is an error with a list of errors suppressed while
// handling it. It reads and unwraps as the primary error; the suppressed
// errors are reachable only through Suppressed.
type SuppressingError struct {
	err        error
	suppressed error
}

func (e *SuppressingError) Error() string { return e.err.Error() }
func (e *SuppressingError) Unwrap() error { return e.err }

// Suppressed returns the suppressed errors in the order they were added.
func (e *SuppressingError) Suppressed() []error { return multierr.Errors(e.suppressed) }

// Format prints the primary error; %+v also lists the suppressed errors.
func (e *SuppressingError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", e.err)
		for _, sup := range e.Suppressed() {
			fmt.Fprintf(s, "\n\tsuppressed: %+v", sup)
		}
		return
	}
	fmt.Fprint(s, e.err.Error())
}

// AddSuppressed returns err with suppressed appended to its suppressed list.
// err itself is never mutated; the result unwraps to err's primary error.
func AddSuppressed(err, suppressed error) error {
	if err == nil || suppressed == nil {
		panic(helper.Violation("AddSuppressed needs two non-nil errors"))
	}
	if se, ok := err.(*SuppressingError); ok {
		return &SuppressingError{err: se.err, suppressed: multierr.Append(se.suppressed, suppressed)}
	}
	return &SuppressingError{err: err, suppressed: suppressed}
}

// Suppressed returns the errors suppressed by the first SuppressingError in err's chain.
func Suppressed(err error) []error {
	var se *SuppressingError
	if errors.As(err, &se) {
		return se.Suppressed()
	}
	return nil
}
