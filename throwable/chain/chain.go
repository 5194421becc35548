// Package chain reshapes one captured error before it leaves a call.
//
// A Chain starts pending. Each step looks at the captured error and either
// passes, or terminates the chain with the error to return. Once terminated
// every later step is a no-op, and the terminal methods (Replace, Wrap,
// AddAsSuppressed, ThrowAsIs, ...) return the error decided first.
//
//	if err != nil {
//	    return chain.Of(err).
//	        ThrowIf(chain.Is(context.Canceled)).
//	        WrapIf(chain.As[*net.OpError](), func(cause error) error { return &RetryableError{cause} }).
//	        AddSuppressedIf(chain.Is(io.EOF), func() error { return closeErr }).
//	        ThrowAsIs()
//	}
//
// Errors marked with throwable.Fatal pass through a chain unchanged.
//
// A Chain lives for one error-handling block and must not be shared.
package chain

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/functional_go/internal/helper"
	"github.com/on-the-ground/functional_go/throwable"
)

// Condition decides whether a step applies to the captured error.
type Condition func(error) bool

// Is matches errors for which errors.Is(err, target) holds.
func Is(target error) Condition {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// As matches errors with an error of type T in their chain.
func As[T error]() Condition {
	return func(err error) bool {
		var target T
		return errors.As(err, &target)
	}
}

// Not negates c.
func Not(c Condition) Condition {
	helper.RequireFunc(c, "condition")
	return func(err error) bool {
		return !c(err)
	}
}

// Chain is a single-use handle over one captured error.
type Chain struct {
	captured error
	thrown   error
}

// Of captures err. A nil err is a contract violation.
// A fatal err starts the chain terminated on err itself, so no step can
// replace, wrap or suppress it.
func Of(err error) *Chain {
	if err == nil {
		panic(helper.Violation("cannot build a chain over a nil error"))
	}
	c := &Chain{captured: err}
	if throwable.IsFatal(err) {
		c.thrown = err
	}
	return c
}

// Pending reports whether no step has terminated the chain yet.
func (c *Chain) Pending() bool {
	return c.thrown == nil
}

// ThrowIf terminates with the captured error when it matches cond.
func (c *Chain) ThrowIf(cond Condition) *Chain {
	return c.when(cond, func() error { return c.captured })
}

// ThrowIfNot terminates with the captured error when it does not match cond.
func (c *Chain) ThrowIfNot(cond Condition) *Chain {
	return c.ThrowIf(Not(cond))
}

// Replace terminates with the error built by factory, discarding the captured one.
func (c *Chain) Replace(factory func() error) error {
	helper.RequireFunc(factory, "replace factory")
	return c.terminate(factory)
}

// Replacef is Replace with a message formatted from format and args.
func (c *Chain) Replacef(factory func(msg string) error, format string, args ...any) error {
	helper.RequireFunc(factory, "replace factory")
	return c.terminate(func() error { return factory(fmt.Sprintf(format, args...)) })
}

// ReplaceIf replaces the captured error when it matches cond.
func (c *Chain) ReplaceIf(cond Condition, factory func() error) *Chain {
	helper.RequireFunc(factory, "replace factory")
	return c.when(cond, factory)
}

// ReplacefIf is ReplaceIf with a message formatted from format and args.
func (c *Chain) ReplacefIf(cond Condition, factory func(msg string) error, format string, args ...any) *Chain {
	helper.RequireFunc(factory, "replace factory")
	return c.when(cond, func() error { return factory(fmt.Sprintf(format, args...)) })
}

// Wrap terminates with the error factory builds around the captured one.
func (c *Chain) Wrap(factory func(cause error) error) error {
	helper.RequireFunc(factory, "wrap factory")
	return c.terminate(func() error { return factory(c.captured) })
}

// Wrapf is Wrap with a message formatted from format and args.
func (c *Chain) Wrapf(factory func(msg string, cause error) error, format string, args ...any) error {
	helper.RequireFunc(factory, "wrap factory")
	return c.terminate(func() error { return factory(fmt.Sprintf(format, args...), c.captured) })
}

// WrapIf wraps the captured error when it matches cond.
func (c *Chain) WrapIf(cond Condition, factory func(cause error) error) *Chain {
	helper.RequireFunc(factory, "wrap factory")
	return c.when(cond, func() error { return factory(c.captured) })
}

// WrapfIf is WrapIf with a message formatted from format and args.
func (c *Chain) WrapfIf(cond Condition, factory func(msg string, cause error) error, format string, args ...any) *Chain {
	helper.RequireFunc(factory, "wrap factory")
	return c.when(cond, func() error { return factory(fmt.Sprintf(format, args...), c.captured) })
}

// AddSuppressed attaches factory's error to the captured error's suppressed
// list. The chain stays pending.
func (c *Chain) AddSuppressed(factory func() error) *Chain {
	return c.AddSuppressedIf(always, factory)
}

// AddSuppressedIf is AddSuppressed applied only when the captured error matches cond.
func (c *Chain) AddSuppressedIf(cond Condition, factory func() error) *Chain {
	helper.RequireFunc(factory, "suppressed factory")
	helper.RequireFunc(cond, "condition")
	if c.Pending() && cond(c.captured) {
		c.captured = throwable.AddSuppressed(c.captured, build(factory))
	}
	return c
}

// AddAsSuppressed terminates with factory's error, carrying the captured
// error in its suppressed list.
func (c *Chain) AddAsSuppressed(factory func() error) error {
	helper.RequireFunc(factory, "suppressing factory")
	return c.terminate(func() error {
		return throwable.AddSuppressed(build(factory), c.captured)
	})
}

// AddAsSuppressedIf is AddAsSuppressed applied only when the captured error matches cond.
func (c *Chain) AddAsSuppressedIf(cond Condition, factory func() error) *Chain {
	helper.RequireFunc(factory, "suppressing factory")
	return c.when(cond, func() error {
		return throwable.AddSuppressed(build(factory), c.captured)
	})
}

// ThrowAsIs terminates the chain. It returns the error a previous step
// decided on, or else the captured error: the very value passed to Of,
// unless suppressed errors were attached to it.
func (c *Chain) ThrowAsIs() error {
	if c.Pending() {
		c.thrown = c.captured
	}
	return c.thrown
}

// Throw is ThrowAsIs followed by throwable.Throw.
func (c *Chain) Throw() {
	throwable.Throw(c.ThrowAsIs())
}

func always(error) bool { return true }

func (c *Chain) when(cond Condition, factory func() error) *Chain {
	helper.RequireFunc(cond, "condition")
	if c.Pending() && cond(c.captured) {
		c.thrown = build(factory)
	}
	return c
}

func (c *Chain) terminate(factory func() error) error {
	if c.Pending() {
		c.thrown = build(factory)
	}
	return c.thrown
}

func build(factory func() error) error {
	err := factory()
	if err == nil {
		panic(helper.Violation("error factory returned nil"))
	}
	return err
}
