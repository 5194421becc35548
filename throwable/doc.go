// Package throwable bridges functions that declare an error with functions
// that declare none.
//
// A function returning (O, error) is a "throwing" function. SneakyThrow-style
// bridging turns it into a function returning only O: a returned error is
// thrown with Throw, which panics with a private carrier holding the very
// same error value. Catch and Try recover that carrier, and only that
// carrier, handing the identical error back to the caller. Any other panic,
// runtime errors included, passes through untouched.
//
// Around that boundary the package offers resolution combinators over thunks:
//
//	Recover       substitute a replacement computation chosen from the error
//	Nest          throw a new error built from the original
//	Fallback      ignore the error and delegate to a default computation
//	OrReturn      ignore the error and return a fixed value
//	OrReturnFrom  ignore the error and return a lazily supplied value
//
// Errors marked with Fatal are never intercepted by any combinator; they are
// thrown unchanged. Misuse (nil mappers, nil replacements) panics with an
// error wrapping ErrContractViolation and is never recovered.
package throwable
