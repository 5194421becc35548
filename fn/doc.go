// Package fn provides the function shapes the library's mechanisms attach to.
//
// Go generics make one shape per arity enough, whatever the argument and
// result types:
//
//	Supplier[O]            func() O
//	Function[I, O]         func(I) O
//	BiFunction[I1, I2, O]  func(I1, I2) O
//
// and their throwing counterparts returning (O, error). A predicate is a
// Function[I, bool].
//
// Every shape can be memoized:
//
//	square := fn.Function[int, int](func(x int) int { return x * x }).Memoized()
//	square.Apply(3) // computed
//	square.Apply(3) // cached
//
// Memoized wrappers are their own types; calling Memoized on one returns the
// same wrapper and the same cache.
//
// Throwing shapes can be bridged to their unchecked shape:
//
//	load := fn.ThrowingFunction[string, []byte](os.ReadFile)
//	load.SneakyThrow()                        // errors escape via throwable.Throw
//	load.OrReturn(nil)                        // errors become nil
//	load.Recover(func(err error) fn.Function[string, []byte] { ... })
//
// Unchecked shapes go back with Catching, which recovers errors thrown by
// throwable.Throw.
package fn
