package fn_test

import (
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/functional_go/fn"
	"github.com/on-the-ground/functional_go/pure"
	"github.com/on-the-ground/functional_go/throwable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMemoizedFunction_Coherence(t *testing.T) {
	count := 0
	double := fn.Function[int, int](func(x int) int {
		count++
		return x * 2
	}).Memoized()

	var got []int
	for _, in := range []int{3, 5, 3, 7, 5} {
		got = append(got, double.Apply(in))
	}
	assert.Equal(t, []int{6, 10, 6, 14, 10}, got)
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, double.Len())
}

func TestMemoizedFunction_IdempotentRewrap(t *testing.T) {
	count := 0
	first := fn.Function[string, int](func(s string) int {
		count++
		return len(s)
	}).Memoized()

	assert.Equal(t, 5, first.Apply("hello"))

	second := first.Memoized()
	assert.Same(t, first, second)
	assert.Equal(t, first.Id(), second.Id())
	assert.Equal(t, 5, second.Apply("hello"))
	assert.Equal(t, 1, count)
}

func TestMemoizedFunction_SubstitutesForTheOriginal(t *testing.T) {
	count := 0
	var use func(fn.Function[int, string], int) string = func(f fn.Function[int, string], i int) string {
		return f(i)
	}
	memoized := fn.Function[int, string](func(i int) string {
		count++
		return strconv.Itoa(i)
	}).Memoized()

	assert.Equal(t, "4", use(memoized.Func(), 4))
	assert.Equal(t, "4", use(memoized.Func(), 4))
	assert.Equal(t, 1, count)
}

func TestMemoizedFunction_ConcurrentAtMostOnce(t *testing.T) {
	var calls atomic.Int32
	slow := fn.Function[int, int](func(x int) int {
		calls.Add(1)
		return x + 1
	}).MemoizedWith(pure.NewConfig(16, nil))

	start := make(chan struct{})
	var g errgroup.Group
	for i := 0; i < 100; i++ {
		i := i
		g.Go(func() error {
			<-start
			if v := slow.Apply(i % 10); v != i%10+1 {
				return errors.New("incoherent result")
			}
			return nil
		})
	}
	close(start)
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(10), calls.Load())
}

var errZero = errors.New("zero")

func TestMemoizedThrowingFunction_FailuresAreNotCached(t *testing.T) {
	count := map[int]int{}
	inverse := fn.ThrowingFunction[int, float64](func(x int) (float64, error) {
		count[x]++
		if x == 0 {
			return 0, errZero
		}
		return 1 / float64(x), nil
	}).Memoized()

	_, err := inverse.Apply(0)
	assert.ErrorIs(t, err, errZero)
	_, err = inverse.Apply(0)
	assert.ErrorIs(t, err, errZero)
	assert.Equal(t, 2, count[0])

	v, err := inverse.Apply(1)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, v)
	_, _ = inverse.Apply(1)
	assert.Equal(t, 1, count[1])

	assert.Same(t, inverse, inverse.Memoized())
	assert.Equal(t, 1, inverse.Len())
}

type lookupError struct {
	key   string
	cause error
}

func (e *lookupError) Error() string { return "lookup " + e.key + ": " + e.cause.Error() }
func (e *lookupError) Unwrap() error { return e.cause }

func TestSneakyThrow_PreservesIdentity(t *testing.T) {
	cause := errors.New("connection reset")
	original := &lookupError{key: "user:1", cause: cause}
	lookup := fn.ThrowingFunction[string, string](func(string) (string, error) {
		return "", original
	})

	err := throwable.Catch(func() {
		lookup.SneakyThrow()("user:1")
	})
	assert.Same(t, original, err)
	assert.Equal(t, "lookup user:1: connection reset", err.Error())
	assert.Same(t, cause, errors.Unwrap(err))

	_, err = lookup.SneakyThrow().Catching()("user:1")
	assert.Same(t, original, err)
}

func TestRecover_Substitutes(t *testing.T) {
	broken := fn.ThrowingFunction[int, string](func(int) (string, error) {
		return "", errZero
	})

	var seen error
	recovered := broken.Recover(func(err error) fn.Function[int, string] {
		seen = err
		return func(i int) string { return "recovered " + strconv.Itoa(i) }
	})

	assert.Equal(t, "recovered 3", recovered(3))
	assert.Same(t, errZero, seen)
}

func TestRecover_NilReplacementIsAContractViolation(t *testing.T) {
	broken := fn.ThrowingFunction[int, int](func(int) (int, error) { return 0, errZero })
	recovered := broken.Recover(func(error) fn.Function[int, int] { return nil })

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, throwable.ErrContractViolation)
	}()
	recovered(1)
}

func TestNest(t *testing.T) {
	broken := fn.ThrowingFunction[int, int](func(int) (int, error) { return 0, errZero })

	_, err := broken.Nest().Catching()(1)
	var wrapped *throwable.WrappedError
	require.ErrorAs(t, err, &wrapped)
	assert.Same(t, errZero, wrapped.Cause)

	custom := errors.New("custom")
	_, err = broken.NestWith(func(error) error { return custom }).Catching()(1)
	assert.Same(t, custom, err)
}

func TestFallback_IgnoresError(t *testing.T) {
	broken := fn.ThrowingFunction[int, int](func(int) (int, error) { return 0, errZero })
	fallback := broken.Fallback(func(i int) int { return i * 100 })

	for _, in := range []int{1, 2, 3} {
		assert.Equal(t, in*100, fallback(in))
	}
}

func TestOrReturn(t *testing.T) {
	parse := fn.ThrowingFunction[string, int](strconv.Atoi)

	assert.Equal(t, 12, parse.OrReturn(-1)("12"))
	assert.Equal(t, -1, parse.OrReturn(-1)("twelve"))
	assert.Equal(t, -2, parse.OrReturnFrom(func() int { return -2 })("twelve"))
}

func TestFatalErrorsEscapeCombinators(t *testing.T) {
	fatal := throwable.Fatal(errors.New("invariant broken"))
	broken := fn.ThrowingFunction[int, int](func(int) (int, error) { return 0, fatal })

	_, err := broken.OrReturn(0).Catching()(1)
	assert.Same(t, fatal, err)

	_, err = broken.Fallback(func(int) int { return 0 }).Catching()(1)
	assert.Same(t, fatal, err)
}

func TestMemoizedThenBridged(t *testing.T) {
	count := 0
	parse := fn.ThrowingFunction[string, int](func(s string) (int, error) {
		count++
		return strconv.Atoi(s)
	}).Memoized().Func().OrReturn(-1)

	assert.Equal(t, 7, parse("7"))
	assert.Equal(t, 7, parse("7"))
	assert.Equal(t, -1, parse("x"))
	assert.Equal(t, -1, parse("x"))
	assert.Equal(t, 3, count)
}

func TestNilFunctionsAreContractViolations(t *testing.T) {
	var nilFn fn.Function[int, int]
	var nilThrowing fn.ThrowingFunction[int, int]
	assert.Panics(t, func() { nilFn.Memoized() })
	assert.Panics(t, func() { nilThrowing.SneakyThrow() })
	assert.Panics(t, func() { nilThrowing.OrReturn(0) })
	assert.Panics(t, func() {
		fn.ThrowingFunction[int, int](func(int) (int, error) { return 0, nil }).Recover(nil)
	})
}
