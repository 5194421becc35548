package throwable_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/functional_go/throwable"
	"github.com/stretchr/testify/assert"
)

func TestFatal(t *testing.T) {
	base := errors.New("base")
	fatal := throwable.Fatal(base)

	assert.True(t, throwable.IsFatal(fatal))
	assert.True(t, throwable.IsFatal(fmt.Errorf("context: %w", fatal)))
	assert.False(t, throwable.IsFatal(base))
	assert.ErrorIs(t, fatal, base)
	assert.Equal(t, "base", fatal.Error())
	assert.Same(t, fatal, throwable.Fatal(fatal))
	assert.Nil(t, throwable.Fatal(nil))
}

func TestWrap(t *testing.T) {
	base := errors.New("base")
	err := throwable.Wrap(base)
	assert.Equal(t, "base", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Panics(t, func() { _ = throwable.Wrap(nil) })
}

func TestAddSuppressed(t *testing.T) {
	primary := errors.New("primary")
	first := errors.New("first")
	second := errors.New("second")

	once := throwable.AddSuppressed(primary, first)
	twice := throwable.AddSuppressed(once, second)

	assert.Equal(t, "primary", twice.Error())
	assert.ErrorIs(t, twice, primary)
	assert.NotErrorIs(t, twice, first)
	assert.Equal(t, []error{first}, throwable.Suppressed(once))
	assert.Equal(t, []error{first, second}, throwable.Suppressed(twice))
	assert.Nil(t, throwable.Suppressed(primary))

	assert.Equal(t, "primary\n\tsuppressed: first\n\tsuppressed: second", fmt.Sprintf("%+v", twice))
	assert.Equal(t, "primary", fmt.Sprintf("%v", twice))
}

func TestAddSuppressedNilIsAContractViolation(t *testing.T) {
	assert.Panics(t, func() { _ = throwable.AddSuppressed(nil, errors.New("x")) })
	assert.Panics(t, func() { _ = throwable.AddSuppressed(errors.New("x"), nil) })
}
