package throwable

import (
	"github.com/on-the-ground/functional_go/internal/helper"
	"github.com/on-the-ground/functional_go/log"
	"go.uber.org/zap"
)

// resolve runs op and hands a recoverable error to onErr.
// Fatal errors are thrown unchanged.
func resolve[O any](op func() (O, error), strategy string, onErr func(error) O) O {
	v, err := op()
	if err == nil {
		return v
	}
	if IsFatal(err) {
		Throw(err)
	}
	log.L().Debug("resolving error", zap.String("strategy", strategy), zap.Error(err))
	return onErr(err)
}

// Recover runs op; on a recoverable error it runs the replacement chosen by
// mapper instead. A nil replacement is a contract violation.
func Recover[O any](op func() (O, error), mapper func(error) func() O) O {
	helper.RequireFunc(op, "operation")
	helper.RequireFunc(mapper, "recover mapper")
	return resolve(op, "recover", func(err error) O {
		replacement := mapper(err)
		if replacement == nil {
			panic(helper.Violation("recover mapper returned no replacement for %q", err))
		}
		return replacement()
	})
}

// Nest runs op; on a recoverable error it throws mapper's error instead.
func Nest[O any](op func() (O, error), mapper func(error) error) O {
	helper.RequireFunc(op, "operation")
	helper.RequireFunc(mapper, "nest mapper")
	return resolve(op, "nest", func(err error) O {
		nested := mapper(err)
		if nested == nil {
			panic(helper.Violation("nest mapper returned no error for %q", err))
		}
		Throw(nested)
		panic("unreachable")
	})
}

// NestDefault is Nest with Wrap as the mapper.
func NestDefault[O any](op func() (O, error)) O {
	return Nest(op, Wrap)
}

// Fallback runs op; on a recoverable error it runs defaultOp instead.
func Fallback[O any](op func() (O, error), defaultOp func() O) O {
	helper.RequireFunc(op, "operation")
	helper.RequireFunc(defaultOp, "fallback")
	return resolve(op, "fallback", func(error) O {
		return defaultOp()
	})
}

// OrReturn runs op; on a recoverable error it returns value.
func OrReturn[O any](op func() (O, error), value O) O {
	helper.RequireFunc(op, "operation")
	return resolve(op, "or_return", func(error) O {
		return value
	})
}

// OrReturnFrom runs op; on a recoverable error it returns supplier's value.
func OrReturnFrom[O any](op func() (O, error), supplier func() O) O {
	helper.RequireFunc(op, "operation")
	helper.RequireFunc(supplier, "supplier")
	return resolve(op, "or_return_from", func(error) O {
		return supplier()
	})
}
