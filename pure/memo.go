package pure

import (
	"github.com/google/uuid"
	"github.com/on-the-ground/functional_go/internal/helper"
	"github.com/on-the-ground/functional_go/log"
	"go.uber.org/zap"
)

// Memo memoizes one function over argument tuples of a fixed arity.
// It owns exactly one Table and is safe for concurrent use.
type Memo[O any] struct {
	Id      string
	arity   int
	table   *Table[O]
	compute func(args []any) (O, error)
	logger  *zap.Logger
}

// NewMemo wraps compute, which receives the original arguments of each call.
func NewMemo[O any](arity int, compute func(args []any) (O, error), config Config) *Memo[O] {
	helper.RequireFunc(compute, "memoized function")
	config = NewConfig(config.NumShards, config.Logger)
	return &Memo[O]{
		Id:      uuid.New().String(),
		arity:   arity,
		table:   NewTable[O](config.NumShards),
		compute: compute,
		logger:  config.Logger,
	}
}

// Call returns the result for args, computing it at most once per distinct
// tuple. Errors are returned as-is and leave nothing cached.
func (m *Memo[O]) Call(args ...any) (O, error) {
	if len(args) != m.arity {
		panic(helper.Violation("memo %s expects %d arguments, got %d", m.Id, m.arity, len(args)))
	}
	keys := tableKeys(args)
	v, _, err := m.table.LoadOrCompute(keys, func() (O, error) {
		log.Or(m.logger).Debug("memo miss", zap.String("memo_id", m.Id), zap.Int("arity", m.arity))
		res, err := m.compute(args)
		if err != nil {
			log.Or(m.logger).Debug("memo compute failed, not cached",
				zap.String("memo_id", m.Id),
				zap.Error(err),
			)
			return res, err
		}
		if any(res) == nil {
			panic(helper.Violation("memoized function returned nil"))
		}
		return res, nil
	})
	return v, err
}

// Len returns the number of cached tuples.
func (m *Memo[O]) Len() int {
	return m.table.Len()
}
