package pure

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/functional_go/internal/helper"
)

// Table is an unbounded trie of sync.Map levels, one level per argument
// position. Leaves hold slots; a slot is either pending (being computed by
// exactly one caller) or done.
type Table[O any] struct {
	shards []*sync.Map
	size   atomic.Int64
}

type slot[O any] struct {
	done chan struct{}
	val  O
	err  error
	ok   bool
}

func (s *slot[O]) ready() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func NewTable[O any](numShards int) *Table[O] {
	if numShards <= 0 {
		panic("numShards should be greater than 0")
	}
	shards := make([]*sync.Map, numShards)
	for i := range shards {
		shards[i] = &sync.Map{}
	}
	return &Table[O]{shards: shards}
}

// Len returns the number of cached tuples.
func (t *Table[O]) Len() int {
	return int(t.size.Load())
}

// Load returns the value cached for keys, if any. Pending computations are
// reported as absent.
func (t *Table[O]) Load(keys []TableKey) (O, bool) {
	var zero O
	m, k, ok := t.find(keys)
	if !ok {
		return zero, false
	}
	s, ok := helper.GetTypedValueOf2[*slot[O]](func() (any, bool) { return m.Load(k) })
	if !ok || !s.ready() || !s.ok {
		return zero, false
	}
	return s.val, true
}

// LoadOrCompute returns the value cached for keys, computing and storing it
// when absent. Concurrent callers for the same keys wait for the one
// computation in flight. A failed or panicking computation is not stored:
// callers that waited on it get its error (or retry, after a panic) and the
// next call computes again. compute must not call back into the table with
// the same keys: it would wait on its own pending slot.
func (t *Table[O]) LoadOrCompute(keys []TableKey, compute func() (O, error)) (O, bool, error) {
	m, k := t.traverse(keys)
	for {
		s, loaded := t.loadOrClaim(m, k)
		if loaded {
			if s.ok {
				return s.val, true, nil
			}
			if s.err != nil {
				var zero O
				return zero, false, s.err
			}
			// the computing caller panicked and its slot is gone
			continue
		}
		val, err := t.fill(m, k, s, compute)
		return val, false, err
	}
}

// loadOrClaim returns the finished slot for k, or a fresh pending slot now
// owned by the caller.
func (t *Table[O]) loadOrClaim(m *sync.Map, k TableKey) (*slot[O], bool) {
	if raw, ok := m.Load(k); ok {
		s := helper.MustGetTypedValue[*slot[O]](raw)
		<-s.done
		return s, true
	}
	raw, loaded := m.LoadOrStore(k, &slot[O]{done: make(chan struct{})})
	s := helper.MustGetTypedValue[*slot[O]](raw)
	if loaded {
		<-s.done
	}
	return s, loaded
}

func (t *Table[O]) fill(m *sync.Map, k TableKey, s *slot[O], compute func() (O, error)) (O, error) {
	defer func() {
		if !s.ok {
			m.CompareAndDelete(k, s)
		}
		close(s.done)
	}()
	val, err := compute()
	if err != nil {
		s.err = err
		return val, err
	}
	s.val, s.ok = val, true
	t.size.Add(1)
	return val, nil
}

// find walks the trie without creating levels.
func (t *Table[O]) find(keys []TableKey) (*sync.Map, TableKey, bool) {
	length := len(keys)
	if length == 0 {
		panic("find: empty keys")
	}
	targetMap := t.shards[shardIndex(keys[0], len(t.shards))]
	for _, k := range keys[:length-1] {
		next, ok := helper.GetTypedValueOf2[*sync.Map](func() (any, bool) { return targetMap.Load(k) })
		if !ok {
			return nil, nil, false
		}
		targetMap = next
	}
	return targetMap, keys[length-1], true
}

// traverse walks the trie, creating missing levels atomically.
func (t *Table[O]) traverse(keys []TableKey) (*sync.Map, TableKey) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}
	targetMap := t.shards[shardIndex(keys[0], len(t.shards))]
	for _, k := range keys[:length-1] {
		v, ok := targetMap.Load(k)
		if !ok {
			v, _ = targetMap.LoadOrStore(k, &sync.Map{})
		}
		targetMap = helper.MustGetTypedValue[*sync.Map](v)
	}
	return targetMap, keys[length-1]
}
