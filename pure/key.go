package pure

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/functional_go/internal/helper"
)

// TableKey is a normalized argument usable as a map key.
type TableKey any

// unit keys the single entry of a zero-arity memo.
type unit struct{}

// stringerKey keys a non-comparable fmt.Stringer. The type keeps it apart
// from a plain string, or another Stringer, with the same text.
type stringerKey struct {
	typ reflect.Type
	s   string
}

func tableKey(arg any) TableKey {
	if arg == nil {
		panic(helper.Violation("memoized argument must not be nil"))
	}
	if helper.IsComparable(arg) {
		return arg
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringerKey{typ: reflect.TypeOf(arg), s: stringer.String()}
	}
	panic(helper.Violation("memoized argument of type %T is neither comparable nor a fmt.Stringer", arg))
}

func tableKeys(args []any) []TableKey {
	if len(args) == 0 {
		return []TableKey{unit{}}
	}
	keys := make([]TableKey, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	return keys
}

func hash(key TableKey) uint64 {
	switch k := key.(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return xxhash.Sum64String(strconv.Itoa(k))
	case int64:
		return xxhash.Sum64String(strconv.FormatInt(k, 10))
	case uint64:
		return xxhash.Sum64String(strconv.FormatUint(k, 10))
	case stringerKey:
		return xxhash.Sum64String(k.s)
	default:
		return xxhash.Sum64String(fmt.Sprintf("%v", k))
	}
}

func shardIndex(key TableKey, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(hash(key) % uint64(numShards))
	}
}
