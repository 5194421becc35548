// Package pure provides memoization for pure functions.
//
// Memoizing is not just a performance knob. Wrapping a function forces the
// question:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The memoizers here assume referential transparency. A function that depends
// on time, I/O or mutable state will silently return whatever it returned the
// first time for a given argument tuple.
//
// Features:
//   - MemoizeI1O1 to MemoizeI4O1, MemoizeI1OE to MemoizeI4OE: typed memoizers
//     for common arities, the OE family for functions that may fail.
//   - Table: an unbounded trie of sync.Map levels with atomic compute-if-absent,
//     so each argument tuple is computed at most once even under concurrent calls.
//   - Failures are never cached; the next call with the same tuple retries.
//
// Arguments must be comparable, or implement fmt.Stringer, and must not be nil
// interfaces. Results must not be nil interfaces. Violations panic with an
// error wrapping ErrContractViolation.
//
// The table never evicts. Memoizing a function over an unbounded input domain
// in a long-running process grows memory without limit.
package pure
