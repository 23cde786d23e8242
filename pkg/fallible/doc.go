// Package fallible provides Result[T], a two-state value that is either a
// success carrying T or a failure carrying the error that caused it, plus
// Call, which captures any fault (returned error or panic) from an
// arbitrary computation into a Result.
//
// Results are immutable, synchronous values: there is no blocking, no
// cancellation distinct from failure, and no shared state. Composition of
// multi-step fallible procedures lives in the subpackages:
//
//   - solo: single-value primitives (Validate, Switch, Map, Try, Tee, ...)
//   - resume: the always-ready resume point used by the coordinator
//   - seq: the fluent chain and the explicit coordinator state machine
package fallible
