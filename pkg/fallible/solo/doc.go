// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. These functions form the core building blocks for
// error-aware step sequences; every one of them short-circuits on a
// failed input and passes the original error through untouched.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with an optional error hook)
// - Try: call a function (Out, error) and convert error or panic to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
