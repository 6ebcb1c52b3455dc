// Package kinematics implements the derived kinematic quantities computed
// on demand from the stored (pt, eta, phi) columns.
//
// # Laziness
//
// None of these quantities is ever stored: storage cost is paid only for the
// base columns, and every access recomputes the value. All functions are
// pure O(1) scalar arithmetic, cheap enough to re-evaluate on every read.
//
// # Floating point
//
// Columns are float32. Transcendental functions are evaluated in float64
// with a single final rounding to float32, matching the upstream
// float-in/float-out behavior. No identity rewriting is applied; downstream
// fits consume these values and last-bit behavior matters.
//
// Division by a zero findable-cluster count follows IEEE-754 float32
// division: +Inf for a nonzero crossed-row count, NaN for 0/0. Callers that
// need a defined value must check the denominator themselves.
package kinematics
