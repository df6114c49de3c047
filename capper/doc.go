// Package capper replaces wall-clock deadlines with an operation-count
// budget, so that a randomized algorithm can be aborted deterministically
// regardless of the host machine's speed.
//
// Complexity:
//
//   - Time:  O(1) per Incr/Fail call.
//   - Space: O(1).
//
// Two constructors are provided: NewUnbounded, whose Incr always succeeds,
// and NewBounded, which fails once the running total strictly exceeds the
// given budget. Failure is sticky: once a Capper has failed, it never
// recovers, even if later Incr calls pass a zero amount.
package capper
