// Package bench times every runner strategy over the same input files and
// aggregates the outcomes for comparison. It decouples measurement from
// presentation via the ProgressReporter and ResultPresenter interfaces.
//
// Final values are reported, never compared for equality: concurrent
// strategies interleave files nondeterministically and may legitimately
// disagree with the sequential result.
package bench
