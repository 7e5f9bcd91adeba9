// Package runner folds the operations of several input files into a single
// wrapping accumulator using one of three interchangeable strategies:
//
//   - Sequential processes files in argument order on the calling goroutine.
//   - Mutex starts one worker per file; workers parse independently and
//     apply each operation to a shared accumulator under a sync.Mutex held
//     only for the duration of that apply.
//   - Channel starts one producer per file; producers send parsed operations
//     over a single channel to a consumer goroutine that owns the
//     accumulator exclusively.
//
// Within a file, operations are always applied in line order. Across files
// the concurrent strategies give no ordering guarantee, so their final value
// may legitimately differ from the sequential one; it is always the value of
// some interleaving of the per-file sequences.
//
// Failures never cross file boundaries: an unreadable file stops only that
// file, a malformed line or a division by zero skips only that line. Every
// failure is logged and returned in Result.Failures.
package runner
