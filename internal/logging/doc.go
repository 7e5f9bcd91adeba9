// Package logging provides the logging interface used by the accumulator
// runners and the CLI. Failure reports (unreadable files, malformed lines,
// division by zero) are emitted through it so that the destination and
// format stay independent of the runner strategy.
package logging
