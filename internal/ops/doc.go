// Package ops defines the arithmetic operations read from input files and
// the parser that turns one line of text into an Operation.
//
// A line has the form "<operator> <operand>" where the operator is one of
// + - * / and the operand is a decimal integer in [0, 255]. Tokens are
// separated by arbitrary whitespace. Parse is a pure function and is safe
// for concurrent use by any number of workers.
package ops
