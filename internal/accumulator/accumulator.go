// Package accumulator implements the single-byte wrapping accumulator that
// every runner folds operations into.
package accumulator

import (
	"errors"

	"github.com/agbru/accumcalc/internal/ops"
)

// ErrDivideByZero is returned by Apply for a Divide with operand 0. The
// accumulator is left unchanged.
var ErrDivideByZero = errors.New("division by zero")

// Accumulator holds one unsigned 8-bit value, initially 0. Arithmetic wraps
// modulo 256. An Accumulator is not safe for concurrent use; callers
// serialize access themselves (a lock, or a single owning goroutine).
type Accumulator struct {
	value uint8
}

// New returns an accumulator starting at 0.
func New() *Accumulator {
	return &Accumulator{}
}

// Value returns the current state.
func (a *Accumulator) Value() uint8 {
	return a.value
}

// Apply mutates the accumulator with op.
//
// Returns:
//   - error: ErrDivideByZero for Divide(0), in which case the value is
//     unchanged; nil otherwise.
func (a *Accumulator) Apply(op ops.Operation) error {
	switch op.Kind {
	case ops.Add:
		a.value += op.Operand
	case ops.Subtract:
		a.value -= op.Operand
	case ops.Multiply:
		a.value *= op.Operand
	case ops.Divide:
		if op.Operand == 0 {
			return ErrDivideByZero
		}
		a.value /= op.Operand
	}
	return nil
}

// Fold applies every operation in order to a fresh accumulator and returns
// the final value. Divide-by-zero steps are skipped.
func Fold(operations []ops.Operation) uint8 {
	acc := New()
	for _, op := range operations {
		_ = acc.Apply(op)
	}
	return acc.Value()
}
