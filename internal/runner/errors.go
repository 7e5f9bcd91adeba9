package runner

import (
	"errors"
	"fmt"

	"github.com/agbru/accumcalc/internal/accumulator"
	"github.com/agbru/accumcalc/internal/ops"
)

// Sentinels matched by FileError.Is.
var (
	ErrFileOpen = errors.New("failed to open file")
	ErrLineRead = errors.New("failed to read line")
)

// ErrInvalidUTF8 is the cause of a read failure on a line that is not valid
// UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// FileStage tells where file processing stopped.
type FileStage uint8

const (
	// StageOpen means the file could not be opened; no line was processed.
	StageOpen FileStage = iota
	// StageRead means reading failed after Line lines; the rest is skipped.
	StageRead
)

// FileError reports a file whose processing stopped early.
type FileError struct {
	Path  string
	Stage FileStage
	// Line is the number of lines read before the failure.
	Line  int
	Cause error
}

func (e *FileError) Error() string {
	if e.Stage == StageOpen {
		return fmt.Sprintf("%v %q: %v", ErrFileOpen, e.Path, e.Cause)
	}
	return fmt.Sprintf("%v %d of %q: %v", ErrLineRead, e.Line+1, e.Path, e.Cause)
}

func (e *FileError) Unwrap() error { return e.Cause }

// Is matches ErrFileOpen or ErrLineRead according to the stage.
func (e *FileError) Is(target error) bool {
	switch e.Stage {
	case StageOpen:
		return target == ErrFileOpen
	default:
		return target == ErrLineRead
	}
}

// LineError reports a single skipped line. Cause is an *ops.ParseError or
// accumulator.ErrDivideByZero.
type LineError struct {
	Path  string
	Line  int
	Cause error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Cause)
}

func (e *LineError) Unwrap() error { return e.Cause }

// reason maps a failure to the short label used for metrics.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrFileOpen):
		return "open"
	case errors.Is(err, ErrLineRead):
		return "read"
	case errors.Is(err, ops.ErrWrongArity):
		return "wrong_arity"
	case errors.Is(err, ops.ErrInvalidOperand):
		return "invalid_operand"
	case errors.Is(err, ops.ErrUnknownOperator):
		return "unknown_operator"
	case errors.Is(err, accumulator.ErrDivideByZero):
		return "divide_by_zero"
	default:
		return "other"
	}
}
