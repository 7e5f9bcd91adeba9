package ops

import (
	"errors"
	"strconv"
	"strings"
)

// ParseErrorKind classifies why a line could not be parsed.
type ParseErrorKind uint8

const (
	// WrongArity means the line did not split into exactly two tokens.
	WrongArity ParseErrorKind = iota
	// InvalidOperand means the second token is not a decimal in [0, 255].
	InvalidOperand
	// UnknownOperator means the first token is not one of + - * /.
	UnknownOperator
)

// Sentinel errors matched by ParseError.Is, one per ParseErrorKind.
var (
	ErrWrongArity      = errors.New("expected 2 arguments")
	ErrInvalidOperand  = errors.New("operand is not an unsigned 8-bit integer")
	ErrUnknownOperator = errors.New("unknown operation")
)

// ParseError reports a line that could not be turned into an Operation.
type ParseError struct {
	// Kind is the classification of the failure.
	Kind ParseErrorKind
	// Token is the offending token, empty for WrongArity.
	Token string
}

// Error returns the message of the sentinel for the kind, with the
// offending token appended when there is one.
func (e *ParseError) Error() string {
	msg := e.sentinel().Error()
	if e.Token != "" {
		return msg + ": " + strconv.Quote(e.Token)
	}
	return msg
}

// Is reports whether target is the sentinel matching this error's kind.
func (e *ParseError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ParseError) sentinel() error {
	switch e.Kind {
	case WrongArity:
		return ErrWrongArity
	case InvalidOperand:
		return ErrInvalidOperand
	default:
		return ErrUnknownOperator
	}
}

// Parse converts one line of text into an Operation.
//
// The line must split on whitespace into exactly two tokens. The operand is
// checked before the operator, so "x 300" reports InvalidOperand.
//
// Parameters:
//   - line: The raw text line, without its trailing newline.
//
// Returns:
//   - Operation: The parsed operation, zero value on failure.
//   - error: A *ParseError describing the failure, or nil.
func Parse(line string) (Operation, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return Operation{}, &ParseError{Kind: WrongArity}
	}
	symbol, operandText := tokens[0], tokens[1]

	operand, err := parseOperand(operandText)
	if err != nil {
		return Operation{}, &ParseError{Kind: InvalidOperand, Token: operandText}
	}

	var kind Kind
	switch symbol {
	case "+":
		kind = Add
	case "-":
		kind = Subtract
	case "*":
		kind = Multiply
	case "/":
		kind = Divide
	default:
		return Operation{}, &ParseError{Kind: UnknownOperator, Token: symbol}
	}
	return Operation{Kind: kind, Operand: operand}, nil
}

// parseOperand accepts decimal digits with at most one leading '+'.
// ParseUint rejects any other sign and, with an explicit base, underscores
// and radix prefixes.
func parseOperand(s string) (uint8, error) {
	if len(s) > 1 && s[0] == '+' && s[1] >= '0' && s[1] <= '9' {
		s = s[1:]
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
