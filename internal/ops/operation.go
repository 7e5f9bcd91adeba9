package ops

import "fmt"

// Kind identifies the arithmetic transition carried by an Operation.
type Kind uint8

const (
	// Add adds the operand, wrapping modulo 256.
	Add Kind = iota
	// Subtract subtracts the operand, wrapping modulo 256.
	Subtract
	// Multiply multiplies by the operand, wrapping modulo 256.
	Multiply
	// Divide performs integer division by the operand.
	Divide
)

// Symbol returns the operator symbol used in the textual line format.
func (k Kind) Symbol() string {
	switch k {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Operation is an immutable, parsed arithmetic operation.
type Operation struct {
	Kind    Kind
	Operand uint8
}

// String formats the operation in the same "<sym> <operand>" form that
// Parse accepts, so Parse(op.String()) yields op again.
func (o Operation) String() string {
	return fmt.Sprintf("%s %d", o.Kind.Symbol(), o.Operand)
}

// Kinds lists every supported operation kind in declaration order.
func Kinds() []Kind {
	return []Kind{Add, Subtract, Multiply, Divide}
}
