// Package expr holds the expression tree shared by the infix and Polish parsers.
//
// Node is a closed set: only Constant, Unary and Binary implement it, and
// Evaluate switches over exactly those three.
package expr

type UnaryOp int

const (
	Identity UnaryOp = iota
	Negate
	Square
	Abs
)

func (op UnaryOp) String() string {
	switch op {
	case Identity:
		return "+"
	case Negate:
		return "-"
	case Square:
		return "sqr"
	case Abs:
		return "abs"
	default:
		return "?"
	}
}

type BinaryOp int

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
	Modulo
	Min
	Max
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulo:
		return "%"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "?"
	}
}

// Node is a sub-expression in a tree.
type Node interface {
	node()
}

// Constant is an integer leaf.
type Constant struct {
	Value int64
}

// Unary applies Op to a single operand.
type Unary struct {
	Op      UnaryOp
	Operand Node
}

// Binary applies Op to Left and Right, evaluated in that order.
type Binary struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

func (Constant) node() {}
func (*Unary) node()   {}
func (*Binary) node()  {}

func NewConstant(v int64) Constant {
	return Constant{Value: v}
}

func NewUnary(op UnaryOp, operand Node) *Unary {
	return &Unary{Op: op, Operand: operand}
}

func NewBinary(op BinaryOp, left, right Node) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}
