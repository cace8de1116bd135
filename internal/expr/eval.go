package expr

import (
	"fmt"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
)

// Evaluate reduces the tree in postorder. Arithmetic wraps on overflow;
// division and modulo truncate toward zero and reject a zero divisor.
func Evaluate(n Node) (int64, error) {
	switch n := n.(type) {
	case Constant:
		return n.Value, nil
	case *Unary:
		x, err := Evaluate(n.Operand)
		if err != nil {
			return 0, err
		}
		return applyUnary(n.Op, x)
	case *Binary:
		x, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		y, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		return applyBinary(n.Op, x, y)
	case nil:
		return 0, fmt.Errorf("evaluate: nil node")
	default:
		return 0, fmt.Errorf("evaluate: unsupported node %T", n)
	}
}

func applyUnary(op UnaryOp, x int64) (int64, error) {
	switch op {
	case Identity:
		return x, nil
	case Negate:
		return -x, nil
	case Square:
		return x * x, nil
	case Abs:
		if x < 0 {
			return -x, nil
		}
		return x, nil
	default:
		return 0, fmt.Errorf("evaluate: unsupported unary operator %d", op)
	}
}

func applyBinary(op BinaryOp, x, y int64) (int64, error) {
	switch op {
	case Add:
		return x + y, nil
	case Subtract:
		return x - y, nil
	case Multiply:
		return x * y, nil
	case Divide:
		if y == 0 {
			return 0, apperr.NewArithmetic(op.String(), "division by zero")
		}
		return x / y, nil
	case Modulo:
		if y == 0 {
			return 0, apperr.NewArithmetic(op.String(), "modulo by zero")
		}
		return x % y, nil
	case Min:
		return min(x, y), nil
	case Max:
		return max(x, y), nil
	default:
		return 0, fmt.Errorf("evaluate: unsupported binary operator %d", op)
	}
}
