package expr

import (
	"math"
	"strconv"
	"strings"
)

type precedence int

const (
	addPrecedence precedence = iota
	mulPrecedence
	unaryPrecedence
	atomicPrecedence
)

func precedenceOf(n Node) precedence {
	switch n := n.(type) {
	case Constant:
		if n.Value < 0 {
			return unaryPrecedence
		}
		return atomicPrecedence
	case *Unary:
		if n.Op == Identity || n.Op == Negate {
			return unaryPrecedence
		}
		return atomicPrecedence
	case *Binary:
		switch n.Op {
		case Add, Subtract:
			return addPrecedence
		case Multiply, Divide, Modulo:
			return mulPrecedence
		}
	}
	return atomicPrecedence
}

// Infix renders n with the minimum parentheses needed to keep its shape.
// min, max, sqr and abs are written in call form, e.g. "max(2, sqr(3))",
// which is for display only: the infix grammar has no call syntax.
func Infix(n Node) string {
	switch n := n.(type) {
	case Constant:
		return strconv.FormatInt(n.Value, 10)
	case *Unary:
		operand := Infix(n.Operand)
		if n.Op == Square || n.Op == Abs {
			return n.Op.String() + "(" + operand + ")"
		}
		if precedenceOf(n.Operand) < unaryPrecedence {
			operand = "(" + operand + ")"
		}
		return n.Op.String() + operand
	case *Binary:
		left, right := Infix(n.Left), Infix(n.Right)
		if n.Op == Min || n.Op == Max {
			return n.Op.String() + "(" + left + ", " + right + ")"
		}
		p := precedenceOf(n)
		if precedenceOf(n.Left) < p {
			left = "(" + left + ")"
		}
		if precedenceOf(n.Right) <= p {
			right = "(" + right + ")"
		}
		return left + " " + n.Op.String() + " " + right
	}
	return ""
}

// Polish renders n in prefix notation. The output parses back to a tree
// with the same value: unary + and - and negative constants are wrapped in
// parentheses so the parser cannot read them as binary operators.
// math.MinInt64 has no literal form and is written as (- (-MaxInt64) 1).
func Polish(n Node) string {
	var b strings.Builder
	writePolish(&b, n)
	return b.String()
}

func writePolish(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case Constant:
		if n.Value == math.MinInt64 {
			b.WriteString("(- (-")
			b.WriteString(strconv.FormatInt(math.MaxInt64, 10))
			b.WriteString(") 1)")
			return
		}
		if n.Value < 0 {
			b.WriteString("(-")
			b.WriteString(strconv.FormatInt(-n.Value, 10))
			b.WriteString(")")
			return
		}
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *Unary:
		if n.Op == Identity || n.Op == Negate {
			b.WriteString("(")
			b.WriteString(n.Op.String())
			b.WriteString(" ")
			writePolish(b, n.Operand)
			b.WriteString(")")
			return
		}
		b.WriteString(n.Op.String())
		b.WriteString(" ")
		writePolish(b, n.Operand)
	case *Binary:
		b.WriteString(n.Op.String())
		b.WriteString(" ")
		writePolish(b, n.Left)
		b.WriteString(" ")
		writePolish(b, n.Right)
	}
}
