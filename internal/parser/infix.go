package parser

import (
	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/expr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/token"
)

// Infix is a recursive-descent parser for the grammar
//
//	Expression → Term (('+'|'-') Term)*
//	Term       → Factor (('*'|'/'|'%') Factor)*
//	Factor     → ('+'|'-'|'sqr'|'abs') Factor | Number | '(' Expression ')'
//
// All three procedures advance one shared cursor, so after any of them
// returns, Pos reports exactly where it stopped.
type Infix struct {
	cursor
}

func NewInfix(tokens []token.Token, opts ...Option) *Infix {
	return &Infix{cursor: newCursor(tokens, opts)}
}

// ParseInfix parses the whole token sequence as one infix expression.
func ParseInfix(tokens []token.Token, opts ...Option) (expr.Node, error) {
	p := NewInfix(tokens, opts...)
	node, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return node, nil
}

// Pos is the index of the next unread token.
func (p *Infix) Pos() int {
	return p.pos
}

// ParseExpression folds terms joined by + and - to the left.
func (p *Infix) ParseExpression() (expr.Node, error) {
	if p.done() {
		return nil, tooFewArguments(p.peek())
	}

	left, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		var op expr.BinaryOp
		switch tok.Type {
		case token.PLUS:
			op = expr.Add
		case token.MINUS:
			op = expr.Subtract
		case token.UNKNOWN:
			return nil, unknownSymbol(tok)
		default:
			return left, nil
		}
		p.next()

		right, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		left = expr.NewBinary(op, left, right)
	}
}

// ParseTerm folds factors joined by *, / and % to the left.
func (p *Infix) ParseTerm() (expr.Node, error) {
	if p.done() {
		return nil, tooFewArguments(p.peek())
	}

	left, err := p.ParseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		var op expr.BinaryOp
		switch tok.Type {
		case token.MUL:
			op = expr.Multiply
		case token.DIV:
			op = expr.Divide
		case token.MOD:
			op = expr.Modulo
		case token.UNKNOWN:
			return nil, unknownSymbol(tok)
		default:
			return left, nil
		}
		p.next()

		right, err := p.ParseFactor()
		if err != nil {
			return nil, err
		}
		left = expr.NewBinary(op, left, right)
	}
}

// ParseFactor reads a number, a parenthesized expression or a unary chain.
func (p *Infix) ParseFactor() (expr.Node, error) {
	if p.done() {
		return nil, tooFewArguments(p.peek())
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.next()
	switch tok.Type {
	case token.NUMBER:
		return expr.NewConstant(tok.Num), nil
	case token.UNKNOWN:
		return nil, unknownSymbol(tok)
	case token.RPAREN:
		return nil, apperr.NewSyntax(errNoMatchingOpen, tok.Pos)
	case token.LPAREN:
		sub, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Type != token.RPAREN {
			return nil, apperr.NewSyntax(errNoMatchingClose, tok.Pos)
		}
		return sub, nil
	case token.PLUS, token.MINUS, token.SQR, token.ABS:
		operand, err := p.ParseFactor()
		if err != nil {
			return nil, err
		}
		return p.unary(tok.Type, operand), nil
	default:
		return nil, apperr.NewSyntax(errInvalidToken, tok.Pos)
	}
}

func (p *Infix) unary(typ token.Type, operand expr.Node) expr.Node {
	switch typ {
	case token.PLUS:
		return expr.NewUnary(expr.Identity, operand)
	case token.MINUS:
		return expr.NewUnary(expr.Negate, operand)
	case token.SQR:
		if p.cfg.strictKeywords {
			return expr.NewUnary(expr.Square, operand)
		}
	case token.ABS:
		if p.cfg.strictKeywords {
			return expr.NewUnary(expr.Abs, operand)
		}
	}
	// sqr and abs pass their operand through unless strict keywords are on.
	return operand
}
