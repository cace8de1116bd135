package parser

import (
	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/expr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/token"
)

var polishBinary = map[token.Type]expr.BinaryOp{
	token.PLUS:  expr.Add,
	token.MINUS: expr.Subtract,
	token.MUL:   expr.Multiply,
	token.DIV:   expr.Divide,
	token.MOD:   expr.Modulo,
	token.MIN:   expr.Min,
	token.MAX:   expr.Max,
}

// Polish parses prefix notation. Every operator has a fixed arity except
// + and -, which are unary when their first operand is followed by the end
// of input or a closing parenthesis.
type Polish struct {
	cursor
}

func NewPolish(tokens []token.Token, opts ...Option) *Polish {
	return &Polish{cursor: newCursor(tokens, opts)}
}

// ParsePolish parses the whole token sequence as one prefix expression.
func ParsePolish(tokens []token.Token, opts ...Option) (expr.Node, error) {
	p := NewPolish(tokens, opts...)
	node, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Polish) Pos() int {
	return p.pos
}

// Parse consumes exactly one sub-expression.
func (p *Polish) Parse() (expr.Node, error) {
	if p.done() {
		return nil, tooFewArguments(p.peek())
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.next()
	switch tok.Type {
	case token.UNKNOWN:
		return nil, unknownSymbol(tok)
	case token.RPAREN:
		return nil, apperr.NewSyntax(errNoMatchingOpen, tok.Pos)
	case token.LPAREN:
		sub, err := p.Parse()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Type != token.RPAREN {
			return nil, apperr.NewSyntax(errNoMatchingClose, tok.Pos)
		}
		return sub, nil
	case token.NUMBER:
		return expr.NewConstant(tok.Num), nil
	case token.SQR, token.ABS:
		operand, err := p.Parse()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.SQR {
			return expr.NewUnary(expr.Square, operand), nil
		}
		return expr.NewUnary(expr.Abs, operand), nil
	}

	op, ok := polishBinary[tok.Type]
	if !ok {
		return nil, apperr.NewSyntax(errInvalidToken, tok.Pos)
	}

	first, err := p.Parse()
	if err != nil {
		return nil, err
	}

	if tok.Type == token.PLUS || tok.Type == token.MINUS {
		if p.done() || p.peek().Is(token.RPAREN) {
			if tok.Type == token.PLUS {
				return expr.NewUnary(expr.Identity, first), nil
			}
			return expr.NewUnary(expr.Negate, first), nil
		}
	}

	second, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return expr.NewBinary(op, first, second), nil
}
