package parser

import (
	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/token"
)

const (
	errTooFewArguments = "too few arguments"
	errNoMatchingOpen  = "no matching ("
	errNoMatchingClose = "no matching )"
	errExtraTokens     = "extra tokens"
	errInvalidToken    = "invalid token"
	errTooDeep         = "expression nested too deeply"
)

// cursor is the read position shared by every recursive parse call.
type cursor struct {
	tokens []token.Token
	pos    int
	depth  int
	cfg    config
}

func newCursor(tokens []token.Token, opts []Option) cursor {
	return cursor{tokens: tokens, cfg: newConfig(opts)}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.tokens)
}

// peek returns the current token, or an EOF token past the end.
func (c *cursor) peek() token.Token {
	if c.done() {
		return token.Token{Type: token.EOF, Pos: c.endPos()}
	}
	return c.tokens[c.pos]
}

func (c *cursor) next() token.Token {
	tok := c.peek()
	if !c.done() {
		c.pos++
	}
	return tok
}

func (c *cursor) endPos() int {
	if len(c.tokens) == 0 {
		return 0
	}
	last := c.tokens[len(c.tokens)-1]
	return last.Pos + len([]rune(last.Value))
}

// enter must be paired with a deferred leave.
func (c *cursor) enter() error {
	c.depth++
	if c.depth > c.cfg.maxDepth {
		return apperr.NewSyntax(errTooDeep, c.peek().Pos)
	}
	return nil
}

func (c *cursor) leave() {
	c.depth--
}

// expectEnd fails when tokens remain after a complete expression.
func (c *cursor) expectEnd() error {
	if !c.done() {
		return apperr.NewSyntax(errExtraTokens, c.peek().Pos)
	}
	return nil
}

func tooFewArguments(tok token.Token) error {
	return apperr.NewSyntax(errTooFewArguments, tok.Pos)
}

func unknownSymbol(tok token.Token) error {
	return apperr.NewSymbol(tok.Value, tok.Pos)
}
