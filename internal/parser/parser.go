// Package parser turns token sequences into expression trees.
package parser

import (
	"github.com/DjordjeVuckovic/calc-hunter/internal/expr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/token"
)

// ParseFunc parses a complete token sequence; ParseInfix and ParsePolish satisfy it.
type ParseFunc func(tokens []token.Token, opts ...Option) (expr.Node, error)

var (
	_ ParseFunc = ParseInfix
	_ ParseFunc = ParsePolish
)
