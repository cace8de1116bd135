// Package calc wires the tokenizer, parsers and evaluator into single-call
// evaluation pipelines.
package calc

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/expr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/parser"
	"github.com/DjordjeVuckovic/calc-hunter/internal/token"
)

// Calculator is immutable after New and safe for concurrent use.
type Calculator struct {
	tokenizer token.Tokenizer
	strict    bool
	maxDepth  int
}

func New(opts ...Option) *Calculator {
	c := &Calculator{
		tokenizer: token.NewArithTokenizer(),
		maxDepth:  parser.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) StrictKeywords() bool {
	return c.strict
}

func (c *Calculator) MaxDepth() int {
	return c.maxDepth
}

// Compile tokenizes and parses text without evaluating it.
func (c *Calculator) Compile(notation Notation, text string) (expr.Node, error) {
	var parse parser.ParseFunc
	switch notation {
	case Infix:
		parse = parser.ParseInfix
	case Polish:
		parse = parser.ParsePolish
	default:
		return nil, apperr.NewValidation(fmt.Sprintf("unsupported notation %q", notation))
	}

	tokens, err := c.tokenizer.Tokenize(text)
	if err != nil {
		slog.Debug("Tokenize failed", "notation", notation, "expression", text, "error", err)
		return nil, err
	}

	node, err := parse(tokens, c.parserOptions()...)
	if err != nil {
		slog.Debug("Parse failed", "notation", notation, "expression", text, "tokens", len(tokens), "error", err)
		return nil, err
	}
	return node, nil
}

// Evaluate returns 0 together with any error.
func (c *Calculator) Evaluate(notation Notation, text string) (int64, error) {
	node, err := c.Compile(notation, text)
	if err != nil {
		return 0, err
	}
	return expr.Evaluate(node)
}

func (c *Calculator) EvaluateInfix(text string) (int64, error) {
	return c.Evaluate(Infix, text)
}

func (c *Calculator) EvaluatePolish(text string) (int64, error) {
	return c.Evaluate(Polish, text)
}

// Outcome is one timed evaluation. Tree is nil when compilation failed.
type Outcome struct {
	Notation   Notation
	Expression string
	Tree       expr.Node
	Value      int64
	Err        error
	Duration   time.Duration
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

// Run evaluates text and records how long the whole pipeline took.
func (c *Calculator) Run(notation Notation, text string) Outcome {
	out := Outcome{Notation: notation, Expression: text}

	start := time.Now()
	out.Tree, out.Err = c.Compile(notation, text)
	if out.Err == nil {
		out.Value, out.Err = expr.Evaluate(out.Tree)
	}
	out.Duration = time.Since(start)

	if out.Err != nil {
		out.Value = 0
	}
	return out
}

var defaultCalculator = New()

func EvaluateInfix(text string) (int64, error) {
	return defaultCalculator.EvaluateInfix(text)
}

func EvaluatePolish(text string) (int64, error) {
	return defaultCalculator.EvaluatePolish(text)
}
