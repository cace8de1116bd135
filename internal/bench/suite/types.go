package suite

import (
	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
)

type TestSuite struct {
	Name        string                `yaml:"name" schema:"minLength=1"`
	Description string                `yaml:"description"`
	Version     string                `yaml:"version"`
	Notation    string                `yaml:"notation,omitempty" schema:"enum=infix|polish|prefix"`
	Templates   []*ExpressionTemplate `yaml:"templates,omitempty"`
	Cases       []Case                `yaml:"cases" schema:"required,minItems=1"`
}

// Case is one expression with exactly one of Expect or ExpectError set.
// Expression and Template are mutually exclusive.
type Case struct {
	ID          string         `yaml:"id" schema:"required,minLength=1"`
	Description string         `yaml:"description,omitempty"`
	Notation    string         `yaml:"notation,omitempty" schema:"enum=infix|polish|prefix"`
	Expression  string         `yaml:"expression,omitempty"`
	Template    string         `yaml:"template,omitempty"`
	Params      TemplateParams `yaml:"params,omitempty"`
	Expect      *int64         `yaml:"expect,omitempty"`
	ExpectError string         `yaml:"expect_error,omitempty" schema:"enum=unknown_symbol|malformed_expression|arithmetic"`
}

// ResolvedCase carries the concrete input and expectation a runner needs.
type ResolvedCase struct {
	ID          string
	Description string
	Notation    calc.Notation
	Expression  string
	Expect      *int64
	ExpectError apperr.Kind
}

func (c *Case) WantsError() bool {
	return c.ExpectError != ""
}
