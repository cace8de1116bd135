package calc

import "github.com/DjordjeVuckovic/calc-hunter/internal/parser"

type Option func(*Calculator)

// WithStrictKeywords applies sqr and abs in infix input instead of ignoring them.
func WithStrictKeywords() Option {
	return func(c *Calculator) {
		c.strict = true
	}
}

func WithMaxDepth(depth int) Option {
	return func(c *Calculator) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

func (c *Calculator) parserOptions() []parser.Option {
	opts := []parser.Option{parser.WithMaxDepth(c.maxDepth)}
	if c.strict {
		opts = append(opts, parser.WithStrictKeywords())
	}
	return opts
}
