package parser

// DefaultMaxDepth bounds recursion so deeply nested input fails with an
// error instead of growing the goroutine stack without limit.
const DefaultMaxDepth = 10_000

type config struct {
	strictKeywords bool
	maxDepth       int
}

type Option func(*config)

// WithStrictKeywords makes the infix grammar apply sqr and abs instead of
// passing their operand through unchanged. The Polish grammar always applies them.
func WithStrictKeywords() Option {
	return func(c *config) {
		c.strictKeywords = true
	}
}

// WithMaxDepth overrides DefaultMaxDepth. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
