package calc

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	StrictKeywords bool
	MaxDepth       int
}

// LoadEnv reads CALC_STRICT_KEYWORDS and CALC_MAX_DEPTH. Both are optional.
func LoadEnv() (*Config, error) {
	cfg := &Config{
		StrictKeywords: os.Getenv("CALC_STRICT_KEYWORDS") == "true",
	}

	if raw := os.Getenv("CALC_MAX_DEPTH"); raw != "" {
		depth, err := strconv.Atoi(raw)
		if err != nil || depth < 1 {
			slog.Error("Invalid CALC_MAX_DEPTH environment variable value", "value", raw)
			return nil, fmt.Errorf("invalid CALC_MAX_DEPTH environment variable value: %s, expected a positive integer", raw)
		}
		cfg.MaxDepth = depth
	}

	return cfg, nil
}

func (c *Config) Options() []Option {
	var opts []Option
	if c.StrictKeywords {
		opts = append(opts, WithStrictKeywords())
	}
	if c.MaxDepth > 0 {
		opts = append(opts, WithMaxDepth(c.MaxDepth))
	}
	return opts
}
