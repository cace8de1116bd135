package engine

import (
	"fmt"
	"net/url"

	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
)

// NewFromTarget returns a LocalExecutor for "" or "local" and an
// APIExecutor for an http(s) base URL. calcOpts only apply locally.
func NewFromTarget(target string, calcOpts ...calc.Option) (Executor, error) {
	if target == "" || target == "local" {
		return NewLocalExecutor(calc.New(calcOpts...)), nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parse target %q: %w", target, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("unsupported target %q, expected local or an http(s) URL", target)
	}
	return NewAPIExecutor(target), nil
}
