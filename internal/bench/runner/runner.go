package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/engine"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/suite"
)

type Runner struct {
	config Config
	exec   engine.Executor
}

func New(cfg Config, exec engine.Executor) *Runner {
	if exec == nil {
		exec = engine.NewLocalExecutor(nil)
	}
	return &Runner{config: cfg.normalized(), exec: exec}
}

// Run executes every case of the suite in file order. It stops early only
// when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, loaded *suite.LoadedSuite) (*SuiteResult, error) {
	sr := &SuiteResult{
		SuiteName:    loaded.Suite.Name,
		SuiteVersion: loaded.Suite.Version,
		Executor:     r.exec.Name(),
		Config:       r.config,
		Results:      make([]CaseResult, 0, len(loaded.Cases)),
	}

	for _, c := range loaded.Cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run suite %q: %w", loaded.Suite.Name, err)
		}

		res := r.RunCase(ctx, c)
		if !res.Passed {
			slog.Warn("case failed", "case", c.ID, "notation", c.Notation, "executor", sr.Executor, "reason", res.Mismatch())
		}
		sr.Results = append(sr.Results, res)
	}

	return sr, nil
}

func (r *Runner) RunCase(ctx context.Context, c suite.ResolvedCase) CaseResult {
	res := CaseResult{
		CaseID:      c.ID,
		Notation:    c.Notation,
		Expression:  c.Expression,
		Expect:      c.Expect,
		ExpectError: c.ExpectError,
	}

	last, latencies, err := r.executeWithRetries(ctx, c)
	res.Latency = ComputeLatencyStats(latencies)
	if last == nil {
		res.ErrorKind = apperr.KindInternal
		res.Error = err.Error()
		return res
	}

	res.Value = last.Value
	res.ErrorKind = last.ErrorKind
	res.Error = last.Error
	res.Passed = matches(c, res)
	return res
}

// executeWithRetries returns the last successful execution, or nil with the
// last target error when every measured run failed.
func (r *Runner) executeWithRetries(ctx context.Context, c suite.ResolvedCase) (*engine.Execution, []time.Duration, error) {
	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = r.exec.Execute(ctx, c.Notation, c.Expression)
	}

	latencies := make([]time.Duration, 0, r.config.Runs)
	var last *engine.Execution
	var lastErr error

	for i := 0; i < r.config.Runs; i++ {
		ex, err := r.exec.Execute(ctx, c.Notation, c.Expression)
		if err != nil {
			lastErr = err
			continue
		}
		last = ex
		latencies = append(latencies, ex.Latency)
	}

	return last, latencies, lastErr
}

func matches(c suite.ResolvedCase, res CaseResult) bool {
	if c.Expect != nil {
		return res.ErrorKind == apperr.KindNone && res.Value == *c.Expect
	}
	return res.ErrorKind == c.ExpectError
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
