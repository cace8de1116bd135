// Command calc_bench runs an expression regression suite and reports
// pass/fail and latency per case.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/engine"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/report"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/runner"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/suite"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/config/env"
)

func main() {
	env.SetupLogging()
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	loaded, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return 2
	}

	var opts []calc.Option
	if cfg.Strict {
		opts = append(opts, calc.WithStrictKeywords())
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, calc.WithMaxDepth(cfg.MaxDepth))
	}

	exec, err := engine.NewFromTarget(cfg.Target, opts...)
	if err != nil {
		slog.Error("Invalid target", "target", cfg.Target, "error", err)
		return 2
	}
	defer exec.Close()

	r := runner.New(runner.Config{WarmupRuns: cfg.Warmup, Runs: cfg.Runs}, exec)
	result, err := r.Run(ctx, loaded)
	if err != nil {
		slog.Error("Suite run failed", "error", err)
		return 1
	}

	rpt := report.Generate(result)
	if err := report.WriteTable(rpt, stdout); err != nil {
		slog.Error("Failed to write table", "error", err)
		return 1
	}

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			return 1
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if !result.AllPassed() {
		slog.Warn("Suite has failing cases", "failed", len(result.Failed()), "total", len(result.Results))
		return 1
	}
	return 0
}
