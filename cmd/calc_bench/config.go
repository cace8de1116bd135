package main

import (
	"flag"
	"io"
)

type cliConfig struct {
	SuitePath string
	Target    string
	Warmup    int
	Runs      int
	Output    string
	Strict    bool
	MaxDepth  int
}

func parseFlags(args []string, output io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("calc_bench", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.SuitePath, "suite", "configs/suites/core_v1.yaml", "Path to expression suite YAML")
	fs.StringVar(&cfg.Target, "target", "local", "Where to evaluate: local or a calc_api base URL")
	fs.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs per case")
	fs.IntVar(&cfg.Runs, "runs", 1, "Number of measured runs per case")
	fs.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")
	fs.BoolVar(&cfg.Strict, "strict", false, "Apply sqr and abs in infix expressions (local target only)")
	fs.IntVar(&cfg.MaxDepth, "max-depth", 0, "Maximum nesting depth (0 keeps the default)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}
