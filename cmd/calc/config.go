package main

import (
	"flag"
	"io"
)

type cliConfig struct {
	Notation string
	Strict   bool
	Tree     bool
	MaxDepth int
	Args     []string
}

func parseFlags(args []string, output io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Notation, "notation", "infix", "Expression notation: infix or polish")
	fs.BoolVar(&cfg.Strict, "strict", false, "Apply sqr and abs in infix expressions")
	fs.BoolVar(&cfg.Tree, "tree", false, "Also print the parsed tree in infix and Polish form")
	fs.IntVar(&cfg.MaxDepth, "max-depth", 0, "Maximum nesting depth (0 keeps the default)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Args = fs.Args()
	return cfg, nil
}
