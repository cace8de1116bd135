// Command calc evaluates integer expressions given as arguments or read
// line by line from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/internal/expr"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/config/env"
)

func main() {
	env.SetupLogging()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	notation, err := calc.ParseNotation(cfg.Notation)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	var opts []calc.Option
	if cfg.Strict {
		opts = append(opts, calc.WithStrictKeywords())
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, calc.WithMaxDepth(cfg.MaxDepth))
	}
	c := calc.New(opts...)

	failed := false
	eval := func(text string) {
		out := c.Run(notation, text)
		if out.Err != nil {
			failed = true
			fmt.Fprintf(stderr, "%s: %v\n", apperr.KindOf(out.Err), out.Err)
			return
		}
		fmt.Fprintln(stdout, out.Value)
		if cfg.Tree {
			fmt.Fprintf(stdout, "  infix:  %s\n  polish: %s\n", expr.Infix(out.Tree), expr.Polish(out.Tree))
		}
	}

	if len(cfg.Args) > 0 {
		eval(strings.Join(cfg.Args, " "))
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			eval(line)
		}
		if err := scanner.Err(); err != nil {
			slog.Error("Failed to read stdin", "error", err)
			return 1
		}
	}

	if failed {
		return 1
	}
	return 0
}
