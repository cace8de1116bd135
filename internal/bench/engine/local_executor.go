package engine

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
)

// LocalExecutor runs expressions in-process.
type LocalExecutor struct {
	calculator *calc.Calculator
}

func NewLocalExecutor(calculator *calc.Calculator) *LocalExecutor {
	if calculator == nil {
		calculator = calc.New()
	}
	return &LocalExecutor{calculator: calculator}
}

func (e *LocalExecutor) Execute(_ context.Context, notation calc.Notation, expression string) (*Execution, error) {
	out := e.calculator.Run(notation, expression)

	ex := &Execution{Value: out.Value, Latency: out.Duration}
	if out.Err != nil {
		ex.ErrorKind = apperr.KindOf(out.Err)
		ex.Error = out.Err.Error()
	}
	return ex, nil
}

func (e *LocalExecutor) Name() string {
	return fmt.Sprintf("local(strict=%t,max_depth=%d)", e.calculator.StrictKeywords(), e.calculator.MaxDepth())
}

func (e *LocalExecutor) Close() error { return nil }
