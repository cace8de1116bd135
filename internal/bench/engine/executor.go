package engine

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
)

// Executor evaluates one expression against some target. The returned error
// is reserved for failures of the target itself; expression errors are
// reported through Execution.ErrorKind.
type Executor interface {
	Execute(ctx context.Context, notation calc.Notation, expression string) (*Execution, error)
	Name() string
	Close() error
}

type Execution struct {
	Value     int64
	ErrorKind apperr.Kind
	Error     string
	Latency   time.Duration
}

func (e *Execution) Failed() bool {
	return e.ErrorKind != apperr.KindNone
}
