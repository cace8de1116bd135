// Package history records every evaluation served by the API.
package history

import (
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/google/uuid"
)

// Evaluation is a stored evaluation. Result is nil when the evaluation failed.
type Evaluation struct {
	ID         uuid.UUID     `json:"id"`
	Notation   string        `json:"notation"`
	Expression string        `json:"expression"`
	Result     *int64        `json:"result,omitempty"`
	ErrorKind  apperr.Kind   `json:"error_kind,omitempty"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
	CreatedAt  time.Time     `json:"created_at"`
}

func FromOutcome(o calc.Outcome) Evaluation {
	e := Evaluation{
		ID:         uuid.New(),
		Notation:   o.Notation.String(),
		Expression: o.Expression,
		Duration:   o.Duration,
		CreatedAt:  time.Now().UTC(),
	}
	if o.Err != nil {
		e.ErrorKind = apperr.KindOf(o.Err)
		e.Error = o.Err.Error()
		return e
	}
	v := o.Value
	e.Result = &v
	return e
}

func (e Evaluation) Failed() bool {
	return e.Result == nil
}

// Prepare fills the ID and creation time when the caller left them empty.
func (e *Evaluation) Prepare() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
}
