package es

import (
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/google/uuid"
)

// Document is the indexed form of history.Evaluation.
type Document struct {
	ID         string    `json:"id"`
	Notation   string    `json:"notation"`
	Expression string    `json:"expression"`
	Result     *int64    `json:"result,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationNs int64     `json:"duration_ns"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDocument(e history.Evaluation) Document {
	return Document{
		ID:         e.ID.String(),
		Notation:   e.Notation,
		Expression: e.Expression,
		Result:     e.Result,
		ErrorKind:  string(e.ErrorKind),
		Error:      e.Error,
		DurationNs: e.Duration.Nanoseconds(),
		CreatedAt:  e.CreatedAt,
	}
}

func (d Document) toEvaluation() (history.Evaluation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return history.Evaluation{}, err
	}
	return history.Evaluation{
		ID:         id,
		Notation:   d.Notation,
		Expression: d.Expression,
		Result:     d.Result,
		ErrorKind:  apperr.Kind(d.ErrorKind),
		Error:      d.Error,
		Duration:   time.Duration(d.DurationNs),
		CreatedAt:  d.CreatedAt.UTC(),
	}, nil
}
