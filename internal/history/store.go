package history

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/calc-hunter/pkg/pagination"
	"github.com/google/uuid"
)

type Storer interface {
	Save(ctx context.Context, e Evaluation) (uuid.UUID, error)
}

type Reader interface {
	// Get returns *apperr.NotFoundError for unknown ids.
	Get(ctx context.Context, id uuid.UUID) (*Evaluation, error)
	// List returns evaluations newest first.
	List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[Evaluation], error)
}

type Store interface {
	Storer
	Reader
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

var Types = []Type{InMem, PG, ES}

// UnsupportedTypeError reports a storage type with no backend.
type UnsupportedTypeError struct {
	Type Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported storer type: %s", e.Type)
}

const Resource = "evaluation"
