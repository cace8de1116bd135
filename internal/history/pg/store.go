package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `id, notation, expression, result, error_kind, error, duration_ns, created_at`

type Store struct {
	db *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) (*Store, error) {
	if pool == nil {
		return nil, errors.New("connection pool is nil")
	}
	return &Store{db: pool.conn}, nil
}

func (s *Store) Save(ctx context.Context, e history.Evaluation) (uuid.UUID, error) {
	e.Prepare()

	cmd := `
		INSERT INTO evaluations (id, notation, expression, result, error_kind, error, duration_ns, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
		RETURNING id;
	`
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		e.ID,
		e.Notation,
		e.Expression,
		e.Result,
		string(e.ErrorKind),
		e.Error,
		e.Duration.Nanoseconds(),
		e.CreatedAt,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// already stored under this id
		return e.ID, nil
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*history.Evaluation, error) {
	row := s.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM evaluations WHERE id = $1`, id)

	e, err := scanEvaluation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NewNotFound(history.Resource, id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return e, nil
}

func (s *Store) List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[history.Evaluation], error) {
	_ = req.Validate()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM evaluations`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count evaluations: %w", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+selectColumns+`
		FROM evaluations
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, req.Size, req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	items := make([]history.Evaluation, 0, req.Size)
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate evaluations: %w", err)
	}

	slog.Debug("Listed evaluations from pg", "page", req.Page, "size", req.Size, "returned", len(items), "total", total)
	return pagination.NewOffsetResult(items, total, req.Page, req.Size), nil
}

func scanEvaluation(row pgx.Row) (*history.Evaluation, error) {
	var (
		e          history.Evaluation
		errorKind  string
		durationNs int64
	)
	if err := row.Scan(
		&e.ID,
		&e.Notation,
		&e.Expression,
		&e.Result,
		&errorKind,
		&e.Error,
		&durationNs,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.ErrorKind = apperr.Kind(errorKind)
	e.Duration = time.Duration(durationNs)
	e.CreatedAt = e.CreatedAt.UTC()
	return &e, nil
}
