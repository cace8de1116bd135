package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/es"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/in_mem"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/pg"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/server"
)

// Backend is a ready history store plus the resources that come with it.
type Backend struct {
	Store         history.Store
	HealthChecker server.HealthChecker
	close         func()
}

func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

func NewBackend(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case history.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		store, err := pg.NewStore(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{Store: store, HealthChecker: pg.NewHealthChecker(pool), close: pool.Close}, nil

	case history.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		store, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: store, HealthChecker: store}, nil

	case history.InMem:
		return &Backend{Store: in_mem.NewInMemStore(), HealthChecker: server.NewOkHealthChecker()}, nil

	default:
		return nil, &history.UnsupportedTypeError{Type: cfg.Type}
	}
}
