package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/pagination"
	"github.com/google/uuid"
)

type InMemStore struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]history.Evaluation
	order       []uuid.UUID
}

func NewInMemStore() *InMemStore {
	return &InMemStore{
		storage: make(map[uuid.UUID]history.Evaluation),
	}
}

func (s *InMemStore) Save(ctx context.Context, e history.Evaluation) (uuid.UUID, error) {
	e.Prepare()

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, exists := s.storage[e.ID]; !exists {
		s.order = append(s.order, e.ID)
	}
	s.storage[e.ID] = e

	slog.Debug("Saved evaluation to in-memory storage", "id", e.ID, "notation", e.Notation)
	return e.ID, nil
}

func (s *InMemStore) Get(ctx context.Context, id uuid.UUID) (*history.Evaluation, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	e, ok := s.storage[id]
	if !ok {
		return nil, apperr.NewNotFound(history.Resource, id.String())
	}
	return &e, nil
}

// List pages over insertion order, newest first.
func (s *InMemStore) List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[history.Evaluation], error) {
	_ = req.Validate()

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.order)
	items := make([]history.Evaluation, 0, min(req.Size, total))
	if offset := req.Offset(); offset >= 0 && offset < total {
		for i := total - 1 - offset; i >= 0 && len(items) < req.Size; i-- {
			items = append(items, s.storage[s.order[i]])
		}
	}

	return pagination.NewOffsetResult(items, int64(total), req.Page, req.Size), nil
}

func (s *InMemStore) Len() int {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return len(s.order)
}
