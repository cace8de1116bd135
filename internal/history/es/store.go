package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

// maxResultWindow is the index.max_result_window default; from+size past it is rejected by the cluster.
const maxResultWindow = 10_000

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	store := &Store{
		client:    client,
		indexName: config.IndexName,
	}

	if err := store.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return store, nil
}

// Save indexes with refresh=wait_for so the evaluation is listed right away.
func (s *Store) Save(ctx context.Context, e history.Evaluation) (uuid.UUID, error) {
	e.Prepare()
	doc := toDocument(e)

	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index evaluation: %w", err)
	}

	slog.Debug("Evaluation indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return e.ID, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*history.Evaluation, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == 404 {
			return nil, apperr.NewNotFound(history.Resource, id.String())
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	if !res.Found {
		return nil, apperr.NewNotFound(history.Resource, id.String())
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation: %w", err)
	}
	e, err := doc.toEvaluation()
	if err != nil {
		return nil, fmt.Errorf("failed to map evaluation %s: %w", res.Id_, err)
	}
	return &e, nil
}

func (s *Store) List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[history.Evaluation], error) {
	_ = req.Validate()

	if req.Offset()+req.Size > maxResultWindow {
		return s.beyondWindow(ctx, req)
	}

	desc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(req.Offset()).
		Size(req.Size).
		Sort(
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"created_at": {Order: &desc}}},
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"id": {Order: &desc}}},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch list query failed", "error", err, "page", req.Page, "size", req.Size)
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	items := make([]history.Evaluation, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal evaluation: %w", err)
		}
		e, err := doc.toEvaluation()
		if err != nil {
			return nil, fmt.Errorf("failed to map evaluation: %w", err)
		}
		items = append(items, e)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	return pagination.NewOffsetResult(items, total, req.Page, req.Size), nil
}

// beyondWindow answers pages past maxResultWindow with no items and the real total.
func (s *Store) beyondWindow(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[history.Evaluation], error) {
	res, err := s.client.Count().Index(s.indexName).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count evaluations: %w", err)
	}
	slog.Debug("Page beyond Elasticsearch result window", "page", req.Page, "size", req.Size, "total", res.Count)
	return pagination.NewOffsetResult[history.Evaluation](nil, res.Count, req.Page, req.Size), nil
}

func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewKeywordProperty(),
			"notation":    types.NewKeywordProperty(),
			"expression":  types.NewKeywordProperty(),
			"result":      types.NewLongNumberProperty(),
			"error_kind":  types.NewKeywordProperty(),
			"error":       types.NewTextProperty(),
			"duration_ns": types.NewLongNumberProperty(),
			"created_at":  types.NewDateProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created", "index", s.indexName)
	return nil
}

// Healthy pings the cluster; it satisfies the server health checker.
func (s *Store) Healthy(ctx context.Context) bool {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}
