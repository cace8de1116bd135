//go:build integration

package es

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/calc-hunter/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	store, err := NewStore(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "evaluations_test",
	})
	require.NoError(t, err)
	return store
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.True(t, store.Healthy(ctx))
	require.NoError(t, store.EnsureIndex(ctx))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := range 3 {
		v := int64(i)
		id, err := store.Save(ctx, history.Evaluation{
			Notation:   "infix",
			Expression: fmt.Sprint(i),
			Result:     &v,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	t.Run("get", func(t *testing.T) {
		got, err := store.Get(ctx, ids[1])
		require.NoError(t, err)
		assert.Equal(t, "1", got.Expression)
		assert.Equal(t, int64(1), *got.Result)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New())
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("list newest first", func(t *testing.T) {
		res, err := store.List(ctx, pagination.OffsetRequest{Page: 1, Size: 2})
		require.NoError(t, err)

		assert.Equal(t, int64(3), res.Total)
		assert.True(t, res.HasMore)
		require.Len(t, res.Items, 2)
		assert.Equal(t, ids[2], res.Items[0].ID)
		assert.Equal(t, ids[1], res.Items[1].ID)
	})

	t.Run("page past result window", func(t *testing.T) {
		res, err := store.List(ctx, pagination.OffsetRequest{Page: 1 << 62, Size: 20})
		require.NoError(t, err)

		assert.Empty(t, res.Items)
		assert.Equal(t, int64(3), res.Total)
		assert.False(t, res.HasMore)
	})
}
