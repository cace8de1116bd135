package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantType history.Type
		wantErr  bool
	}{
		{name: "default in memory", env: map[string]string{"STORAGE_TYPE": ""}, wantType: history.InMem},
		{name: "explicit in memory", env: map[string]string{"STORAGE_TYPE": "in_mem"}, wantType: history.InMem},
		{name: "unknown type", env: map[string]string{"STORAGE_TYPE": "mongo"}, wantErr: true},
		{
			name:     "postgres",
			env:      map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": "postgres://u:p@localhost:5432/calc"},
			wantType: history.PG,
		},
		{name: "postgres without connection", env: map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": ""}, wantErr: true},
		{
			name:     "elasticsearch",
			env:      map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": "http://a:9200, http://b:9200", "ES_INDEX_NAME": ""},
			wantType: history.ES,
		},
		{name: "elasticsearch without address", env: map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cfg.Type)

			switch tt.wantType {
			case history.PG:
				require.NotNil(t, cfg.Pg)
				assert.Nil(t, cfg.Es)
			case history.ES:
				require.NotNil(t, cfg.Es)
				assert.Equal(t, "evaluations", cfg.Es.IndexName)
				assert.Len(t, cfg.Es.Addresses, 2)
			}
		})
	}
}

func TestLoadEnv_UnsupportedType(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "mongo")

	_, err := LoadEnv()

	var ute *history.UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, history.Type("mongo"), ute.Type)
}

func TestNewBackend_InMem(t *testing.T) {
	b, err := NewBackend(context.Background(), &StorageConfig{Type: history.InMem})
	require.NoError(t, err)
	defer b.Close()

	assert.IsType(t, &in_mem.InMemStore{}, b.Store)
	assert.True(t, b.HealthChecker.Healthy(context.Background()))
}

func TestNewBackend_Unsupported(t *testing.T) {
	_, err := NewBackend(context.Background(), &StorageConfig{Type: "mongo"})
	assert.ErrorContains(t, err, "unsupported storer type: mongo")

	var ute *history.UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, history.Type("mongo"), ute.Type)
}
