package factory

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/es"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/pg"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/utils"
)

type StorageConfig struct {
	history.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads STORAGE_TYPE, defaulting to in-memory storage.
func LoadEnv() (*StorageConfig, error) {
	storageType := history.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = history.InMem
	}
	if !slices.Contains(history.Types, storageType) {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf("invalid STORAGE_TYPE: %w, expected one of %v",
			&history.UnsupportedTypeError{Type: storageType},
			history.Types)
	}

	var esCfg *es.ClientConfig
	if storageType == history.ES {
		esCfg = &es.ClientConfig{
			Addresses: utils.SplitTrimmed(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if esCfg.IndexName == "" {
			esCfg.IndexName = "evaluations"
		}
		if len(esCfg.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	}

	var pgCfg *pg.PoolConfig
	if storageType == history.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return &StorageConfig{
		Type: storageType,
		Pg:   pgCfg,
		Es:   esCfg,
	}, nil
}
