package main

import (
	"fmt"

	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/factory"
)

type AppConfig struct {
	StorageConfig *factory.StorageConfig
	CalcConfig    *calc.Config
}

func LoadAppConfig() (*AppConfig, error) {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	calcCfg, err := calc.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load calculator config: %w", err)
	}

	return &AppConfig{
		StorageConfig: storageCfg,
		CalcConfig:    calcCfg,
	}, nil
}
