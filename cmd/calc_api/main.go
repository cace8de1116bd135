// Package main Calc Hunter API
// @title Calc Hunter API
// @version 1.0
// @description Integer arithmetic expression evaluator for infix and Polish notation
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/calc-hunter/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/calc-hunter/internal/api/server"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/factory"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/calc-hunter/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	env.SetupLogging()

	appCfg, err := LoadAppConfig()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	s := apiserver.New(sCfg, pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	backend, err := factory.NewBackend(s.Context(), appCfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create history storage", "type", appCfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	s.SetHealthChecker(backend.HealthChecker)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Calc Hunter API is running")
	})

	calculator := calc.New(appCfg.CalcConfig.Options()...)
	slog.Info("Calculator configured",
		"strict_keywords", calculator.StrictKeywords(),
		"max_depth", calculator.MaxDepth(),
		"storage", appCfg.StorageConfig.Type)

	router.NewEvalRouter(s.Echo, calculator, backend.Store).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	backend.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
