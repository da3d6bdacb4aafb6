// Package main Movie Hunter API
// @title Movie Hunter API
// @version 1.0
// @description Faceted full-text movie search with exact-match boosting and highlighted fragments
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/movie-hunter/docs"
	"github.com/DjordjeVuckovic/movie-hunter/internal/router"
	"github.com/DjordjeVuckovic/movie-hunter/internal/search"
	"github.com/DjordjeVuckovic/movie-hunter/internal/server"
	"github.com/DjordjeVuckovic/movie-hunter/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

const startupTimeout = 30 * time.Second

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	backend, err := factory.NewBackend(ctx, &cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create search backend", "error", err, "storage", cfg.StorageConfig.Type)
		os.Exit(1)
	}

	s := server.New(sCfg, backend).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Movie Hunter API is running")
	})

	compiler := search.NewCompiler(cfg.Profile)
	catalog := search.NewCachedCatalog(
		search.NewCatalogLoader(backend, cfg.Profile.Facets),
		cfg.FacetCacheTTL,
	)

	searchrouter := router.NewSearchRouter(s.Echo, search.NewSearcher(compiler, backend), catalog)
	searchrouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if closeErr := backend.Close(); closeErr != nil {
		slog.Error("Failed to close search backend", "error", closeErr)
	}
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
