package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/movie-hunter/internal/ranking"
	"github.com/DjordjeVuckovic/movie-hunter/internal/storage/factory"
	"github.com/DjordjeVuckovic/movie-hunter/pkg/config/env"
)

const defaultFacetCacheTTL = 5 * time.Minute

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type MovieSearchConfig struct {
	StorageConfig factory.StorageConfig
	Profile       *ranking.Profile
	FacetCacheTTL time.Duration
	LogLevel      slog.Level
}

func (as *AppConfig) Load() (*MovieSearchConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/movie_search/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	profile, err := loadProfile(os.Getenv("RANKING_PROFILE_PATH"))
	if err != nil {
		return nil, err
	}

	ttl, err := env.Duration("FACET_CACHE_TTL", defaultFacetCacheTTL)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
		}
	}

	return &MovieSearchConfig{
		StorageConfig: *storageCfg,
		Profile:       profile,
		FacetCacheTTL: ttl,
		LogLevel:      level,
	}, nil
}

func loadProfile(path string) (*ranking.Profile, error) {
	if path == "" {
		slog.Info("RANKING_PROFILE_PATH is not set, using the built-in profile")
		return ranking.Default(), nil
	}

	profile, err := ranking.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load ranking profile: %w", err)
	}
	slog.Info("Loaded ranking profile", "path", path, "version", profile.Version)
	return profile, nil
}
