package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/movie-hunter/internal/storage"
	"github.com/DjordjeVuckovic/movie-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/movie-hunter/pkg/config/env"
	"github.com/DjordjeVuckovic/movie-hunter/pkg/utils"
)

const defaultSeedPath = "testdata/movies.json"

type StorageConfig struct {
	storage.Type
	Es       *es.ClientConfig
	SeedPath string
}

func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Error("STORAGE_TYPE environment variable is not set")
		return nil, fmt.Errorf("STORAGE_TYPE environment variable is not set")
	}
	if storageType != storage.ES && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.ES, storage.InMem})
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.ES:
		esCfg := &es.ClientConfig{
			Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(esCfg.Addresses) == 0 || esCfg.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
		ensure, err := env.Bool("ES_ENSURE_INDEX", false)
		if err != nil {
			return nil, err
		}
		esCfg.EnsureIndex = ensure
		cfg.Es = esCfg

	case storage.InMem:
		cfg.SeedPath = os.Getenv("INMEM_SEED_PATH")
		if cfg.SeedPath == "" {
			slog.Info("INMEM_SEED_PATH is not set, using default", "path", defaultSeedPath)
			cfg.SeedPath = defaultSeedPath
		}
	}

	return cfg, nil
}
