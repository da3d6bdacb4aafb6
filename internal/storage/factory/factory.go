package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/movie-hunter/internal/storage"
	"github.com/DjordjeVuckovic/movie-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/movie-hunter/internal/storage/inmem"
)

// NewBackend creates the search backend selected by cfg.Type.
func NewBackend(ctx context.Context, cfg *StorageConfig) (storage.Backend, error) {
	switch cfg.Type {
	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		exec, err := es.NewExecutor(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return exec, nil

	case storage.InMem:
		exec, err := inmem.NewExecutorFromFile(cfg.SeedPath)
		if err != nil {
			return nil, err
		}
		return exec, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorage), cfg.Type)
	}
}
