package storage

import (
	"context"

	"github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
)

// Executor runs compiled requests against a search engine.
// Connection pooling, retries and timeouts belong to the implementation.
type Executor interface {
	// Execute runs a compiled search and returns hits with highlighted fragments and the total count.
	Execute(ctx context.Context, q *query.Structured) (*query.Result, error)
	// ExecuteAggregation returns the distinct values of field with their document counts,
	// at most size buckets, in the engine's bucket order.
	ExecuteAggregation(ctx context.Context, field string, size int) ([]query.Bucket, error)
}

// Backend is an Executor owned by the service process.
type Backend interface {
	Executor
	Healthy(ctx context.Context) bool
	Close() error
}

type Type string

const (
	ES    Type = "es"
	InMem Type = "in_mem"
)

type StorageError string

const (
	ErrUnsupportedStorage StorageError = "unsupported storage type: %s"
)

func (e StorageError) Error() string {
	return string(e)
}
