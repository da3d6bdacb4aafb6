package search

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/movie-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/movie-hunter/internal/metrics"
	"github.com/DjordjeVuckovic/movie-hunter/internal/ranking"
	"github.com/DjordjeVuckovic/movie-hunter/internal/storage"
	"github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type CatalogProvider interface {
	Load(ctx context.Context) (*query.Catalog, error)
}

// CatalogLoader builds the selectable genre and language lists.
type CatalogLoader struct {
	executor storage.Executor
	facets   ranking.FacetFields
}

func NewCatalogLoader(executor storage.Executor, facets ranking.FacetFields) *CatalogLoader {
	return &CatalogLoader{
		executor: executor,
		facets:   facets,
	}
}

// Load issues one aggregation per facet. If either fails the whole load fails.
func (l *CatalogLoader) Load(ctx context.Context) (*query.Catalog, error) {
	genres, err := l.values(ctx, l.facets.Genre)
	if err != nil {
		return nil, apperr.NewCatalogLoad(FacetGenre, err)
	}

	languages, err := l.values(ctx, l.facets.Language)
	if err != nil {
		return nil, apperr.NewCatalogLoad(FacetLanguage, err)
	}

	return &query.Catalog{
		Genres:    genres,
		Languages: languages,
	}, nil
}

// values keeps the engine's bucket order, drops repeats and enforces the cardinality cap.
func (l *CatalogLoader) values(ctx context.Context, field string) ([]string, error) {
	buckets, err := l.executor.ExecuteAggregation(ctx, field, query.MaxFacetCardinality)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(buckets))
	seen := make(map[string]struct{}, len(buckets))
	for _, b := range buckets {
		if len(values) == query.MaxFacetCardinality {
			break
		}
		if _, ok := seen[b.Value]; ok {
			continue
		}
		seen[b.Value] = struct{}{}
		values = append(values, b.Value)
	}

	return values, nil
}

const catalogCacheKey = "catalog"

// CachedCatalog reuses the last successful catalog for ttl. Failures are never cached.
type CachedCatalog struct {
	next  CatalogProvider
	cache *expirable.LRU[string, *query.Catalog]
}

func NewCachedCatalog(next CatalogProvider, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		next:  next,
		cache: expirable.NewLRU[string, *query.Catalog](1, nil, ttl),
	}
}

func (c *CachedCatalog) Load(ctx context.Context) (*query.Catalog, error) {
	if catalog, ok := c.cache.Get(catalogCacheKey); ok {
		metrics.CatalogLoadsTotal.WithLabelValues("cache", metrics.OutcomeOK).Inc()
		return catalog, nil
	}

	catalog, err := c.next.Load(ctx)
	if err != nil {
		metrics.CatalogLoadsTotal.WithLabelValues("engine", metrics.OutcomeFailed).Inc()
		return nil, err
	}
	metrics.CatalogLoadsTotal.WithLabelValues("engine", metrics.OutcomeOK).Inc()

	c.cache.Add(catalogCacheKey, catalog)
	return catalog, nil
}

// Purge drops the cached catalog so the next Load hits the engine.
func (c *CachedCatalog) Purge() {
	c.cache.Purge()
}
