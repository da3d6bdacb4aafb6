package es

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// Indexer owns the movies index schema. Document ingestion happens elsewhere.
type Indexer struct {
	client       *elasticsearch.TypedClient
	indexName    string
	indexBuilder *IndexBuilder
}

func NewIndexer(client *elasticsearch.TypedClient, indexName string) *Indexer {
	return &Indexer{
		client:       client,
		indexName:    indexName,
		indexBuilder: NewIndexBuilder(),
	}
}

func (e *Indexer) EnsureIndex(ctx context.Context) error {
	existsRes, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := e.indexBuilder.buildMapping()

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

type IndexBuilder struct{}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{}
}

// buildMapping analyzes free-text fields with the standard analyzer (case-insensitive, partial token)
// and keeps a case-preserving ".keyword" variant for exact bonus matching, facet filters and aggregations.
func (b *IndexBuilder) buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":            types.NewKeywordProperty(),
			"title":         b.createTextPropertyWithKeyword(),
			"storyline":     types.NewTextProperty(),
			"genres":        b.createTextPropertyWithKeyword(),
			"languages":     b.createTextPropertyWithKeyword(),
			"directors":     b.createTextPropertyWithKeyword(),
			"writers":       b.createTextPropertyWithKeyword(),
			"cast":          b.createTextPropertyWithKeyword(),
			"rating":        types.NewFloatNumberProperty(),
			"released_date": types.NewDateProperty(),
		},
	}
}

func (b *IndexBuilder) createTextPropertyWithKeyword() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
