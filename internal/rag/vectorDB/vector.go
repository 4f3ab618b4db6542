package vectorDB

import (
	"context"

	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
)

// SearchHit is one scored match straight from the index, before shaping.
type SearchHit struct {
	Content  string
	Meta     docModel.DocumentMetadata
	Question string
	Score    float32
}

// QueryResponse carries the ranked hits plus any advisory warnings the
// backend attaches (score calibration notes and the like). Warnings are
// informational only and never affect the hit list.
type QueryResponse struct {
	Hits     []SearchHit
	Warnings []string
}

type Index interface {
	Query(ctx context.Context, vector []float32, limit uint64) (QueryResponse, error)

	// CreateCollection Ingest document call
	CreateCollection(ctx context.Context, collectionName string) error
	UpsertBatch(ctx context.Context, collectionName string, chunks []docModel.Chunk, vectors [][]float32) error

	//semantic answer cache
	GetCachedAnswer(ctx context.Context, queryVector []float32) (string, bool, error)
	SaveToCache(ctx context.Context, id string, vector []float32, answer string) error
}
