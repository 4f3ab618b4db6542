package retrieval

import (
	"context"
	"errors"

	"github.com/akolanti/GoFaqRag/internal/config"
	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
	"github.com/akolanti/GoFaqRag/internal/rag/embedding"
	"github.com/akolanti/GoFaqRag/internal/rag/vectorDB"
	"github.com/akolanti/GoFaqRag/pkg/logger_i"
)

// ErrStoreUnavailable reports that no vector index is loaded, which keeps
// a misconfigured deployment distinguishable from an empty corpus.
var ErrStoreUnavailable = errors.New("vector store unavailable")

type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error)
}

type retriever struct {
	index    vectorDB.Index
	embedder embedding.Embedder
	logger   *logger_i.Logger
}

func NewRetriever(index vectorDB.Index, embedder embedding.Embedder) Retriever {
	return &retriever{
		index:    index,
		embedder: embedder,
		logger:   logger_i.NewLogger("Retriever"),
	}
}

// Retrieve embeds the query and returns the k most relevant chunks, best
// first. Backend warnings are logged and never surfaced to the caller.
func (r *retriever) Retrieve(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
	log := r.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	if r.index == nil {
		log.Error("no vector index loaded")
		return nil, ErrStoreUnavailable
	}
	if k <= 0 {
		k = config.DefaultTopK
	}

	vector, err := r.embedder.GetEmbedding(ctx, query)
	if err != nil {
		log.Error("query embedding failed", "error", err)
		return nil, err
	}

	response, err := r.index.Query(ctx, vector, uint64(k))
	if err != nil {
		log.Error("index query failed", "error", err)
		return nil, err
	}
	for _, w := range response.Warnings {
		log.Debug("index warning", "warning", w)
	}

	hits := response.Hits
	if len(hits) > k {
		hits = hits[:k]
	}

	results := make([]docModel.RetrievalResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, docModel.RetrievalResult{
			Content:        hit.Content,
			Meta:           hit.Meta,
			Question:       hit.Question,
			RelevanceScore: hit.Score,
		})
	}

	log.Debug("retrieval done", "results", len(results))
	return results, nil
}
