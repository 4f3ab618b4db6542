package retrieval_test

import (
	"context"
	"errors"
	"testing"

	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
	"github.com/akolanti/GoFaqRag/internal/rag/retrieval"
	"github.com/akolanti/GoFaqRag/internal/rag/vectorDB"
)

// MockIndex implements vectorDB.Index
type MockIndex struct {
	OnQuery func(ctx context.Context, vector []float32, limit uint64) (vectorDB.QueryResponse, error)
}

func (m *MockIndex) Query(ctx context.Context, v []float32, limit uint64) (vectorDB.QueryResponse, error) {
	if m.OnQuery != nil {
		return m.OnQuery(ctx, v, limit)
	}
	return vectorDB.QueryResponse{}, nil
}

func (m *MockIndex) CreateCollection(ctx context.Context, name string) error { return nil }

func (m *MockIndex) UpsertBatch(ctx context.Context, name string, chunks []docModel.Chunk, vectors [][]float32) error {
	return nil
}

func (m *MockIndex) GetCachedAnswer(ctx context.Context, v []float32) (string, bool, error) {
	return "", false, nil
}

func (m *MockIndex) SaveToCache(ctx context.Context, id string, v []float32, a string) error {
	return nil
}

type MockEmbedder struct {
	OnGetEmbedding func(ctx context.Context, query string) ([]float32, error)
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1, 0.2}, nil
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string, isHuge bool) ([][]float32, error) {
	return make([][]float32, len(chunks)), nil
}

func hit(content string, score float32) vectorDB.SearchHit {
	return vectorDB.SearchHit{
		Content: content,
		Meta:    docModel.DocumentMetadata{SourceID: content + ".pdf"},
		Score:   score,
	}
}

func TestRetrieve_OrderAndShape(t *testing.T) {
	index := &MockIndex{
		OnQuery: func(ctx context.Context, v []float32, limit uint64) (vectorDB.QueryResponse, error) {
			return vectorDB.QueryResponse{
				Hits: []vectorDB.SearchHit{hit("best", 0.9), hit("second", 0.7), hit("third", 0.4)},
			}, nil
		},
	}
	r := retrieval.NewRetriever(index, &MockEmbedder{})

	results, err := r.Retrieve(context.Background(), "roaming pass", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Content != "best" || results[2].Content != "third" {
		t.Errorf("ranking order not preserved: %+v", results)
	}
	if results[0].RelevanceScore != 0.9 {
		t.Errorf("expected score 0.9, got %v", results[0].RelevanceScore)
	}
	if results[0].Meta.SourceID != "best.pdf" {
		t.Errorf("metadata not carried through: %+v", results[0].Meta)
	}
}

func TestRetrieve_KLargerThanCorpus(t *testing.T) {
	index := &MockIndex{
		OnQuery: func(ctx context.Context, v []float32, limit uint64) (vectorDB.QueryResponse, error) {
			return vectorDB.QueryResponse{Hits: []vectorDB.SearchHit{hit("only", 0.5)}}, nil
		},
	}
	r := retrieval.NewRetriever(index, &MockEmbedder{})

	results, err := r.Retrieve(context.Background(), "anything", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected all available results, got %d", len(results))
	}
}

func TestRetrieve_WarningsSuppressed(t *testing.T) {
	index := &MockIndex{
		OnQuery: func(ctx context.Context, v []float32, limit uint64) (vectorDB.QueryResponse, error) {
			return vectorDB.QueryResponse{
				Hits:     []vectorDB.SearchHit{hit("a", 0.3)},
				Warnings: []string{"relevance scores unnormalized"},
			}, nil
		},
	}
	r := retrieval.NewRetriever(index, &MockEmbedder{})

	results, err := r.Retrieve(context.Background(), "q", 1)
	if err != nil {
		t.Fatalf("warnings must not become errors: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestRetrieve_StoreUnavailable(t *testing.T) {
	r := retrieval.NewRetriever(nil, &MockEmbedder{})

	_, err := r.Retrieve(context.Background(), "q", 3)
	if !errors.Is(err, retrieval.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestRetrieve_EmbeddingError(t *testing.T) {
	wantErr := errors.New("embedding backend down")
	embedder := &MockEmbedder{
		OnGetEmbedding: func(ctx context.Context, query string) ([]float32, error) {
			return nil, wantErr
		},
	}
	r := retrieval.NewRetriever(&MockIndex{}, embedder)

	_, err := r.Retrieve(context.Background(), "q", 3)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected embedding error to propagate, got %v", err)
	}
}

func TestRetrieve_QueryError(t *testing.T) {
	wantErr := errors.New("index offline")
	index := &MockIndex{
		OnQuery: func(ctx context.Context, v []float32, limit uint64) (vectorDB.QueryResponse, error) {
			return vectorDB.QueryResponse{}, wantErr
		},
	}
	r := retrieval.NewRetriever(index, &MockEmbedder{})

	_, err := r.Retrieve(context.Background(), "q", 3)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected index error to propagate, got %v", err)
	}
}
