package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
)

type mockRetriever struct {
	OnRetrieve func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error)
}

func (m *mockRetriever) Retrieve(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
	if m.OnRetrieve != nil {
		return m.OnRetrieve(ctx, query, k)
	}
	return nil, nil
}

func TestHandleRetrieve(t *testing.T) {
	retriever := &mockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			return []docModel.RetrievalResult{
				{
					Content:        "the pass costs RM7",
					Meta:           docModel.DocumentMetadata{SourceID: "pass.pdf", Title: "CelcomDigi Sahur Pass"},
					Question:       "How much is the pass?",
					RelevanceScore: 0.8,
				},
			}, nil
		},
	}
	s := NewServer(retriever)

	_, output, err := s.handleRetrieve(context.Background(), nil, RetrieveInput{Query: "price"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Count != 1 || len(output.Results) != 1 {
		t.Fatalf("expected 1 result, got %+v", output)
	}
	got := output.Results[0]
	if got.Source != "pass.pdf" || got.Title != "CelcomDigi Sahur Pass" || got.Score != 0.8 {
		t.Errorf("result not mapped: %+v", got)
	}
}

func TestHandleRetrieve_DefaultsK(t *testing.T) {
	var seenK int
	retriever := &mockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			seenK = k
			return nil, nil
		},
	}
	s := NewServer(retriever)

	_, _, err := s.handleRetrieve(context.Background(), nil, RetrieveInput{Query: "q", K: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seenK != 3 {
		t.Errorf("expected default k=3, got %d", seenK)
	}
}

func TestHandleRetrieve_Error(t *testing.T) {
	wantErr := errors.New("index offline")
	retriever := &mockRetriever{
		OnRetrieve: func(ctx context.Context, query string, k int) ([]docModel.RetrievalResult, error) {
			return nil, wantErr
		},
	}
	s := NewServer(retriever)

	_, _, err := s.handleRetrieve(context.Background(), nil, RetrieveInput{Query: "q"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected retrieval error to propagate, got %v", err)
	}
}
