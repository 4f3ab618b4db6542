package memoryDB

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/akolanti/GoFaqRag/internal/config"
	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
	"github.com/akolanti/GoFaqRag/internal/rag/vectorDB"
	"github.com/akolanti/GoFaqRag/pkg/logger_i"
)

// Store is a brute-force cosine similarity index held in process memory.
// It stands in for Qdrant in tests and when no vector backend is reachable.
type Store struct {
	mu      sync.RWMutex
	vectors [][]float32
	chunks  []docModel.Chunk

	cacheMu      sync.RWMutex
	cacheVectors [][]float32
	cacheAnswers []string

	logger *logger_i.Logger
}

func NewStore() *Store {
	return &Store{
		logger: logger_i.NewLogger("MemoryDB"),
	}
}

func (s *Store) CreateCollection(ctx context.Context, collectionName string) error {
	return nil
}

func (s *Store) UpsertBatch(ctx context.Context, collectionName string, chunks []docModel.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunks), len(vectors))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunks...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

func (s *Store) Query(ctx context.Context, vector []float32, limit uint64) (vectorDB.QueryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		idx   int
		score float32
	}
	scores := make([]scored, len(s.vectors))
	for i := range s.vectors {
		scores[i] = scored{idx: i, score: cosine(s.vectors[i], vector)}
	}
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].score > scores[b].score
	})

	if limit > uint64(len(scores)) {
		limit = uint64(len(scores))
	}

	response := vectorDB.QueryResponse{}
	for _, sc := range scores[:limit] {
		chunk := s.chunks[sc.idx]
		response.Hits = append(response.Hits, vectorDB.SearchHit{
			Content:  chunk.Content,
			Meta:     chunk.Meta,
			Question: chunk.Question,
			Score:    sc.score,
		})
	}

	s.logger.Debug("Query done", "hits", len(response.Hits))
	return response, nil
}

func (s *Store) GetCachedAnswer(ctx context.Context, queryVector []float32) (string, bool, error) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	best := -1
	var bestScore float32
	for i := range s.cacheVectors {
		score := cosine(s.cacheVectors[i], queryVector)
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best == -1 || bestScore < config.CacheSimilarityCutoff {
		return "", false, nil
	}
	return s.cacheAnswers[best], true, nil
}

func (s *Store) SaveToCache(ctx context.Context, id string, vector []float32, answer string) error {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cacheVectors = append(s.cacheVectors, vector)
	s.cacheAnswers = append(s.cacheAnswers, answer)
	return nil
}

func cosine(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
