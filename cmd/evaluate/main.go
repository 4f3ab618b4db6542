package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/akolanti/GoFaqRag/internal/config"
	"github.com/akolanti/GoFaqRag/internal/eval"
	"github.com/akolanti/GoFaqRag/internal/rag/embedding"
	"github.com/akolanti/GoFaqRag/internal/rag/embedding/googleEmbedding"
	"github.com/akolanti/GoFaqRag/internal/rag/embedding/openaiEmbedding"
	"github.com/akolanti/GoFaqRag/internal/rag/retrieval"
	"github.com/akolanti/GoFaqRag/internal/rag/vectorDB"
	"github.com/akolanti/GoFaqRag/internal/rag/vectorDB/qdrantDB"
	"github.com/akolanti/GoFaqRag/pkg/logger_i"
)

// Scores Recall@k for the fixed question set against the live index.
//
// Usage:
//
//	evaluate [k]
//
// An invalid k falls back to the default rather than aborting the run.
func main() {
	logger_i.Init()
	logger := logger_i.NewLogger("evaluate")

	k := config.DefaultTopK
	if len(os.Args) > 1 {
		parsed, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Printf("Invalid k value: %s. Using default k=%d.\n", os.Args[1], config.DefaultTopK)
		} else {
			k = parsed
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var index vectorDB.Index
	if qdrantClient := qdrantDB.GetQdrantClient(ctx); qdrantClient != nil {
		index = qdrantClient
	}

	embedder := pickEmbedder(ctx)
	if embedder == nil {
		logger.Error("No embedding api key configured")
		os.Exit(1)
	}

	retriever := retrieval.NewRetriever(index, embedder)
	harness := eval.NewHarness(retriever)

	fmt.Printf("Evaluating Recall@%d for %d questions...\n\n", k, len(eval.TestQuestions))
	report, err := harness.Run(ctx, eval.TestQuestions, k)
	if err != nil {
		logger.Error("Evaluation run failed", "error", err)
		os.Exit(1)
	}

	if err := eval.WriteReport(os.Stdout, report); err != nil {
		logger.Error("Could not write report", "error", err)
		os.Exit(1)
	}
}

func pickEmbedder(ctx context.Context) embedding.Embedder {
	if config.GoogleEmbeddingAPIKey != "" {
		return googleEmbedding.GetGoogleEmbeddingClient(ctx, config.GoogleEmbeddingModel, config.GoogleEmbeddingAPIKey)
	}
	if config.OpenAIAPIKey != "" {
		return openaiEmbedding.GetOpenAIEmbeddingClient(ctx, config.OpenAIEmbeddingModel, config.OpenAIAPIKey)
	}
	return nil
}
