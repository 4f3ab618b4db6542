package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/GoFaqRag/internal/config"
	"github.com/akolanti/GoFaqRag/internal/mcpserver"
	"github.com/akolanti/GoFaqRag/internal/rag/embedding"
	"github.com/akolanti/GoFaqRag/internal/rag/embedding/googleEmbedding"
	"github.com/akolanti/GoFaqRag/internal/rag/embedding/openaiEmbedding"
	"github.com/akolanti/GoFaqRag/internal/rag/retrieval"
	"github.com/akolanti/GoFaqRag/internal/rag/vectorDB"
	"github.com/akolanti/GoFaqRag/internal/rag/vectorDB/qdrantDB"
	"github.com/akolanti/GoFaqRag/pkg/logger_i"
)

// Serves the retrieve tool over stdio for MCP clients.
func main() {
	logger_i.Init()
	logger := logger_i.NewLogger("mcp")

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

	server := mcpserver.NewServer(retrieval.NewRetriever(index, embedder))
	if err := server.Run(ctx); err != nil {
		logger.Error("MCP server stopped", "error", err)
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
