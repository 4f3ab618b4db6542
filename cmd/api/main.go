// @title           FAQ RAG API
// @version         1.0
// @description     Asynchronous retrieval augmented question answering over FAQ documents
// @termsOfService  http://swagger.io/terms/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/GoFaqRag/internal/config"
	"github.com/akolanti/GoFaqRag/internal/data/store"
	jobmodel "github.com/akolanti/GoFaqRag/internal/domain/jobModel"
	"github.com/akolanti/GoFaqRag/internal/handlers"
	"github.com/akolanti/GoFaqRag/internal/job"
	"github.com/akolanti/GoFaqRag/internal/rag"
	"github.com/akolanti/GoFaqRag/internal/rag/embedding"
	"github.com/akolanti/GoFaqRag/internal/rag/embedding/googleEmbedding"
	"github.com/akolanti/GoFaqRag/internal/rag/embedding/openaiEmbedding"
	"github.com/akolanti/GoFaqRag/internal/rag/llm/gemini"
	"github.com/akolanti/GoFaqRag/internal/rag/vectorDB"
	"github.com/akolanti/GoFaqRag/internal/rag/vectorDB/memoryDB"
	"github.com/akolanti/GoFaqRag/internal/rag/vectorDB/qdrantDB"
	"github.com/akolanti/GoFaqRag/internal/server"
	"github.com/akolanti/GoFaqRag/internal/worker"
	"github.com/akolanti/GoFaqRag/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and job store
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		JobStore:          store.GetRedisJobStore(serviceContext),
		MessageStore:      store.GetRedisMessageStore(serviceContext),
	}
	logger.Info("Starting job service")

	if serviceConfig.JobStore == nil || serviceConfig.MessageStore == nil {
		logger.Error("Redis stores are offline")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
		serviceConfig.MessageStore = store.InitMessageStore()
	}
	service := job.InitJobService(serviceConfig)

	var index vectorDB.Index
	if qdrantClient := qdrantDB.GetQdrantClient(serviceContext); qdrantClient != nil {
		index = qdrantClient
	} else {
		logger.Error("Qdrant is offline, falling back to in-memory index")
		index = memoryDB.NewStore()
	}

	embeddingService := pickEmbedder(serviceContext, logger)
	llmProvider := gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GoogleEmbeddingAPIKey)

	if embeddingService == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "EmbeddingService", embeddingService != nil, "LLMProvider", llmProvider != nil)
		return
	}

	ragService := rag.NewService(index, llmProvider, embeddingService)

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, ragService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

// pickEmbedder prefers the Gemini embedder and falls back to OpenAI when
// only that key is configured. Both produce vectors at the configured
// dimensionality so the index accepts either.
func pickEmbedder(ctx context.Context, logger *logger_i.Logger) embedding.Embedder {
	if config.GoogleEmbeddingAPIKey != "" {
		return googleEmbedding.GetGoogleEmbeddingClient(ctx, config.GoogleEmbeddingModel, config.GoogleEmbeddingAPIKey)
	}
	if config.OpenAIAPIKey != "" {
		logger.Info("Using OpenAI embeddings")
		return openaiEmbedding.GetOpenAIEmbeddingClient(ctx, config.OpenAIEmbeddingModel, config.OpenAIAPIKey)
	}
	logger.Error("No embedding api key configured")
	return nil
}
