package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = false //if redis init fails, it falls back to an internal in-memory store
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5
	NoAuthBypass                    = true //local dev only
	CacheSimilarityCutoff           = 0.97

	EmbeddingOutputDimensionality int32 = 1536
	FaqCollectionName                   = "faq-chunks"
	CacheCollectionName                 = "semantic-cache"

	// DefaultTopK is the single k default shared by the query path,
	// the retriever and the evaluation harness.
	DefaultTopK = 3

	//segmenter fallback windowing
	ChunkSizeBudget = 1000
	ChunkOverlap    = 100

	//chunk inspection dump written during ingestion
	ChunkDumpFile = "document_chunks.txt"

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//vectorDB
	QdrantConnectionTimeout = 30 * time.Second
	QdrantHost              = ""
	QdrantPort              = 6333 //http
	QdrantGrpcPort          = 6334
	QdrantUseTLS            = false //set for https
	QdrantPoolSize          = 1     //2-5 is preferred for prod according to documentation
	QdrantKeepAliveTimeout  = 30 * time.Second

	//llm
	GeminiModelName = "gemini-2.5-flash-lite-preview-09-2025"
	ModelContext    = "You are an AI assistant for CelcomDigi, a telecommunications company in Malaysia. " +
		"Answer the question based ONLY on the provided context. " +
		"If the answer is not in the context, say you don't know."

	//embeddings
	GoogleEmbeddingModel         = "gemini-embedding-001"
	OpenAIEmbeddingModel         = "text-embedding-3-small"
	EmbeddingBatchSize           = 100
	HugeDataSetChunkCutoff       = 1000000
	ModelTemperature     float32 = 0.7

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisJobStore     = 0
	RedisMessageStore = 1

	//redis timeouts
	RedisJobStoreTTL     = 24 * time.Hour
	RedisMessageStoreTTL = 24 * time.Hour
)

// secrets and endpoints come from the environment, never from a
// process-wide mutable default
var (
	AuthToken             = os.Getenv("FAQRAG_AUTH_TOKEN")
	GoogleEmbeddingAPIKey = os.Getenv("GEMINI_API_KEY")
	OpenAIAPIKey          = os.Getenv("OPENAI_API_KEY")
	RedisPassword         = os.Getenv("REDIS_PASSWORD")
)
