package customHttpClient

import (
	"net/http"

	"github.com/akolanti/GoFaqRag/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// NewPooledClient returns an http client sharing one idle connection pool.
// Embedding calls are bursty during ingestion, reusing connections keeps
// the per-batch latency down.
func NewPooledClient() *http.Client {
	return &http.Client{
		Transport: customTransport,
	}
}
