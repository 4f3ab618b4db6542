// Package mcpserver exposes FAQ retrieval as an MCP tool so agent
// clients can query the index over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akolanti/GoFaqRag/internal/rag/retrieval"
)

const Version = "1.0.0"

type Server struct {
	retriever retrieval.Retriever
	server    *mcp.Server
}

func NewServer(retriever retrieval.Retriever) *Server {
	impl := &mcp.Implementation{
		Name:    "faq-rag",
		Version: Version,
	}

	s := &Server{
		retriever: retriever,
		server:    mcp.NewServer(impl, nil),
	}
	s.registerTools()
	return s
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
