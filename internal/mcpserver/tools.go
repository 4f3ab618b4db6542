package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akolanti/GoFaqRag/internal/config"
)

// RetrieveInput is the input schema for the retrieve tool.
type RetrieveInput struct {
	Query string `json:"query" jsonschema:"the question to find FAQ chunks for"`
	K     int    `json:"k,omitempty" jsonschema:"maximum number of chunks to return (default 3)"`
}

// RetrieveOutput is the output schema for the retrieve tool.
type RetrieveOutput struct {
	Results []RetrievedChunk `json:"results"`
	Count   int              `json:"count"`
}

// RetrievedChunk is a single ranked chunk.
type RetrievedChunk struct {
	Content  string  `json:"content"`
	Source   string  `json:"source"`
	Title    string  `json:"title"`
	Question string  `json:"question,omitempty"`
	Score    float32 `json:"score"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "retrieve",
		Description: "Retrieve the FAQ chunks most relevant to a question",
	}, s.handleRetrieve)
}

func (s *Server) handleRetrieve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveInput,
) (*mcp.CallToolResult, RetrieveOutput, error) {
	k := input.K
	if k <= 0 {
		k = config.DefaultTopK
	}

	results, err := s.retriever.Retrieve(ctx, input.Query, k)
	if err != nil {
		return nil, RetrieveOutput{}, err
	}

	output := RetrieveOutput{
		Results: make([]RetrievedChunk, len(results)),
		Count:   len(results),
	}
	for i, res := range results {
		output.Results[i] = RetrievedChunk{
			Content:  res.Content,
			Source:   res.Meta.SourceID,
			Title:    res.Meta.Title,
			Question: res.Question,
			Score:    res.RelevanceScore,
		}
	}

	return nil, output, nil
}
