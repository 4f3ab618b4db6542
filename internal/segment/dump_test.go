package segment

import (
	"strings"
	"testing"

	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
)

func TestWriteChunkDump(t *testing.T) {
	chunks := []docModel.Chunk{
		{
			Content:     "1. What is X? X is Y.",
			Meta:        docModel.DocumentMetadata{SourceID: "a.pdf", Title: "CelcomDigi Raya Offer"},
			Question:    "What is X?",
			HasQuestion: true,
		},
		{
			Content: "a plain window chunk",
			Meta:    docModel.DocumentMetadata{SourceID: "b.pdf", Title: "b.pdf"},
		},
	}

	var buf strings.Builder
	if err := WriteChunkDump(&buf, chunks); err != nil {
		t.Fatalf("WriteChunkDump failed: %v", err)
	}
	out := buf.String()
	lines := strings.Split(out, "\n")

	if lines[0] != "Total chunks: 2" {
		t.Errorf("header got %q", lines[0])
	}
	if !strings.Contains(out, "CHUNK 1\nSource: a.pdf\nTitle: CelcomDigi Raya Offer\nQuestion: What is X?\n") {
		t.Error("question chunk block malformed")
	}
	if strings.Contains(out, "CHUNK 2\nSource: b.pdf\nTitle: b.pdf\nQuestion:") {
		t.Error("windowed chunk must not print a Question line")
	}
	if got := strings.Count(out, strings.Repeat("-", 80)); got != 4 {
		t.Errorf("expected 4 separator rules, got %d", got)
	}
}

func TestWriteChunkDump_Empty(t *testing.T) {
	var buf strings.Builder
	if err := WriteChunkDump(&buf, nil); err != nil {
		t.Fatalf("WriteChunkDump failed: %v", err)
	}
	if buf.String() != "Total chunks: 0\n\n" {
		t.Errorf("got %q", buf.String())
	}
}
