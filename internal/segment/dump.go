package segment

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
)

var dumpSeparator = strings.Repeat("-", 80)

// WriteChunkDump writes the inspection dump consumed by tooling: a total
// count followed by one block per chunk, in emission order.
func WriteChunkDump(w io.Writer, chunks []docModel.Chunk) error {
	if _, err := fmt.Fprintf(w, "Total chunks: %d\n\n", len(chunks)); err != nil {
		return err
	}

	for i, chunk := range chunks {
		fmt.Fprintf(w, "CHUNK %d\n", i+1)
		fmt.Fprintf(w, "Source: %s\n", chunk.Meta.SourceID)
		fmt.Fprintf(w, "Title: %s\n", chunk.Meta.Title)
		if chunk.HasQuestion {
			fmt.Fprintf(w, "Question: %s\n", chunk.Question)
		}
		fmt.Fprintln(w, dumpSeparator)
		fmt.Fprintln(w, chunk.Content)
		fmt.Fprintln(w, dumpSeparator)
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// SaveChunksToFile dumps chunks to a file for manual inspection.
func SaveChunksToFile(path string, chunks []docModel.Chunk) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chunk dump: %w", err)
	}
	defer f.Close()

	if err := WriteChunkDump(f, chunks); err != nil {
		return fmt.Errorf("writing chunk dump: %w", err)
	}
	return nil
}
