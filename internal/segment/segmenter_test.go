package segment

import (
	"strings"
	"testing"

	"github.com/akolanti/GoFaqRag/internal/config"
	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
)

func testDoc(text string) (docModel.RawDocument, docModel.DocumentMetadata) {
	doc := docModel.RawDocument{SourceID: "test.pdf", Text: text}
	return doc, ExtractMetadata(doc)
}

func TestSegment_TwoQuestions(t *testing.T) {
	doc, meta := testDoc("1. What is X? X is Y.\n2. What is Z? Z is W.")

	chunks := Segment(doc, meta)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].Question != "What is X?" {
		t.Errorf("chunk 0 question got %q", chunks[0].Question)
	}
	if chunks[0].Content != "1. What is X? X is Y." {
		t.Errorf("chunk 0 content got %q", chunks[0].Content)
	}
	if chunks[1].Question != "What is Z?" {
		t.Errorf("chunk 1 question got %q", chunks[1].Question)
	}
	if chunks[1].Content != "2. What is Z? Z is W." {
		t.Errorf("chunk 1 content got %q", chunks[1].Content)
	}
}

func TestSegment_AscendingMarkers(t *testing.T) {
	text := "CelcomDigi Sahur Pass\n" +
		"1. How do I subscribe? Dial *128# and follow the menu.\n" +
		"2. How much does it cost? The pass is RM7 for 4 days.\n" +
		"3. Can I use it roaming? No, it is domestic only.\n"
	doc, meta := testDoc(text)

	chunks := Segment(doc, meta)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk.QuestionNumber != i+1 {
			t.Errorf("chunk %d number got %d, want %d", i, chunk.QuestionNumber, i+1)
		}
		if !chunk.HasQuestion {
			t.Errorf("chunk %d lost its question flag", i)
		}
		if chunk.Meta.Title != "CelcomDigi Sahur Pass" {
			t.Errorf("chunk %d title got %q", i, chunk.Meta.Title)
		}
	}
	//spans tile the text: every answer stays with its own question
	if !strings.Contains(chunks[1].Content, "RM7") || strings.Contains(chunks[1].Content, "roaming") {
		t.Errorf("chunk 1 span wrong: %q", chunks[1].Content)
	}
}

// the boundary list is ordered by parsed number, not text position;
// an inverted span between non-adjacent numbers collapses to nothing
func TestSegment_SortsByQuestionNumber(t *testing.T) {
	doc, meta := testDoc("2. Second thing? Answer two.\n1. First thing? Answer one.")

	chunks := Segment(doc, meta)

	if len(chunks) != 1 {
		t.Fatalf("expected the inverted span to be dropped, got %d chunks", len(chunks))
	}
	if chunks[0].QuestionNumber != 2 {
		t.Errorf("surviving chunk number got %d, want 2", chunks[0].QuestionNumber)
	}
	//the surviving span runs from its own boundary to end of text
	if !strings.Contains(chunks[0].Content, "Answer one.") {
		t.Errorf("surviving chunk lost trailing text: %q", chunks[0].Content)
	}
}

func TestSegment_LooserBoundaryFallback(t *testing.T) {
	//numeric labels with no terminator on the following lines, so only the
	//looser pattern can find the boundaries
	doc, meta := testDoc("1,\nFirst block here\n2,\nSecond block follows")

	chunks := Segment(doc, meta)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks from the looser pattern, got %d", len(chunks))
	}
	if chunks[0].QuestionNumber != 1 || chunks[1].QuestionNumber != 2 {
		t.Errorf("numbers got %d, %d", chunks[0].QuestionNumber, chunks[1].QuestionNumber)
	}
}

func TestSegment_WindowedFallback(t *testing.T) {
	//no numbered boundaries anywhere
	sentence := "The quick brown fox jumps over the lazy dog near the river bank. "
	text := strings.Repeat(sentence, 60) //~3900 chars
	doc, meta := testDoc(text)

	chunks := Segment(doc, meta)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple windows, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk.HasQuestion || chunk.Question != "" {
			t.Errorf("window %d carries a question", i)
		}
		if chunk.WindowIndex != i {
			t.Errorf("window %d index got %d", i, chunk.WindowIndex)
		}
	}
}

func TestSegment_Empty(t *testing.T) {
	doc, meta := testDoc("")
	if chunks := Segment(doc, meta); len(chunks) != 0 {
		t.Errorf("expected no chunks, got %d", len(chunks))
	}
}

func TestSplitWindows_Properties(t *testing.T) {
	word := "lorem ipsum dolor sit amet consectetur adipiscing elit "
	text := strings.Repeat(word+"\n\n", 40)
	limit := config.ChunkSizeBudget
	overlap := config.ChunkOverlap

	windows := splitWindows(text, limit, overlap)

	if len(windows) < 2 {
		t.Fatalf("expected multiple windows, got %d", len(windows))
	}

	var rebuilt strings.Builder
	for i, w := range windows {
		if len(w) > limit {
			t.Errorf("window %d exceeds budget: %d > %d", i, len(w), limit)
		}
		if i == 0 {
			rebuilt.WriteString(w)
			continue
		}
		if len(w) < overlap {
			t.Fatalf("window %d shorter than overlap", i)
		}
		rebuilt.WriteString(w[overlap:])
	}

	//dropping the overlap prefix of every later window rebuilds the input
	if rebuilt.String() != text {
		t.Error("windows do not reconstruct the source text")
	}
}

func TestSplitWindows_ShortText(t *testing.T) {
	windows := splitWindows("short", 1000, 100)
	if len(windows) != 1 || windows[0] != "short" {
		t.Errorf("got %v", windows)
	}
	if windows := splitWindows("", 1000, 100); windows != nil {
		t.Errorf("expected nil for empty input, got %v", windows)
	}
}
