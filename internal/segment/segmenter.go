package segment

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/akolanti/GoFaqRag/internal/config"
	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
)

var (
	//line-initial numbered question: integer, optional separator, at least
	//three more characters on the same line, closed by '.', ':' or '?'
	questionBoundary = regexp.MustCompile(`(?:\n|\A)\s*(\d+[.,]?\s*[A-Za-z0-9][^\n]{2,}?[?:.])`)

	//looser retry: just the line-initial numeric label
	simpleBoundary = regexp.MustCompile(`(?:\n|\A)\s*(\d+[.,])`)

	leadingNumber = regexp.MustCompile(`^\s*(\d+)[.,]?`)
	numberPrefix  = regexp.MustCompile(`^\s*\d+[.,]?\s*`)
)

type boundary struct {
	pos    int //start offset of the whole match in the raw text
	number int
	label  string
}

// Segment splits one document into chunks. Documents with numbered question
// boundaries produce one chunk per question; anything else falls back to
// fixed-size overlapping windows. The two modes never mix within a document.
// Pure function - a document yielding nothing simply returns an empty slice.
func Segment(doc docModel.RawDocument, meta docModel.DocumentMetadata) []docModel.Chunk {
	bounds := scanBoundaries(doc.Text)
	if len(bounds) == 0 {
		return windowChunks(doc.Text, meta)
	}

	// Boundaries are ordered by the parsed question number, not by text
	// position. Slice endpoints are then taken from the reordered list, so
	// duplicate or out-of-order numbers (extraction artifacts) can misassign
	// text between non-adjacent questions. Kept for compatibility with the
	// corpus, where numbers are monotonic in well-formed documents.
	sort.SliceStable(bounds, func(i, j int) bool {
		return bounds[i].number < bounds[j].number
	})

	var chunks []docModel.Chunk
	for i, b := range bounds {
		end := len(doc.Text)
		if i < len(bounds)-1 {
			end = bounds[i+1].pos
		}
		if end < b.pos {
			//number order disagreed with text order; the inverted span is empty
			continue
		}

		content := CleanText(doc.Text[b.pos:end])
		if content == "" {
			continue
		}

		question := strings.TrimSpace(numberPrefix.ReplaceAllString(b.label, ""))
		chunks = append(chunks, docModel.Chunk{
			Content:        content,
			Meta:           meta,
			Question:       question,
			QuestionNumber: b.number,
			HasQuestion:    true,
			WindowIndex:    i,
		})
	}
	return chunks
}

func scanBoundaries(text string) []boundary {
	matches := questionBoundary.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		matches = simpleBoundary.FindAllStringSubmatchIndex(text, -1)
	}

	var bounds []boundary
	for _, m := range matches {
		label := text[m[2]:m[3]]
		numMatch := leadingNumber.FindStringSubmatch(label)
		if numMatch == nil {
			continue
		}
		number, err := strconv.Atoi(numMatch[1])
		if err != nil {
			continue
		}
		bounds = append(bounds, boundary{pos: m[0], number: number, label: label})
	}
	return bounds
}

// windowChunks is the generic fallback: fixed-size windows over the raw
// text with a fixed overlap, cut preferentially at paragraph, line,
// sentence and word boundaries, in that order, before raw characters.
func windowChunks(text string, meta docModel.DocumentMetadata) []docModel.Chunk {
	var chunks []docModel.Chunk
	for _, window := range splitWindows(text, config.ChunkSizeBudget, config.ChunkOverlap) {
		content := CleanText(window)
		if content == "" {
			continue
		}
		chunks = append(chunks, docModel.Chunk{
			Content:     content,
			Meta:        meta,
			WindowIndex: len(chunks),
		})
	}
	return chunks
}

//separators ordered from "best" to "worst" for semantic meaning
var windowSeparators = []string{"\n\n", "\n", ". ", " "}

// splitWindows emits contiguous spans of text no longer than limit. Each
// span after the first starts overlap characters before the previous cut,
// so dropping the first overlap characters of every later span and
// concatenating reconstructs the input exactly.
func splitWindows(text string, limit, overlap int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= limit {
		return []string{text}
	}

	var windows []string
	start := 0
	for start < len(text) {
		end := start + limit
		if end >= len(text) {
			windows = append(windows, text[start:])
			break
		}

		cut := findCut(text, start, end)
		windows = append(windows, text[start:cut])

		next := cut - overlap
		if next <= start {
			next = cut //no room for overlap without stalling
		}
		start = next
	}
	return windows
}

// findCut looks backwards from end for the highest-priority separator and
// cuts just after it. No separator in range means a hard character cut.
func findCut(text string, start, end int) int {
	for _, sep := range windowSeparators {
		idx := strings.LastIndex(text[start:end], sep)
		if idx <= 0 {
			continue
		}
		return start + idx + len(sep)
	}
	return end
}
