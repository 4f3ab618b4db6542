package segment

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	hyphenWrap     = regexp.MustCompile(`(\w)-\s+(\w)`)
	pageArtifact   = regexp.MustCompile(`Page \d+ of \d+`)
)

// CleanText normalizes a slice of extracted text: compatibility Unicode
// normalization, "Page N of M" artifacts removed, words re-joined across
// hyphenated line wraps, and whitespace runs collapsed to single spaces.
// Cleaning already-clean text is a no-op.
func CleanText(text string) string {
	text = norm.NFKC.String(text)
	text = whitespaceRuns.ReplaceAllString(text, " ")

	// hyphen re-join runs to a fixpoint so that chains like "a- b- c"
	// cannot survive one pass and change on the next
	for {
		joined := hyphenWrap.ReplaceAllString(text, "${1}${2}")
		if joined == text {
			break
		}
		text = joined
	}

	text = pageArtifact.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
