package segment

import (
	"regexp"
	"strings"

	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
)

// titleRule pairs a pattern with the extraction applied to its match.
// Rules run in order and the first one that matches wins.
type titleRule struct {
	pattern *regexp.Regexp
	extract func(match []string) string
}

var titleRules = []titleRule{
	//brand-prefixed phrase ending at the first terminator word,
	//e.g. "CelcomDigi Sahur Pass", "CelcomDigi Raya Offer"
	{
		pattern: regexp.MustCompile(`(CelcomDigi.*?)(Pass|Offer|Launch|Series)`),
		extract: func(match []string) string { return match[0] },
	},
	//known campaign names without the brand prefix
	{
		pattern: regexp.MustCompile(`(Port-In\s+Rebate\s+Offer|Samsung\s+Galaxy\s+S\d+\s+Series)`),
		extract: func(match []string) string { return match[0] },
	},
}

var (
	modifiedDatePattern = regexp.MustCompile(`Modified on ([A-Za-z]+,\s*\d+\s*[A-Za-z]+(?:\s*at\s*[\d:]+\s*[AP]M)?)`)
	firstNumberedItem   = regexp.MustCompile(`\d+[.,]\s+(.*?)[.?]`)
)

// ExtractMetadata derives title, modification date and a short description
// from a document's raw text. It is a pure function and never fails: a rule
// with no match degrades to its documented default (source id for the title,
// empty string for date and description).
func ExtractMetadata(doc docModel.RawDocument) docModel.DocumentMetadata {
	meta := docModel.DocumentMetadata{
		SourceID: doc.SourceID,
		Title:    doc.SourceID,
	}

	for _, rule := range titleRules {
		if match := rule.pattern.FindStringSubmatch(doc.Text); match != nil {
			meta.Title = rule.extract(match)
			break
		}
	}

	if match := modifiedDatePattern.FindStringSubmatch(doc.Text); match != nil {
		meta.Date = match[1]
	}

	//first numbered item doubles as a human-readable preview
	if match := firstNumberedItem.FindStringSubmatch(doc.Text); match != nil {
		meta.Description = strings.TrimSpace(match[1])
	}

	return meta
}
