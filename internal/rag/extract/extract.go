package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
	"github.com/akolanti/GoFaqRag/pkg/logger_i"
)

// DocType is the extraction route picked from the file extension.
type DocType string

const (
	PDF  DocType = "pdf"
	DOCX DocType = "docx" //also covers .txt and .rtf
	ERR  DocType = "err"
)

type rawPage struct {
	Number  int
	Content string
}

var logger *logger_i.Logger
var loggerOnce sync.Once

func initLogger() {
	loggerOnce.Do(func() {
		logger = logger_i.NewLogger("Extraction")
	})
}

func GetDocType(docPath string) DocType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return PDF
	case ".docx", ".txt", ".rtf":
		return DOCX
	default:
		return ERR
	}
}

// ExtractDocument reads the file at path and returns its full text as one
// raw document. Pages are joined with a blank line so paragraph boundaries
// survive into segmentation.
func ExtractDocument(path string, sourceID string) (docModel.RawDocument, error) {
	initLogger()

	var pages []rawPage
	var err error

	switch GetDocType(path) {
	case PDF:
		pages, err = extractPDF(path)
	case DOCX:
		pages, err = extractdocxTxtRtf(path)
	default:
		return docModel.RawDocument{}, fmt.Errorf("unsupported document type: %s", filepath.Ext(path))
	}
	if err != nil {
		return docModel.RawDocument{}, err
	}

	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, p.Content)
	}

	return docModel.RawDocument{
		SourceID: sourceID,
		Text:     strings.Join(parts, "\n\n"),
	}, nil
}
