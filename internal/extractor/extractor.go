package extractor

import (
	"path/filepath"
	"strings"
)

// Document is the extracted form of a source file handed to the chunking
// engine: plain text plus whatever metadata the format carries.
type Document struct {
	Text   string
	Source string // base name of the source file
	Pages  int    // 0 for formats without pages
	Author string
	Title  string
}

// Extractor produces plain text from one source format
type Extractor interface {
	// Extract reads the file at path and returns its text content
	Extract(path string) (*Document, error)

	// Name identifies the extractor for logging
	Name() string
}

// ForPath returns the extractor matching the file extension. Unknown
// extensions fall back to plain-text reading.
func ForPath(path string) Extractor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFExtractor{}
	case ".md", ".markdown":
		return &MarkdownExtractor{}
	default:
		return &TextExtractor{}
	}
}

// Extract reads path with the extractor matching its extension
func Extract(path string) (*Document, error) {
	return ForPath(path).Extract(path)
}
