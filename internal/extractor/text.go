package extractor

import (
	"fmt"
	"os"
	"path/filepath"
)

// TextExtractor reads a file verbatim as UTF-8 text
type TextExtractor struct{}

func (t *TextExtractor) Name() string { return "text" }

func (t *TextExtractor) Extract(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return &Document{
		Text:   string(content),
		Source: filepath.Base(path),
	}, nil
}
