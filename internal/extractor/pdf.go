package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor pulls plain text out of a PDF page by page, joining pages
// with blank lines. Document info (author, title) is read from the trailer
// when present.
type PDFExtractor struct{}

func (p *PDFExtractor) Name() string { return "pdf" }

func (p *PDFExtractor) Extract(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var buf strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract page %d: %w", i, err)
		}
		if text = strings.TrimSpace(text); text != "" {
			buf.WriteString(text)
			buf.WriteString("\n\n")
		}
	}

	doc := &Document{
		Text:   strings.TrimSpace(buf.String()),
		Source: filepath.Base(path),
		Pages:  pages,
	}

	info := reader.Trailer().Key("Info")
	if !info.IsNull() {
		doc.Author = info.Key("Author").Text()
		doc.Title = info.Key("Title").Text()
	}

	return doc, nil
}
