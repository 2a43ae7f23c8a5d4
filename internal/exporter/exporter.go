// Package exporter serializes chunking results to a structured JSON
// document for downstream consumers.
package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/splitkit/splitkit/internal/extractor"
	"github.com/splitkit/splitkit/pkg/types"
)

// ExportChunk is the serialized form of one chunk
type ExportChunk struct {
	ID                  string `json:"id"`
	Content             string `json:"content"`
	CharacterCount      int    `json:"characterCount"`
	WordCount           int    `json:"wordCount"`
	StartIndex          int    `json:"startIndex"`
	EndIndex            int    `json:"endIndex"`
	OverlapWithPrevious int    `json:"overlapWithPrevious,omitempty"`
	Strategy            string `json:"strategy"`
}

// ExportSource describes the document the chunks came from
type ExportSource struct {
	Name   string `json:"name,omitempty"`
	Pages  int    `json:"pages,omitempty"`
	Author string `json:"author,omitempty"`
	Title  string `json:"title,omitempty"`
}

// ExportDocument is the complete export payload
type ExportDocument struct {
	Strategy         string        `json:"strategy"`
	TotalChunks      int           `json:"totalChunks"`
	AverageChunkSize int           `json:"averageChunkSize"`
	ProcessingTimeMs int64         `json:"processingTimeMs"`
	ExportedAt       time.Time     `json:"exportedAt"`
	Source           *ExportSource `json:"source,omitempty"`
	Chunks           []ExportChunk `json:"chunks"`
}

// Export builds the export payload for a chunking result. doc may be nil
// when the text did not come from a file.
func Export(result *types.ChunkingResult, doc *extractor.Document) *ExportDocument {
	chunks := make([]ExportChunk, 0, len(result.Chunks))
	for _, c := range result.Chunks {
		chunks = append(chunks, ExportChunk{
			ID:                  c.ID,
			Content:             c.Content,
			CharacterCount:      c.CharacterCount,
			WordCount:           c.WordCount,
			StartIndex:          c.StartIndex,
			EndIndex:            c.EndIndex,
			OverlapWithPrevious: c.OverlapWithPrevious,
			Strategy:            string(c.Strategy),
		})
	}

	export := &ExportDocument{
		Strategy:         string(result.Strategy),
		TotalChunks:      result.TotalChunks,
		AverageChunkSize: result.AverageChunkSize,
		ProcessingTimeMs: result.ProcessingTime.Milliseconds(),
		ExportedAt:       time.Now().UTC(),
		Chunks:           chunks,
	}
	if doc != nil {
		export.Source = &ExportSource{
			Name:   doc.Source,
			Pages:  doc.Pages,
			Author: doc.Author,
			Title:  doc.Title,
		}
	}
	return export
}

// WriteJSON serializes the export payload as indented JSON
func WriteJSON(w io.Writer, result *types.ChunkingResult, doc *extractor.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export(result, doc)); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}
