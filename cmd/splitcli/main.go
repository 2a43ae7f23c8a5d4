package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/splitkit/splitkit/internal/chunker"
	"github.com/splitkit/splitkit/internal/config"
	"github.com/splitkit/splitkit/internal/exporter"
	"github.com/splitkit/splitkit/internal/extractor"
)

var version = "dev"

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	var (
		filePath    = flag.String("file", "", "document to chunk (.txt, .md, .pdf); reads stdin when omitted")
		strategy    = flag.String("strategy", "", "chunking strategy (fixed, sentence, paragraph, recursive, semantic)")
		chunkSize   = flag.Int("size", 0, "maximum chunk size in characters")
		overlap     = flag.Int("overlap", -1, "overlap between consecutive fixed-size chunks")
		compare     = flag.Bool("compare", false, "run every strategy and print per-strategy statistics")
		outPath     = flag.String("out", "", "write JSON output to a file instead of stdout")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("splitcli %s\n", version)
		return
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}
	if *chunkSize > 0 {
		cfg.ChunkSize = *chunkSize
	}
	if *overlap >= 0 {
		cfg.Overlap = *overlap
	}

	doc, err := loadInput(*filePath)
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	engine := chunker.New()
	if *compare {
		if err := runCompare(engine, doc.Text, cfg, out); err != nil {
			log.Fatalf("comparison failed: %v", err)
		}
		return
	}

	result, err := engine.Chunk(doc.Text, cfg.ChunkConfig())
	if err != nil {
		log.Fatalf("chunking failed: %v", err)
	}
	if err := exporter.WriteJSON(out, result, doc); err != nil {
		log.Fatalf("export failed: %v", err)
	}
}

// loadInput extracts the named document, or wraps stdin as plain text.
func loadInput(path string) (*extractor.Document, error) {
	if path != "" {
		return extractor.Extract(path)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return &extractor.Document{Text: string(data)}, nil
}

func runCompare(engine *chunker.Engine, text string, cfg *config.Config, out io.Writer) error {
	results, err := engine.CompareAll(context.Background(), text, cfg.ChunkSize, cfg.Overlap)
	if err != nil {
		return err
	}

	stats := make(map[string]interface{}, len(results))
	for strategy, result := range results {
		stats[string(strategy)] = map[string]interface{}{
			"totalChunks":      result.TotalChunks,
			"averageChunkSize": result.AverageChunkSize,
			"processingTimeMs": result.ProcessingTime.Milliseconds(),
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"chunkSize":  cfg.ChunkSize,
		"overlap":    cfg.Overlap,
		"strategies": stats,
	})
}
