package chunker

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/splitkit/splitkit/pkg/types"
)

// Engine is the public entry point for chunking. It validates configuration,
// dispatches to the selected strategy, times execution and aggregates
// summary statistics. The engine keeps no state between calls; every result
// is owned exclusively by the caller.
type Engine struct{}

// New creates a new Engine instance
func New() *Engine {
	return &Engine{}
}

// Chunk splits text according to cfg and returns the ordered chunk sequence
// with aggregate statistics. Configuration errors are reported before any
// processing. Empty or all-whitespace input is a success: it yields a valid
// result with zero chunks.
func (e *Engine) Chunk(text string, cfg types.ChunkConfig) (*types.ChunkingResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seg, err := NewSegmenter(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return types.NewChunkingResult(cfg.Strategy, nil, 0), nil
	}

	start := time.Now()
	chunks := seg.Segment(text, cfg)
	return types.NewChunkingResult(cfg.Strategy, chunks, time.Since(start)), nil
}

// CompareAll runs every strategy over the same input and collects the
// per-strategy results. Strategies run concurrently, one goroutine each;
// every individual invocation stays synchronous with its own local state.
func (e *Engine) CompareAll(ctx context.Context, text string, chunkSize, overlap int) (map[types.Strategy]*types.ChunkingResult, error) {
	results := make(map[types.Strategy]*types.ChunkingResult, len(types.Strategies()))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, strategy := range types.Strategies() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := types.ChunkConfig{ChunkSize: chunkSize, Overlap: overlap, Strategy: strategy}
			res, err := e.Chunk(text, cfg)
			if err != nil {
				return err
			}
			mu.Lock()
			results[strategy] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
