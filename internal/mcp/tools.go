package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/splitkit/splitkit/internal/exporter"
	"github.com/splitkit/splitkit/internal/extractor"
	"github.com/splitkit/splitkit/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeInvalidConfig = -32001 // Rejected chunking configuration
	ErrorCodeExtraction    = -32002 // Document could not be extracted
)

// handleChunkText handles the chunk_text tool invocation
func (s *Server) handleChunkText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	text, ok := args["text"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "text parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "missing",
		})
	}

	cfg, err := s.chunkConfig(args)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Chunk(text, cfg)
	if err != nil {
		return nil, configError(err)
	}

	return mcp.NewToolResultText(marshalJSON(exporter.Export(result, nil))), nil
}

// handleChunkDocument handles the chunk_document tool invocation
func (s *Server) handleChunkDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}
	if err := validateDocumentPath(path); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	cfg, err := s.chunkConfig(args)
	if err != nil {
		return nil, err
	}

	doc, err := extractor.Extract(path)
	if err != nil {
		return nil, newMCPError(ErrorCodeExtraction, "extraction failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	result, err := s.engine.Chunk(doc.Text, cfg)
	if err != nil {
		return nil, configError(err)
	}

	export := exporter.Export(result, doc)
	if !getBoolDefault(args, "include_content", true) {
		for i := range export.Chunks {
			export.Chunks[i].Content = ""
		}
	}

	return mcp.NewToolResultText(marshalJSON(export)), nil
}

// handleCompareStrategies handles the compare_strategies tool invocation
func (s *Server) handleCompareStrategies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	text, ok := args["text"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "text parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "missing",
		})
	}

	chunkSize := getIntDefault(args, "chunk_size", s.defaults.ChunkSize)
	overlap := getIntDefault(args, "overlap", s.defaults.Overlap)

	results, err := s.engine.CompareAll(ctx, text, chunkSize, overlap)
	if err != nil {
		return nil, configError(err)
	}

	comparison := make(map[string]interface{}, len(results))
	for strategy, result := range results {
		minSize, maxSize := 0, 0
		for i, c := range result.Chunks {
			if i == 0 || c.CharacterCount < minSize {
				minSize = c.CharacterCount
			}
			if c.CharacterCount > maxSize {
				maxSize = c.CharacterCount
			}
		}
		comparison[string(strategy)] = map[string]interface{}{
			"total_chunks":       result.TotalChunks,
			"average_chunk_size": result.AverageChunkSize,
			"min_chunk_size":     minSize,
			"max_chunk_size":     maxSize,
			"processing_time_ms": result.ProcessingTime.Milliseconds(),
		}
	}

	response := map[string]interface{}{
		"chunk_size": chunkSize,
		"overlap":    overlap,
		"strategies": comparison,
	}
	return mcp.NewToolResultText(marshalJSON(response)), nil
}

// handleListStrategies handles the list_strategies tool invocation
func (s *Server) handleListStrategies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	descriptions := map[types.Strategy]string{
		types.StrategyFixed:     "sliding window of chunk_size characters stepping by chunk_size-overlap",
		types.StrategySentence:  "greedy accumulation of whole sentences up to chunk_size",
		types.StrategyParagraph: "greedy accumulation of whole paragraphs up to chunk_size",
		types.StrategyRecursive: "hierarchical split: paragraphs, then sentence groups, then words",
		types.StrategySemantic:  "sentence accumulation with a lexical topic-boundary heuristic",
	}

	strategies := make([]map[string]interface{}, 0, len(types.Strategies()))
	for _, strategy := range types.Strategies() {
		strategies = append(strategies, map[string]interface{}{
			"name":        string(strategy),
			"description": descriptions[strategy],
		})
	}

	return mcp.NewToolResultText(marshalJSON(map[string]interface{}{
		"strategies": strategies,
		"defaults": map[string]interface{}{
			"chunk_size": s.defaults.ChunkSize,
			"overlap":    s.defaults.Overlap,
			"strategy":   s.defaults.Strategy,
		},
	})), nil
}

// chunkConfig assembles a ChunkConfig from tool arguments plus server defaults
func (s *Server) chunkConfig(args map[string]interface{}) (types.ChunkConfig, error) {
	strategy, ok := args["strategy"].(string)
	if !ok || strategy == "" {
		return types.ChunkConfig{}, newMCPError(ErrorCodeInvalidParams, "strategy parameter is required", map[string]interface{}{
			"param":   "strategy",
			"reason":  "missing or empty",
			"allowed": strategyEnum,
		})
	}

	cfg := types.ChunkConfig{
		ChunkSize: getIntDefault(args, "chunk_size", s.defaults.ChunkSize),
		Overlap:   getIntDefault(args, "overlap", s.defaults.Overlap),
		Strategy:  types.Strategy(strategy),
	}
	// A small explicit chunk_size can collide with the server's default
	// overlap; only an overlap the caller actually passed should fail
	// validation.
	if _, explicit := args["overlap"]; !explicit && cfg.Overlap >= cfg.ChunkSize {
		cfg.Overlap = 0
	}
	return cfg, nil
}

// configError maps engine configuration rejections onto MCP errors
func configError(err error) error {
	if errors.Is(err, types.ErrInvalidConfig) {
		return newMCPError(ErrorCodeInvalidConfig, "invalid chunking configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return newMCPError(ErrorCodeInternalError, "chunking failed", map[string]interface{}{
		"error": err.Error(),
	})
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// validateDocumentPath checks if a path points at a readable regular file
func validateDocumentPath(path string) error {
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}
	if info.IsDir() {
		return ErrPathIsDirectory
	}
	return nil
}

// marshalJSON formats a value as indented JSON
func marshalJSON(data interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// Validation helpers

var (
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrPathIsDirectory = errors.New("path is a directory")
)
