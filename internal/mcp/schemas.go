package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// strategyEnum lists the accepted strategy discriminants for tool schemas
var strategyEnum = []string{"fixed", "sentence", "paragraph", "recursive", "semantic"}

// chunkTextTool returns the tool definition for chunk_text
func chunkTextTool() mcp.Tool {
	return mcp.Tool{
		Name:        "chunk_text",
		Description: "Split a text into bounded-size, position-tracked chunks using one strategy",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "The text to chunk",
				},
				"strategy": map[string]interface{}{
					"type":        "string",
					"description": "Chunking strategy",
					"enum":        strategyEnum,
				},
				"chunk_size": map[string]interface{}{
					"type":        "integer",
					"description": "Target maximum chunk length in characters (default from server config)",
					"minimum":     1,
				},
				"overlap": map[string]interface{}{
					"type":        "integer",
					"description": "Characters repeated between consecutive fixed-size windows; must be below chunk_size",
					"minimum":     0,
				},
			},
			Required: []string{"text", "strategy"},
		},
	}
}

// chunkDocumentTool returns the tool definition for chunk_document
func chunkDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "chunk_document",
		Description: "Extract text from a file (txt, markdown or PDF) and split it into chunks",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the document",
				},
				"strategy": map[string]interface{}{
					"type":        "string",
					"description": "Chunking strategy",
					"enum":        strategyEnum,
				},
				"chunk_size": map[string]interface{}{
					"type":        "integer",
					"description": "Target maximum chunk length in characters (default from server config)",
					"minimum":     1,
				},
				"overlap": map[string]interface{}{
					"type":        "integer",
					"description": "Characters repeated between consecutive fixed-size windows; must be below chunk_size",
					"minimum":     0,
				},
				"include_content": map[string]interface{}{
					"type":        "boolean",
					"description": "If false, omit chunk bodies and return only positions and counts",
					"default":     true,
				},
			},
			Required: []string{"path", "strategy"},
		},
	}
}

// compareStrategiesTool returns the tool definition for compare_strategies
func compareStrategiesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "compare_strategies",
		Description: "Run every chunking strategy over the same text and report per-strategy statistics",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "The text to chunk",
				},
				"chunk_size": map[string]interface{}{
					"type":        "integer",
					"description": "Target maximum chunk length in characters (default from server config)",
					"minimum":     1,
				},
				"overlap": map[string]interface{}{
					"type":        "integer",
					"description": "Overlap for the fixed strategy; must be below chunk_size",
					"minimum":     0,
				},
			},
			Required: []string{"text"},
		},
	}
}

// listStrategiesTool returns the tool definition for list_strategies
func listStrategiesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_strategies",
		Description: "List the available chunking strategies",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
