package mcp

import (
	"context"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/splitkit/splitkit/internal/chunker"
	"github.com/splitkit/splitkit/internal/config"
)

const (
	// ServerName is the MCP server name
	ServerName = "splitkit-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the chunking engine and its defaults
type Server struct {
	mcp      *server.MCPServer
	engine   *chunker.Engine
	defaults *config.Config
}

// NewServer creates a new MCP server instance
func NewServer(defaults *config.Config) (*Server, error) {
	if defaults == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		defaults = loaded
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:      mcpServer,
		engine:   chunker.New(),
		defaults: defaults,
	}
	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until the context is
// canceled or the input stream closes
func (s *Server) Serve(ctx context.Context) error {
	return s.serve(ctx, os.Stdin, os.Stdout)
}

func (s *Server) serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(chunkTextTool(), s.handleChunkText)
	s.mcp.AddTool(chunkDocumentTool(), s.handleChunkDocument)
	s.mcp.AddTool(compareStrategiesTool(), s.handleCompareStrategies)
	s.mcp.AddTool(listStrategiesTool(), s.handleListStrategies)
}
