// Package mcp implements the Model Context Protocol server for splitkit.
//
// The server exposes the chunking engine over MCP stdio transport so that
// AI assistants can split text and documents into retrieval-sized chunks.
//
// # Tools
//
// The server registers four tools:
//
//   - chunk_text: split an inline text string with a chosen strategy
//   - chunk_document: extract a file (text, markdown, or PDF) and chunk it
//   - compare_strategies: run every strategy over the same text and report
//     per-strategy chunk statistics without chunk bodies
//   - list_strategies: enumerate the available strategies and the server's
//     configured defaults
//
// # Responses
//
// All tool responses are indented JSON. chunk_text and chunk_document
// return the full export payload including chunk contents and offsets;
// chunk_document accepts include_content=false to elide the bodies when
// only the structure is of interest.
//
// # Errors
//
// Errors follow JSON-RPC conventions: -32602 for invalid parameters,
// -32603 for internal failures, plus server-specific codes for rejected
// chunking configurations (-32001) and extraction failures (-32002).
// Error data includes the offending parameter where applicable.
//
// # Transport
//
// The server communicates over stdio. Standard output carries protocol
// frames only; all diagnostics go to standard error.
package mcp
