// Package server provides the MCP server implementation for the counterdemo
// service.
package server

// CounterToolServer defines the interface for the MCP server that handles
// counter tool calls from MCP clients.
type CounterToolServer interface {
	// Initialize initializes the server and registers the counter tools.
	Initialize() error

	// Start starts the MCP server on the stdio transport.
	Start() error

	// Stop gracefully shuts down the MCP server.
	Stop() error
}
