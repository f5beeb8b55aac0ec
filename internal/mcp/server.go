// ABOUTME: MCP server setup for the coach session store.
// ABOUTME: Exposes logging and query tools for the logged-in user over stdio.
package mcp

import (
	"context"

	"github.com/harperreed/coach/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with session store access. All tools operate
// on the currently logged-in user.
type Server struct {
	mcpServer *mcp.Server
	store     *session.Store
}

// NewServer creates a new MCP server over an active session.
func NewServer(store *session.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "coach",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
