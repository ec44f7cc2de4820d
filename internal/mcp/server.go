// Package mcp assembles the MCP server: tool registration with shared
// middleware, markdown resources, prompt templates, and the streamable HTTP
// transport.
package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
	"github.com/socialops/ayrshare-mcp/internal/health"
	"github.com/socialops/ayrshare-mcp/internal/mcp/tools"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	Client  *ayrshare.Client
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"Ayrshare Social Media API",
		health.ServerVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
	)

	toolDefinitions := tools.Definitions()
	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		guarded := withGuards(name, cfg.Limiter, cfg.Logger.WithName("tools"), adapter)
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return guarded.ToolAdapter(ctx, req)
		})
	}

	registerResources(mcpServer, cfg.Client)
	registerPrompts(mcpServer)

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
		Client:  cfg.Client,
	}
}

func (s *Server) Close() {
	if s.Client != nil {
		s.Client.Close()
	}
}
