package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ServerHealthHandler reports the server's own health snapshot. It takes a
// snapshot func rather than a client so it works without API credentials.
type ServerHealthHandler struct {
	Snapshot func() map[string]any
}

func (h *ServerHealthHandler) ToolAdapter(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.Snapshot()), nil
}
