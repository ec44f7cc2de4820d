package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
	"github.com/socialops/ayrshare-mcp/internal/logging"
	"github.com/socialops/ayrshare-mcp/internal/ratelimit"
)

// ToolAdapterFunc adapts a plain function to the ToolAdapter interface.
type ToolAdapterFunc func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

func (f ToolAdapterFunc) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return f(ctx, req)
}

// withGuards wraps a tool adapter with the shared per-call concerns: the
// rate limiter, timing logs, and conversion of client errors into the JSON
// error envelope. Adapters stay free of these concerns; a returned error is
// always turned into a result here, never surfaced as a protocol failure.
func withGuards(name string, limiter *ratelimit.Limiter, log logging.Logger, next ToolAdapter) ToolAdapter {
	return ToolAdapterFunc(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if limiter != nil {
			if ok, msg := limiter.Allow(); !ok {
				log.Info("rate limit exceeded", "tool", name)
				return envelope(map[string]any{
					"status":     "error",
					"error":      msg,
					"error_type": "rate_limit",
				}), nil
			}
		}

		start := time.Now()
		result, err := next.ToolAdapter(ctx, req)
		elapsed := time.Since(start).Seconds()

		if err != nil {
			kind := ayrshare.KindAPI
			if k, ok := ayrshare.KindOf(err); ok {
				kind = k
			}
			log.Error(err, "tool call failed",
				"tool", name, "duration_seconds", elapsed, "success", false)
			return envelope(map[string]any{
				"status":     "error",
				"message":    err.Error(),
				"error_type": kind.String(),
			}), nil
		}

		log.Debug("tool call completed",
			"tool", name, "duration_seconds", elapsed, "success", true)
		return result, nil
	})
}

func envelope(v map[string]any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultText(`{"status":"error","message":"internal encoding failure","error_type":"api"}`)
	}
	return mcp.NewToolResultText(string(data))
}
