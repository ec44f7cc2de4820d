package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
	"github.com/socialops/ayrshare-mcp/internal/logging"
	"github.com/socialops/ayrshare-mcp/internal/ratelimit"
)

func decodeEnvelope(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	return out
}

func TestWithGuardsPassesResultThrough(t *testing.T) {
	next := ToolAdapterFunc(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(`{"status":"success"}`), nil
	})
	guarded := withGuards("test_tool", ratelimit.New(10, 100), logging.New(logr.Discard()), next)

	res, err := guarded.ToolAdapter(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	out := decodeEnvelope(t, res)
	assert.Equal(t, "success", out["status"])
}

func TestWithGuardsRateLimit(t *testing.T) {
	var calls int
	next := ToolAdapterFunc(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		calls++
		return mcp.NewToolResultText(`{"status":"success"}`), nil
	})
	guarded := withGuards("test_tool", ratelimit.New(1, 100), logging.New(logr.Discard()), next)

	_, err := guarded.ToolAdapter(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)

	res, err := guarded.ToolAdapter(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	out := decodeEnvelope(t, res)
	assert.Equal(t, "error", out["status"])
	assert.Equal(t, "Rate limit exceeded: 1 requests per minute", out["error"])
	assert.Equal(t, "rate_limit", out["error_type"])
	// The limited call never reaches the adapter.
	assert.Equal(t, 1, calls)
}

func TestWithGuardsConvertsClientError(t *testing.T) {
	t.Setenv("AYRSHARE_API_KEY", "")
	_, authErr := ayrshare.New("", "")
	require.Error(t, authErr)

	next := ToolAdapterFunc(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, authErr
	})
	guarded := withGuards("test_tool", ratelimit.New(10, 100), logging.New(logr.Discard()), next)

	res, err := guarded.ToolAdapter(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	out := decodeEnvelope(t, res)
	assert.Equal(t, "error", out["status"])
	assert.Equal(t, authErr.Error(), out["message"])
	assert.Equal(t, "authentication", out["error_type"])
}

func TestWithGuardsUnknownErrorDefaultsToAPI(t *testing.T) {
	next := ToolAdapterFunc(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, errors.New("something odd")
	})
	guarded := withGuards("test_tool", ratelimit.New(10, 100), logging.New(logr.Discard()), next)

	res, err := guarded.ToolAdapter(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	out := decodeEnvelope(t, res)
	assert.Equal(t, "something odd", out["message"])
	assert.Equal(t, "api", out["error_type"])
}

func TestWithGuardsNilLimiter(t *testing.T) {
	next := ToolAdapterFunc(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(`{"status":"success"}`), nil
	})
	guarded := withGuards("test_tool", nil, logging.New(logr.Discard()), next)

	res, err := guarded.ToolAdapter(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	out := decodeEnvelope(t, res)
	assert.Equal(t, "success", out["status"])
}
