package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialops/ayrshare-mcp/internal/mcp/tools"
)

func TestDefaultConfigWiresEveryTool(t *testing.T) {
	t.Setenv("AYRSHARE_API_KEY", "test-key")

	cfg := DefaultConfig()
	defs := tools.Definitions()

	require.Len(t, cfg.ToolAdapters, len(defs))
	for name := range cfg.ToolAdapters {
		_, ok := defs[name]
		assert.True(t, ok, "adapter %q has no tool definition", name)
	}
	for name := range defs {
		_, ok := cfg.ToolAdapters[name]
		assert.True(t, ok, "tool %q has no adapter", name)
	}

	require.NotNil(t, cfg.Client)
	require.NotNil(t, cfg.Limiter)
	cfg.Client.Close()
}

func TestNewBuildsServer(t *testing.T) {
	t.Setenv("AYRSHARE_API_KEY", "test-key")

	srv := New(DefaultConfig())
	defer srv.Close()

	assert.NotNil(t, srv.MCP)
	assert.NotNil(t, srv.HTTP)
	assert.NotNil(t, srv.Handler)
	assert.NotNil(t, srv.Client)
}

func TestCloseWithoutClient(t *testing.T) {
	s := &Server{}
	s.Close()
}
