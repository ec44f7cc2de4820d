package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidPlatforms(t *testing.T) {
	assert.Empty(t, invalidPlatforms([]string{"twitter", "facebook", "gmb"}))
	assert.Empty(t, invalidPlatforms([]string{"x", "X", "Twitter"}))
	assert.Equal(t, []string{"MySpace"}, invalidPlatforms([]string{"MySpace", "bluesky"}))
	assert.Empty(t, invalidPlatforms(nil))
}

func TestStringSliceArg(t *testing.T) {
	args := map[string]any{
		"platforms": []any{"twitter", 42, "facebook"},
	}
	assert.Equal(t, []string{"twitter", "facebook"}, stringSliceArg(args, "platforms"))
	assert.Nil(t, stringSliceArg(args, "missing"))
}

func TestIntArg(t *testing.T) {
	args := map[string]any{"limit": float64(7)}
	assert.Equal(t, 7, intArg(args, "limit", 10))
	assert.Equal(t, 10, intArg(args, "missing", 10))
}

func TestBoolPtrArg(t *testing.T) {
	args := map[string]any{"shorten_links": false}
	ptr := boolPtrArg(args, "shorten_links")
	require.NotNil(t, ptr)
	assert.False(t, *ptr)
	assert.Nil(t, boolPtrArg(args, "missing"))
}

func TestPlatformsOrAll(t *testing.T) {
	assert.Equal(t, any("all"), platformsOrAll(nil))
	assert.Equal(t, any([]string{"twitter"}), platformsOrAll([]string{"twitter"}))
}

func TestOrNil(t *testing.T) {
	assert.Nil(t, orNil(""))
	assert.Equal(t, any("v"), orNil("v"))
}

func TestDefinitionsCoverAllTools(t *testing.T) {
	defs := Definitions()
	assert.Len(t, defs, 76)
	for name, tool := range defs {
		assert.Equal(t, name, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %s has no description", name)
	}
}

func TestListPlatformsCatalog(t *testing.T) {
	h := &ListPlatformsHandler{}

	res, err := h.ToolAdapter(context.Background(), callRequest(nil))
	require.NoError(t, err)

	out := decodeResult(t, res)
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, float64(13), out["total_platforms"])

	platforms, ok := out["platforms"].(map[string]any)
	require.True(t, ok)
	twitter, ok := platforms["twitter"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(280), twitter["max_chars"])
	assert.Equal(t, []any{"x"}, twitter["alternatives"])
}
