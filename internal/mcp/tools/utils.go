// Package tools holds the MCP tool handlers for the Ayrshare surface. Each
// handler depends on a narrow service interface satisfied by the API client,
// coerces the request arguments, and renders the JSON result envelope.
package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// SupportedPlatforms lists the platform names accepted by the posting tools.
// "x" is additionally accepted as an alias for twitter.
var SupportedPlatforms = []string{
	"facebook",
	"instagram",
	"twitter",
	"linkedin",
	"tiktok",
	"youtube",
	"pinterest",
	"reddit",
	"snapchat",
	"telegram",
	"threads",
	"bluesky",
	"gmb",
}

var platformSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(SupportedPlatforms)+1)
	for _, p := range SupportedPlatforms {
		set[p] = struct{}{}
	}
	set["x"] = struct{}{}
	return set
}()

// invalidPlatforms returns the entries that are not in the supported set.
// Matching is case-insensitive; the original spellings come back unchanged.
func invalidPlatforms(platforms []string) []string {
	var invalid []string
	for _, p := range platforms {
		if _, ok := platformSet[strings.ToLower(p)]; !ok {
			invalid = append(invalid, p)
		}
	}
	return invalid
}

// invalidPlatformsResult renders the short-circuit envelope for a request
// naming unsupported platforms. No API call is made.
func invalidPlatformsResult(invalid []string) *mcp.CallToolResult {
	return jsonResult(map[string]any{
		"status":              "error",
		"message":             fmt.Sprintf("Invalid platforms: %s", strings.Join(invalid, ", ")),
		"error_type":          "validation",
		"supported_platforms": SupportedPlatforms,
	})
}

func validationError(message string) *mcp.CallToolResult {
	return jsonResult(map[string]any{
		"status":     "error",
		"message":    message,
		"error_type": "validation",
	})
}

// jsonResult renders v as the tool's JSON text payload.
func jsonResult(v any) *mcp.CallToolResult {
	return mcp.NewToolResultText(string(mustMarshal(v)))
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func stringSliceArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func intArg(args map[string]any, key string, def int) int {
	if raw, ok := args[key].(float64); ok {
		return int(raw)
	}
	return def
}

func floatArg(args map[string]any, key string) (float64, bool) {
	raw, ok := args[key].(float64)
	return raw, ok
}

func boolArg(args map[string]any, key string, def bool) bool {
	if raw, ok := args[key].(bool); ok {
		return raw
	}
	return def
}

// boolPtrArg distinguishes "absent" from an explicit false.
func boolPtrArg(args map[string]any, key string) *bool {
	if raw, ok := args[key].(bool); ok {
		return &raw
	}
	return nil
}

func mapArg(args map[string]any, key string) map[string]any {
	v, _ := args[key].(map[string]any)
	return v
}

// platformsOrAll echoes the requested platform filter, or "all" when the
// caller did not narrow it.
func platformsOrAll(platforms []string) any {
	if len(platforms) == 0 {
		return "all"
	}
	return platforms
}

// orDefault echoes an optional string argument, substituting def when empty.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// orNil echoes an optional string argument as JSON null when absent.
func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
