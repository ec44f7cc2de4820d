package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// platformCatalog is the static capability matrix returned by list_platforms.
var platformCatalog = map[string]map[string]any{
	"facebook": {
		"name":                "Facebook",
		"supports_images":     true,
		"supports_videos":     true,
		"supports_scheduling": true,
		"max_chars":           63206,
	},
	"instagram": {
		"name":                "Instagram",
		"supports_images":     true,
		"supports_videos":     true,
		"supports_scheduling": true,
		"max_chars":           2200,
		"notes":               "Requires business account",
	},
	"twitter": {
		"name":                "Twitter/X",
		"supports_images":     true,
		"supports_videos":     true,
		"supports_scheduling": true,
		"max_chars":           280,
		"alternatives":        []string{"x"},
	},
	"linkedin": {
		"name":                "LinkedIn",
		"supports_images":     true,
		"supports_videos":     true,
		"supports_scheduling": true,
		"max_chars":           3000,
	},
	"tiktok": {
		"name":                "TikTok",
		"supports_images":     false,
		"supports_videos":     true,
		"supports_scheduling": true,
		"notes":               "Videos only",
	},
	"youtube": {
		"name":                "YouTube",
		"supports_images":     false,
		"supports_videos":     true,
		"supports_scheduling": true,
		"notes":               "Video uploads only",
	},
	"pinterest": {
		"name":                "Pinterest",
		"supports_images":     true,
		"supports_videos":     true,
		"supports_scheduling": true,
	},
	"reddit": {
		"name":                "Reddit",
		"supports_images":     true,
		"supports_videos":     true,
		"supports_scheduling": true,
	},
	"snapchat": {
		"name":                "Snapchat",
		"supports_images":     true,
		"supports_videos":     true,
		"supports_scheduling": true,
	},
	"telegram": {
		"name":                "Telegram",
		"supports_images":     true,
		"supports_videos":     true,
		"supports_scheduling": true,
	},
	"threads": {
		"name":                "Threads",
		"supports_images":     true,
		"supports_videos":     true,
		"supports_scheduling": true,
		"max_chars":           500,
	},
	"bluesky": {
		"name":                "Bluesky",
		"supports_images":     true,
		"supports_videos":     false,
		"supports_scheduling": true,
		"max_chars":           300,
	},
	"gmb": {
		"name":                "Google Business Profile",
		"supports_images":     true,
		"supports_videos":     true,
		"supports_scheduling": true,
		"notes":               "Formerly Google My Business",
	},
}

// ListPlatformsHandler serves the static platform capability catalog. It
// never touches the API.
type ListPlatformsHandler struct{}

func (h *ListPlatformsHandler) ToolAdapter(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"status":          "success",
		"total_platforms": len(platformCatalog),
		"platforms":       platformCatalog,
	}), nil
}
