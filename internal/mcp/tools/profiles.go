package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
)

// ProfileService covers multi-tenant user profile management.
type ProfileService interface {
	CreateProfile(ctx context.Context, opts ayrshare.ProfileOptions) (map[string]any, error)
	ListProfiles(ctx context.Context, opts ayrshare.ListProfilesOptions) ([]map[string]any, error)
	ProfileDetails(ctx context.Context, profileKey string) (map[string]any, error)
	UpdateProfile(ctx context.Context, profileKey string, settings map[string]any) (map[string]any, error)
	DeleteProfile(ctx context.Context, profileKey string) (map[string]any, error)
}

type CreateProfileHandler struct{ Service ProfileService }

func (h *CreateProfileHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	title := stringArg(args, "title")

	result, err := h.Service.CreateProfile(ctx, ayrshare.ProfileOptions{
		Title:           title,
		MessagingActive: boolPtrArg(args, "messaging_active"),
		Team:            stringSliceArg(args, "team"),
		Email:           stringArg(args, "email"),
		DisableSocial:   stringSliceArg(args, "disable_social"),
		Tags:            stringSliceArg(args, "tags"),
	})
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"profile_key": result["profileKey"],
		"title":       title,
		"result":      result,
	}), nil
}

type ListProfilesHandler struct{ Service ProfileService }

func (h *ListProfilesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	profiles, err := h.Service.ListProfiles(ctx, ayrshare.ListProfilesOptions{
		Title:                stringArg(args, "title"),
		RefID:                stringArg(args, "ref_id"),
		HasActiveSocial:      boolPtrArg(args, "has_active_social"),
		IncludesActiveSocial: stringSliceArg(args, "includes_active_social"),
		Limit:                intArg(args, "limit", 0),
	})
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":         "success",
		"total_profiles": len(profiles),
		"profiles":       profiles,
	}), nil
}

type ProfileDetailsHandler struct{ Service ProfileService }

func (h *ProfileDetailsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.ProfileDetails(ctx, stringArg(req.GetArguments(), "profile_key"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":  "success",
		"profile": result,
	}), nil
}

type UpdateProfileHandler struct{ Service ProfileService }

func (h *UpdateProfileHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	profileKey := stringArg(args, "profile_key")

	result, err := h.Service.UpdateProfile(ctx, profileKey, mapArg(args, "settings"))
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"profile_key": profileKey,
		"updated":     true,
		"result":      result,
	}), nil
}

type DeleteProfileHandler struct{ Service ProfileService }

func (h *DeleteProfileHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileKey := stringArg(req.GetArguments(), "profile_key")

	result, err := h.Service.DeleteProfile(ctx, profileKey)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"profile_key": profileKey,
		"deleted":     true,
		"result":      result,
	}), nil
}
