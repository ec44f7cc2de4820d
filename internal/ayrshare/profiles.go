package ayrshare

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// ProfileOptions describes a new user profile for multi-tenant accounts.
type ProfileOptions struct {
	Title           string
	MessagingActive *bool
	Team            []string
	Email           string
	DisableSocial   []string
	Tags            []string
}

// CreateProfile provisions a new user profile under the account.
func (c *Client) CreateProfile(ctx context.Context, opts ProfileOptions) (map[string]any, error) {
	body := map[string]any{"title": opts.Title}
	if opts.MessagingActive != nil {
		body["messagingActive"] = *opts.MessagingActive
	}
	if len(opts.Team) > 0 {
		body["team"] = opts.Team
	}
	if opts.Email != "" {
		body["email"] = opts.Email
	}
	if len(opts.DisableSocial) > 0 {
		body["disableSocial"] = opts.DisableSocial
	}
	if len(opts.Tags) > 0 {
		body["tags"] = opts.Tags
	}
	return c.object(ctx, "POST", "/profiles/profile", body, nil)
}

// ListProfilesOptions filters the profile listing. Multi-valued platform
// filters fold into a single comma-joined query parameter on the wire.
type ListProfilesOptions struct {
	Title                string
	RefID                string
	HasActiveSocial      *bool
	IncludesActiveSocial []string
	ActionLog            *bool
	Limit                int
	Cursor               string
}

// ListProfiles lists user profiles with filtering and cursor pagination.
func (c *Client) ListProfiles(ctx context.Context, opts ListProfilesOptions) ([]map[string]any, error) {
	params := url.Values{}
	if opts.Title != "" {
		params.Set("title", opts.Title)
	}
	if opts.RefID != "" {
		params.Set("refId", opts.RefID)
	}
	if opts.HasActiveSocial != nil {
		params.Set("hasActiveSocial", strconv.FormatBool(*opts.HasActiveSocial))
	}
	if len(opts.IncludesActiveSocial) > 0 {
		params.Set("includesActiveSocial", strings.Join(opts.IncludesActiveSocial, ","))
	}
	if opts.ActionLog != nil {
		params.Set("actionLog", strconv.FormatBool(*opts.ActionLog))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		params.Set("cursor", opts.Cursor)
	}
	raw, err := c.request(ctx, "GET", "/profiles", nil, params)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "profiles")
}

// Profiles lists the connected profiles without filters.
func (c *Client) Profiles(ctx context.Context) ([]map[string]any, error) {
	raw, err := c.request(ctx, "GET", "/profiles", nil, nil)
	if err != nil {
		return nil, err
	}
	return objectList(raw, "profiles")
}

// ProfileDetails fetches one profile by its profile key.
func (c *Client) ProfileDetails(ctx context.Context, profileKey string) (map[string]any, error) {
	return c.object(ctx, "GET", "/profiles/"+profileKey, nil, nil)
}

// UpdateProfile patches profile settings. The settings map uses the remote
// wire spellings (title, messagingActive, team, email, ...).
func (c *Client) UpdateProfile(ctx context.Context, profileKey string, settings map[string]any) (map[string]any, error) {
	return c.object(ctx, "PATCH", "/profiles/"+profileKey, settings, nil)
}

// DeleteProfile removes a user profile and its history.
func (c *Client) DeleteProfile(ctx context.Context, profileKey string) (map[string]any, error) {
	return c.object(ctx, "DELETE", "/profiles/"+profileKey, nil, nil)
}
