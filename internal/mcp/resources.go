package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
)

// registerResources exposes the read-only markdown views: post history,
// connected profiles, the analytics dashboard, the content calendar, and the
// multi-tenant profiles overview. API failures surface as readable text in
// the resource body rather than protocol errors.
func registerResources(s *server.MCPServer, client *ayrshare.Client) {
	s.AddResource(mcp.NewResource(
		"ayrshare://history",
		"Post History",
		mcp.WithResourceDescription("Last 30 days of posts across all connected platforms, including content, status, and scheduling."),
		mcp.WithMIMEType("text/markdown"),
	), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return markdown(req.Params.URI, historyDocument(ctx, client)), nil
	})

	s.AddResource(mcp.NewResource(
		"ayrshare://platforms",
		"Connected Platforms",
		mcp.WithResourceDescription("Connected social media profiles and which accounts are available for posting."),
		mcp.WithMIMEType("text/markdown"),
	), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return markdown(req.Params.URI, platformsDocument(ctx, client)), nil
	})

	s.AddResourceTemplate(mcp.NewResourceTemplate(
		"ayrshare://analytics/dashboard/{period}",
		"Analytics Dashboard",
		mcp.WithTemplateDescription("Aggregated posting metrics for a period: daily, weekly, monthly, or quarterly."),
		mcp.WithTemplateMIMEType("text/markdown"),
	), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		period := strings.TrimPrefix(req.Params.URI, "ayrshare://analytics/dashboard/")
		return markdown(req.Params.URI, dashboardDocument(ctx, client, period)), nil
	})

	s.AddResourceTemplate(mcp.NewResourceTemplate(
		"ayrshare://calendar/{year}/{month}",
		"Content Calendar",
		mcp.WithTemplateDescription("Scheduled posts for a month in a calendar view, e.g. ayrshare://calendar/2025/09."),
		mcp.WithTemplateMIMEType("text/markdown"),
	), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		rest := strings.TrimPrefix(req.Params.URI, "ayrshare://calendar/")
		year, month, _ := strings.Cut(rest, "/")
		return markdown(req.Params.URI, calendarDocument(ctx, client, year, month)), nil
	})

	s.AddResource(mcp.NewResource(
		"ayrshare://profiles/overview",
		"Profiles Overview",
		mcp.WithResourceDescription("All customer profiles with connected platforms and activity status for multi-tenant management."),
		mcp.WithMIMEType("text/markdown"),
	), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return markdown(req.Params.URI, profilesOverviewDocument(ctx, client)), nil
	})
}

func markdown(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{mcp.TextResourceContents{
		URI:      uri,
		MIMEType: "text/markdown",
		Text:     text,
	}}
}

func historyDocument(ctx context.Context, client *ayrshare.Client) string {
	history, err := client.History(ctx, 30, 0)
	if err != nil {
		return fmt.Sprintf("Error fetching history: %s", err)
	}
	if len(history) == 0 {
		return "No posts found in the last 30 days."
	}

	lines := []string{"# Post History (Last 30 Days)\n"}
	for _, post := range history {
		lines = append(lines,
			fmt.Sprintf("## Post ID: %s", field(post, "id")),
			fmt.Sprintf("Status: %s", field(post, "status")),
			fmt.Sprintf("Platforms: %s", strings.Join(stringsField(post, "platforms"), ", ")),
			fmt.Sprintf("Created: %s", field(post, "created")),
		)
		if content, ok := post["post"].(string); ok && content != "" {
			lines = append(lines, fmt.Sprintf("Content: %s...", truncate(content, 100)))
		}
		if scheduled, ok := post["scheduled"].(string); ok && scheduled != "" {
			lines = append(lines, fmt.Sprintf("Scheduled for: %s", scheduled))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func platformsDocument(ctx context.Context, client *ayrshare.Client) string {
	profiles, err := client.Profiles(ctx)
	if err != nil {
		return fmt.Sprintf("Error fetching profiles: %s", err)
	}
	if len(profiles) == 0 {
		return "No connected profiles found. Please connect social media accounts in the Ayrshare dashboard."
	}

	lines := []string{"# Connected Social Media Profiles\n"}
	for _, profile := range profiles {
		title := field(profile, "title")
		if title == "N/A" {
			title = "Unnamed Profile"
		}
		lines = append(lines,
			fmt.Sprintf("## Profile: %s", title),
			fmt.Sprintf("Profile Key: %s", field(profile, "profileKey")),
		)

		accounts, _ := profile["connectedAccounts"].([]any)
		if len(accounts) > 0 {
			lines = append(lines, fmt.Sprintf("Connected Platforms (%d):", len(accounts)))
			for _, a := range accounts {
				account, ok := a.(map[string]any)
				if !ok {
					continue
				}
				name := field(account, "platform")
				if name == "N/A" {
					name = "Unknown"
				}
				status, _ := account["status"].(string)
				if status == "" {
					status = "unknown"
				}
				handle, _ := account["account"].(string)
				lines = append(lines, fmt.Sprintf("  - %s: %s (%s)", name, handle, status))
			}
		} else {
			lines = append(lines, "No platforms connected to this profile.")
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func dashboardDocument(ctx context.Context, client *ayrshare.Client, period string) string {
	periodDays := map[string]int{
		"daily":     1,
		"weekly":    7,
		"monthly":   30,
		"quarterly": 90,
	}
	days, ok := periodDays[period]
	if !ok {
		days = 7
	}

	history, err := client.History(ctx, days, 0)
	if err != nil {
		return fmt.Sprintf("Error fetching analytics dashboard: %s", err)
	}
	if len(history) == 0 {
		return fmt.Sprintf("No data available for %s period.", period)
	}

	totalPosts := len(history)
	var successful, failed, scheduled int
	platformCounts := map[string]int{}
	for _, post := range history {
		switch field(post, "status") {
		case "success":
			successful++
		case "error", "failed":
			failed++
		case "scheduled", "pending":
			scheduled++
		}
		for _, p := range stringsField(post, "platforms") {
			platformCounts[p]++
		}
	}

	platformNames := make([]string, 0, len(platformCounts))
	for p := range platformCounts {
		platformNames = append(platformNames, p)
	}
	sort.Strings(platformNames)

	perDay := float64(totalPosts) / float64(days)
	consistency := "Low"
	if perDay >= 2 {
		consistency = "High"
	} else if perDay >= 1 {
		consistency = "Medium"
	}

	lines := []string{
		fmt.Sprintf("# Analytics Dashboard - %s Report", titleCase(period)),
		fmt.Sprintf("*Data for last %d days*\n", days),
		"## Overview",
		fmt.Sprintf("- **Total Posts**: %d", totalPosts),
		fmt.Sprintf("- **Successful**: %d (%.1f%%)", successful, percent(successful, totalPosts)),
		fmt.Sprintf("- **Failed**: %d", failed),
		fmt.Sprintf("- **Scheduled**: %d", scheduled),
		fmt.Sprintf("- **Platforms Used**: %d (%s)\n", len(platformNames), strings.Join(platformNames, ", ")),
		"## Performance Metrics",
		fmt.Sprintf("- **Success Rate**: %.1f%%", percent(successful, totalPosts)),
		fmt.Sprintf("- **Average Posts per Day**: %.1f", perDay),
		fmt.Sprintf("- **Posting Consistency**: %s\n", consistency),
	}

	if len(platformCounts) > 0 {
		lines = append(lines, "## Platform Breakdown")
		type platformCount struct {
			name  string
			count int
		}
		sorted := make([]platformCount, 0, len(platformCounts))
		for name, count := range platformCounts {
			sorted = append(sorted, platformCount{name, count})
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].count > sorted[j].count })
		for i, pc := range sorted {
			if i == 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("- **%s**: %d posts (%.1f%%)",
				titleCase(pc.name), pc.count, percent(pc.count, totalPosts)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## Recent Activity")
	for i, post := range history {
		if i == 5 {
			break
		}
		created := field(post, "created")
		if created == "N/A" {
			created = "Unknown date"
		}
		status, _ := post["status"].(string)
		if status == "" {
			status = "unknown"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s on %s",
			created, titleCase(status), strings.Join(stringsField(post, "platforms"), ", ")))
	}
	return strings.Join(lines, "\n")
}

func calendarDocument(ctx context.Context, client *ayrshare.Client, year, month string) string {
	scheduled, err := client.ScheduledPosts(ctx)
	if err != nil {
		return fmt.Sprintf("Error fetching content calendar: %s", err)
	}

	prefix := year + "-" + month
	byDate := map[string][]map[string]any{}
	var total int
	for _, post := range scheduled {
		date, _ := post["scheduleDate"].(string)
		if !strings.HasPrefix(date, prefix) {
			continue
		}
		day, _, _ := strings.Cut(date, "T")
		byDate[day] = append(byDate[day], post)
		total++
	}
	if total == 0 {
		return fmt.Sprintf("No scheduled posts found for %s-%s.", year, month)
	}

	lines := []string{
		fmt.Sprintf("# Content Calendar - %s/%s", year, month),
		fmt.Sprintf("*%d scheduled posts*\n", total),
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, date := range dates {
		dayPosts := byDate[date]
		lines = append(lines, fmt.Sprintf("## %s (%d posts)", date, len(dayPosts)))
		for _, post := range dayPosts {
			scheduleDate, _ := post["scheduleDate"].(string)
			timePart := "00:00"
			if _, after, found := strings.Cut(scheduleDate, "T"); found && len(after) >= 5 {
				timePart = after[:5]
			}
			platforms := strings.Join(stringsField(post, "platforms"), ", ")
			content, _ := post["post"].(string)
			if utf8.RuneCountInString(content) > 60 {
				content = truncate(content, 60) + "..."
			}
			lines = append(lines, fmt.Sprintf("- **%s** [%s]: %s", timePart, platforms, content))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func profilesOverviewDocument(ctx context.Context, client *ayrshare.Client) string {
	hasActive := true
	profiles, err := client.ListProfiles(ctx, ayrshare.ListProfilesOptions{
		HasActiveSocial: &hasActive,
		Limit:           100,
	})
	if err != nil {
		return fmt.Sprintf("Error fetching profiles overview: %s", err)
	}
	if len(profiles) == 0 {
		return "No customer profiles found. Create profiles using the create_user_profile tool."
	}

	var totalPlatforms, active, inactive int
	for _, profile := range profiles {
		if connected := stringsField(profile, "activeSocialAccounts"); len(connected) > 0 {
			active++
			totalPlatforms += len(connected)
		} else {
			inactive++
		}
	}

	avgLine := "- **Average Platforms per Profile**: 0"
	if active > 0 {
		avgLine = fmt.Sprintf("- **Average Platforms per Profile**: %.1f", float64(totalPlatforms)/float64(active))
	}

	lines := []string{
		"# Customer Profiles Overview",
		fmt.Sprintf("*Total Profiles: %d*\n", len(profiles)),
		"## Summary",
		fmt.Sprintf("- **Active Profiles**: %d", active),
		fmt.Sprintf("- **Inactive Profiles**: %d", inactive),
		fmt.Sprintf("- **Total Connected Platforms**: %d", totalPlatforms),
		avgLine + "\n",
		"## Profile Details",
	}

	for _, profile := range profiles {
		title := field(profile, "title")
		if title == "N/A" {
			title = "Unnamed Profile"
		}
		created := field(profile, "created")
		if created == "N/A" {
			created = "Unknown"
		}
		lines = append(lines,
			fmt.Sprintf("\n### %s", title),
			fmt.Sprintf("- **Ref ID**: %s", field(profile, "refId")),
			fmt.Sprintf("- **Created**: %s", created),
		)
		if platforms := stringsField(profile, "activeSocialAccounts"); len(platforms) > 0 {
			lines = append(lines, fmt.Sprintf("- **Connected Platforms** (%d): %s",
				len(platforms), strings.Join(platforms, ", ")))
		} else {
			lines = append(lines, "- **Connected Platforms**: None")
		}
	}
	return strings.Join(lines, "\n")
}

func field(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return "N/A"
}

func stringsField(m map[string]any, key string) []string {
	raw, _ := m[key].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
