package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type platformSpec struct {
	charLimit int
	tone      string
	hashtags  string
	style     string
}

var optimizeSpecs = map[string]platformSpec{
	"twitter": {
		charLimit: 280,
		tone:      "conversational and concise",
		hashtags:  "1-2 relevant hashtags",
		style:     "punchy and engaging",
	},
	"facebook": {
		charLimit: 63206,
		tone:      "friendly and personal",
		hashtags:  "minimal, focus on storytelling",
		style:     "detailed and engaging",
	},
	"linkedin": {
		charLimit: 3000,
		tone:      "professional and insightful",
		hashtags:  "3-5 professional hashtags",
		style:     "thought leadership and value-driven",
	},
	"instagram": {
		charLimit: 2200,
		tone:      "visual-first with engaging caption",
		hashtags:  "10-30 relevant hashtags",
		style:     "storytelling with emoji support",
	},
	"tiktok": {
		charLimit: 2200,
		tone:      "fun, trendy, authentic",
		hashtags:  "3-5 trending hashtags",
		style:     "attention-grabbing and relatable",
	},
}

type createSpec struct {
	charLimit     int
	bestPractices []string
	style         string
}

var createSpecs = map[string]createSpec{
	"twitter": {
		charLimit: 280,
		bestPractices: []string{
			"Be concise and punchy",
			"Use 1-2 relevant hashtags",
			"Include mentions when appropriate",
			"Front-load important information",
		},
		style: "conversational and concise",
	},
	"facebook": {
		charLimit: 63206,
		bestPractices: []string{
			"Tell a story",
			"Ask questions to encourage engagement",
			"Use minimal hashtags (0-2)",
			"Include emojis sparingly",
		},
		style: "friendly and engaging storytelling",
	},
	"linkedin": {
		charLimit: 3000,
		bestPractices: []string{
			"Lead with value and insights",
			"Use 3-5 professional hashtags",
			"Include data or statistics when relevant",
			"End with thought-provoking questions",
		},
		style: "professional thought leadership",
	},
	"instagram": {
		charLimit: 2200,
		bestPractices: []string{
			"Focus on visual storytelling",
			"Use 10-30 relevant hashtags",
			"Include emojis strategically",
			"Break text into readable chunks with line breaks",
		},
		style: "visual-first with engaging caption",
	},
	"tiktok": {
		charLimit: 2200,
		bestPractices: []string{
			"Be authentic and relatable",
			"Use 3-5 trending hashtags",
			"Keep it short and attention-grabbing",
			"Embrace trends and challenges",
		},
		style: "fun, trendy, and authentic",
	},
}

// registerPrompts adds the workflow templates: each returns a single user
// message instructing an LLM how to produce content for the social workflow.
func registerPrompts(s *server.MCPServer) {
	s.AddPrompt(mcp.NewPrompt("optimize_for_platform",
		mcp.WithPromptDescription("Rewrite post content to fit a specific platform's character limits, tone, and hashtag conventions."),
		mcp.WithArgument("post_content",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("The original post content to optimize"),
		),
		mcp.WithArgument("target_platform",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("The target platform (facebook, twitter, linkedin, instagram, etc.)"),
		),
	), func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		content := req.Params.Arguments["post_content"]
		platform := req.Params.Arguments["target_platform"]

		specs, ok := optimizeSpecs[strings.ToLower(platform)]
		if !ok {
			specs = platformSpec{
				charLimit: 2000,
				tone:      "engaging and platform-appropriate",
				hashtags:  "2-5 relevant hashtags",
				style:     "clear and compelling",
			}
		}

		text := fmt.Sprintf(`Optimize this social media post for %s:

Original Content:
%s

Platform Requirements for %s:
- Character Limit: %d
- Tone: %s
- Hashtag Strategy: %s
- Style: %s

Please create an optimized version that:
1. Fits within the character limit
2. Matches the platform's tone and culture
3. Includes appropriate hashtags
4. Maximizes engagement potential
5. Preserves the core message

Return ONLY the optimized post content, ready to publish.`,
			platform, content, platform,
			specs.charLimit, specs.tone, specs.hashtags, specs.style)

		return promptResult("Platform-optimized post content", text), nil
	})

	s.AddPrompt(mcp.NewPrompt("generate_hashtags",
		mcp.WithPromptDescription("Generate platform-appropriate hashtags for post content."),
		mcp.WithArgument("post_content",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("The post content to generate hashtags for"),
		),
		mcp.WithArgument("target_platforms",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Comma-separated list of target platforms"),
		),
		mcp.WithArgument("max_hashtags",
			mcp.ArgumentDescription("Maximum number of hashtags to generate (default: 5)"),
		),
	), func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		content := req.Params.Arguments["post_content"]
		platformList := joinList(req.Params.Arguments["target_platforms"])
		maxHashtags := req.Params.Arguments["max_hashtags"]
		if maxHashtags == "" {
			maxHashtags = "5"
		}

		text := fmt.Sprintf(`Generate relevant hashtags for this social media post:

Post Content:
%s

Target Platforms: %s
Maximum Hashtags: %s

Requirements:
1. Generate %s highly relevant hashtags
2. Mix of popular and niche hashtags
3. Consider platform-specific trends
4. Include industry/topic-specific tags
5. Avoid overused or spammy hashtags

Return hashtags in this format:
#hashtag1 #hashtag2 #hashtag3 ...

Focus on hashtags that will maximize reach and engagement on %s.`,
			content, platformList, maxHashtags, maxHashtags, platformList)

		return promptResult("Hashtag suggestions", text), nil
	})

	s.AddPrompt(mcp.NewPrompt("schedule_campaign",
		mcp.WithPromptDescription("Generate a comprehensive posting schedule for a multi-platform social media campaign."),
		mcp.WithArgument("campaign_name",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Name of the campaign"),
		),
		mcp.WithArgument("start_date",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Campaign start date (YYYY-MM-DD)"),
		),
		mcp.WithArgument("end_date",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Campaign end date (YYYY-MM-DD)"),
		),
		mcp.WithArgument("post_frequency",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Posting frequency (e.g., 'daily', 'twice daily', '3x per week')"),
		),
		mcp.WithArgument("platforms",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Comma-separated list of target platforms"),
		),
		mcp.WithArgument("campaign_goals",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Campaign objectives and goals"),
		),
	), func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := req.Params.Arguments
		platformList := joinList(args["platforms"])

		text := fmt.Sprintf(`Create a detailed social media campaign schedule:

Campaign Details:
- Name: %s
- Duration: %s to %s
- Posting Frequency: %s
- Platforms: %s
- Goals: %s

Please create a comprehensive schedule that includes:

1. **Posting Calendar**
   - Specific dates and times for each post
   - Platform-specific content for %s
   - Content themes for each post

2. **Content Strategy**
   - Post types (promotional, educational, engaging, etc.)
   - Content mix ratios
   - Platform-specific adaptations

3. **Engagement Strategy**
   - Peak posting times for each platform
   - Community interaction plan
   - Response templates

4. **Performance Tracking**
   - Key metrics to monitor
   - Success criteria
   - Adjustment triggers

Format the schedule as a detailed calendar with:
- Date/Time
- Platform(s)
- Post Type
- Content Theme
- Call-to-Action

Focus on achieving: %s`,
			args["campaign_name"], args["start_date"], args["end_date"],
			args["post_frequency"], platformList, args["campaign_goals"],
			platformList, args["campaign_goals"])

		return promptResult("Campaign schedule plan", text), nil
	})

	s.AddPrompt(mcp.NewPrompt("create_social_post",
		mcp.WithPromptDescription("Generate engaging, platform-optimized social media post content with proper formatting, hashtags, and CTAs."),
		mcp.WithArgument("topic",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("The main topic or subject of the post"),
		),
		mcp.WithArgument("platform",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Target platform (facebook, twitter, linkedin, instagram, tiktok)"),
		),
		mcp.WithArgument("tone",
			mcp.ArgumentDescription("Desired tone (professional, casual, funny, inspiring, educational)"),
		),
		mcp.WithArgument("target_audience",
			mcp.ArgumentDescription("Description of target audience"),
		),
		mcp.WithArgument("call_to_action",
			mcp.ArgumentDescription("Optional CTA to include"),
		),
		mcp.WithArgument("include_hashtags",
			mcp.ArgumentDescription("Whether to include hashtags (default: true)"),
		),
	), func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := req.Params.Arguments
		topic := args["topic"]
		platform := args["platform"]
		tone := args["tone"]
		if tone == "" {
			tone = "professional"
		}
		audience := args["target_audience"]
		if audience == "" {
			audience = "general"
		}

		specs, ok := createSpecs[strings.ToLower(platform)]
		if !ok {
			specs = createSpecs["facebook"]
		}

		parts := []string{
			fmt.Sprintf("Create an engaging social media post for %s:\n", titleCase(platform)),
			fmt.Sprintf("**Topic**: %s", topic),
			fmt.Sprintf("**Tone**: %s", tone),
			fmt.Sprintf("**Target Audience**: %s", audience),
			fmt.Sprintf("**Character Limit**: %d", specs.charLimit),
			fmt.Sprintf("**Style**: %s\n", specs.style),
			"**Best Practices for this platform**:",
		}
		for _, practice := range specs.bestPractices {
			parts = append(parts, "- "+practice)
		}

		parts = append(parts,
			"\n**Requirements**:",
			"1. Stay within character limit",
			fmt.Sprintf("2. Match the %s tone", tone),
			fmt.Sprintf("3. Appeal to %s", audience),
			"4. Optimize for engagement and shareability",
		)
		if cta := args["call_to_action"]; cta != "" {
			parts = append(parts, fmt.Sprintf("5. Include this call-to-action: %s", cta))
		}
		if args["include_hashtags"] != "false" {
			parts = append(parts, "6. Include platform-appropriate hashtags")
		}
		parts = append(parts,
			"\n**Output Format**:",
			"Return ONLY the final post text, ready to publish. Do not include any explanations or meta-commentary.",
		)

		return promptResult("Social media post draft", strings.Join(parts, "\n")), nil
	})

	s.AddPrompt(mcp.NewPrompt("analyze_performance",
		mcp.WithPromptDescription("Interpret analytics data and provide strategic recommendations for improving social media performance."),
		mcp.WithArgument("post_analytics",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("JSON or text with analytics data (engagement, reach, etc.)"),
		),
		mcp.WithArgument("time_period",
			mcp.ArgumentDescription("Time period covered by the data (default: 'last 30 days')"),
		),
		mcp.WithArgument("platform",
			mcp.ArgumentDescription("Specific platform or 'all platforms'"),
		),
	), func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := req.Params.Arguments
		analytics := args["post_analytics"]
		period := args["time_period"]
		if period == "" {
			period = "last 30 days"
		}
		platform := args["platform"]
		if platform == "" {
			platform = "all platforms"
		}

		text := fmt.Sprintf(`Analyze this social media performance data and provide actionable insights:

**Time Period**: %s
**Platform**: %s

**Analytics Data**:
%s

**Analysis Requirements**:

1. **Performance Overview**
   - Summarize key metrics (engagement rate, reach, impressions)
   - Identify best and worst performing content
   - Compare to industry benchmarks if possible

2. **Trends & Patterns**
   - What content types perform best?
   - What posting times show highest engagement?
   - Which platforms are most effective?
   - Are there any concerning trends?

3. **Audience Insights**
   - What does engagement tell us about the audience?
   - Which demographics are most responsive?
   - What topics resonate most?

4. **Actionable Recommendations**
   - Specific strategies to improve engagement
   - Content suggestions based on performance data
   - Posting schedule optimizations
   - Platform-specific tactical improvements

5. **Next Steps**
   - Top 3-5 priority actions to implement
   - Expected impact of each recommendation
   - Timeline for implementation

**Output Format**:
Provide a clear, structured analysis with specific numbers and percentages. Focus on actionable insights rather than generic advice. Be data-driven and strategic.`,
			period, platform, analytics)

		return promptResult("Performance analysis", text), nil
	})
}

func promptResult(description, text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	})
}

// joinList normalizes a comma-separated argument into "a, b, c" form.
func joinList(s string) string {
	parts := strings.Split(s, ",")
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	return strings.Join(trimmed, ", ")
}
