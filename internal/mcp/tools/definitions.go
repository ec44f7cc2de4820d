package tools

import "github.com/mark3labs/mcp-go/mcp"

func stringItems() mcp.PropertyOption {
	return mcp.Items(map[string]any{"type": "string"})
}

func objectItems() mcp.PropertyOption {
	return mcp.Items(map[string]any{"type": "object"})
}

// Definitions returns the schema for every tool, keyed by tool name. The
// server registers each one against the adapter of the same name.
func Definitions() map[string]mcp.Tool {
	return map[string]mcp.Tool{
		// Posting
		"post_to_social": mcp.NewTool("post_to_social",
			mcp.WithDescription("Publish a post to multiple social media platforms immediately. Supported platforms: facebook, instagram, twitter (or x), linkedin, tiktok, youtube, pinterest, reddit, snapchat, telegram, threads, bluesky, gmb."),
			mcp.WithString("post_text",
				mcp.Required(),
				mcp.Description("The content of the post to publish (text, can include URLs)"),
			),
			mcp.WithArray("platforms",
				mcp.Required(),
				mcp.Description("List of platform names to post to"),
				stringItems(),
			),
			mcp.WithArray("media_urls",
				mcp.Description("Optional list of image or video URLs to attach to the post"),
				stringItems(),
			),
			mcp.WithBoolean("shorten_links",
				mcp.Description("Whether to automatically shorten URLs in the post (default: true)"),
			),
		),
		"schedule_post": mcp.NewTool("schedule_post",
			mcp.WithDescription("Schedule a post to be published at a future date/time."),
			mcp.WithString("post_text",
				mcp.Required(),
				mcp.Description("The content of the post to publish"),
			),
			mcp.WithArray("platforms",
				mcp.Required(),
				mcp.Description("List of platform names to post to"),
				stringItems(),
			),
			mcp.WithString("scheduled_date",
				mcp.Required(),
				mcp.Description("ISO 8601 datetime string for when to publish (e.g., '2024-12-25T10:00:00Z')"),
			),
			mcp.WithArray("media_urls",
				mcp.Description("Optional list of image or video URLs to attach"),
				stringItems(),
			),
			mcp.WithBoolean("shorten_links",
				mcp.Description("Whether to automatically shorten URLs (default: true)"),
			),
		),
		"delete_post": mcp.NewTool("delete_post",
			mcp.WithDescription("Delete a published post from social media platforms."),
			mcp.WithString("post_id",
				mcp.Required(),
				mcp.Description("The unique post ID to delete"),
			),
			mcp.WithArray("platforms",
				mcp.Description("Optional list of specific platforms to delete from; all platforms when omitted"),
				stringItems(),
			),
		),
		"update_post": mcp.NewTool("update_post",
			mcp.WithDescription("Update an existing scheduled or published post."),
			mcp.WithString("post_id",
				mcp.Required(),
				mcp.Description("The unique post ID to update"),
			),
			mcp.WithString("post_text",
				mcp.Description("Optional new content for the post"),
			),
			mcp.WithArray("platforms",
				mcp.Description("Optional list of specific platforms to update on"),
				stringItems(),
			),
		),
		"retry_post": mcp.NewTool("retry_post",
			mcp.WithDescription("Retry a failed post. Useful when a post failed to publish due to temporary issues."),
			mcp.WithString("post_id",
				mcp.Required(),
				mcp.Description("The unique post ID to retry"),
			),
		),
		"copy_post": mcp.NewTool("copy_post",
			mcp.WithDescription("Copy an existing post to different platforms or reschedule it."),
			mcp.WithString("post_id",
				mcp.Required(),
				mcp.Description("The unique post ID to copy"),
			),
			mcp.WithArray("platforms",
				mcp.Required(),
				mcp.Description("List of platforms to copy the post to"),
				stringItems(),
			),
			mcp.WithString("scheduled_date",
				mcp.Description("Optional ISO 8601 datetime for scheduling the copy"),
			),
		),
		"bulk_post": mcp.NewTool("bulk_post",
			mcp.WithDescription("Create multiple posts in a single bulk operation."),
			mcp.WithArray("posts",
				mcp.Required(),
				mcp.Description("List of post configurations; each needs post and platforms, optionally mediaUrls and scheduleDate"),
				objectItems(),
			),
		),
		"post_with_auto_hashtags": mcp.NewTool("post_with_auto_hashtags",
			mcp.WithDescription("Create a post with automatic hashtag generation based on content."),
			mcp.WithString("post_text",
				mcp.Required(),
				mcp.Description("Content of the post"),
			),
			mcp.WithArray("platforms",
				mcp.Required(),
				mcp.Description("List of platforms to post to"),
				stringItems(),
			),
			mcp.WithNumber("max_hashtags",
				mcp.Description("Maximum number of hashtags to generate (1-10, default: 2)"),
			),
			mcp.WithString("position",
				mcp.Description("Where to place hashtags"),
				mcp.Enum("auto", "end"),
			),
			mcp.WithArray("media_urls",
				mcp.Description("Optional media attachments"),
				stringItems(),
			),
		),
		"create_evergreen_post": mcp.NewTool("create_evergreen_post",
			mcp.WithDescription("Create auto-reposting evergreen content that republishes itself at fixed intervals."),
			mcp.WithString("post_text",
				mcp.Required(),
				mcp.Description("Content of the post"),
			),
			mcp.WithArray("platforms",
				mcp.Required(),
				mcp.Description("List of platforms to post to"),
				stringItems(),
			),
			mcp.WithNumber("repeat",
				mcp.Required(),
				mcp.Description("Number of times to repost (1-10)"),
			),
			mcp.WithNumber("days_between",
				mcp.Required(),
				mcp.Description("Days between reposts (minimum 2)"),
			),
			mcp.WithString("start_date",
				mcp.Description("Optional start date (ISO 8601, defaults to now)"),
			),
			mcp.WithArray("media_urls",
				mcp.Description("Optional media attachments"),
				stringItems(),
			),
		),
		"post_with_first_comment": mcp.NewTool("post_with_first_comment",
			mcp.WithDescription("Create a post with an automatic first comment added shortly after publication."),
			mcp.WithString("post_text",
				mcp.Required(),
				mcp.Description("Content of the main post"),
			),
			mcp.WithArray("platforms",
				mcp.Required(),
				mcp.Description("List of platforms to post to"),
				stringItems(),
			),
			mcp.WithString("first_comment",
				mcp.Required(),
				mcp.Description("Comment to add immediately after the post"),
			),
			mcp.WithArray("comment_media_urls",
				mcp.Description("Optional media for the comment (Facebook, LinkedIn, Twitter only)"),
				stringItems(),
			),
			mcp.WithArray("media_urls",
				mcp.Description("Optional media for the main post"),
				stringItems(),
			),
		),
		"submit_post_for_approval": mcp.NewTool("submit_post_for_approval",
			mcp.WithDescription("Submit a post for manual approval before publication."),
			mcp.WithString("post_text",
				mcp.Required(),
				mcp.Description("Content of the post"),
			),
			mcp.WithArray("platforms",
				mcp.Required(),
				mcp.Description("List of platforms to post to"),
				stringItems(),
			),
			mcp.WithString("notes",
				mcp.Description("Optional notes for the approver"),
			),
			mcp.WithArray("media_urls",
				mcp.Description("Optional media attachments"),
				stringItems(),
			),
			mcp.WithString("scheduled_date",
				mcp.Description("Optional scheduled publication date (ISO 8601)"),
			),
		),
		"approve_post": mcp.NewTool("approve_post",
			mcp.WithDescription("Approve a post that is awaiting approval so it publishes immediately or at its scheduled time."),
			mcp.WithString("post_id",
				mcp.Required(),
				mcp.Description("The post ID to approve"),
			),
		),
		"list_platforms": mcp.NewTool("list_platforms",
			mcp.WithDescription("Get information about supported social media platforms and their capabilities."),
		),

		// Analytics
		"get_post_analytics": mcp.NewTool("get_post_analytics",
			mcp.WithDescription("Get engagement analytics for a specific post: likes, shares, comments, impressions, reach."),
			mcp.WithString("post_id",
				mcp.Required(),
				mcp.Description("The unique post ID returned when the post was created"),
			),
			mcp.WithArray("platforms",
				mcp.Description("Optional list of specific platforms to get analytics from"),
				stringItems(),
			),
		),
		"get_social_analytics": mcp.NewTool("get_social_analytics",
			mcp.WithDescription("Get social network analytics across multiple platforms."),
			mcp.WithArray("platforms",
				mcp.Required(),
				mcp.Description("List of platforms to get analytics for"),
				stringItems(),
			),
		),
		"get_profile_analytics": mcp.NewTool("get_profile_analytics",
			mcp.WithDescription("Get profile/account analytics including follower counts and demographics."),
			mcp.WithArray("platforms",
				mcp.Description("Optional list of specific platforms; all connected platforms when omitted"),
				stringItems(),
			),
		),

		// History
		"get_post_by_history_id": mcp.NewTool("get_post_by_history_id",
			mcp.WithDescription("Get specific post details from history."),
			mcp.WithString("history_id",
				mcp.Required(),
				mcp.Description("The history ID"),
			),
		),
		"get_all_scheduled_posts": mcp.NewTool("get_all_scheduled_posts",
			mcp.WithDescription("Get all scheduled posts for the upcoming content calendar."),
		),
		"get_repost_series": mcp.NewTool("get_repost_series",
			mcp.WithDescription("Get all posts in an evergreen auto-repost series."),
			mcp.WithString("auto_repost_id",
				mcp.Required(),
				mcp.Description("The auto-repost series ID"),
			),
		),

		// Media
		"upload_media": mcp.NewTool("upload_media",
			mcp.WithDescription("Upload an image or video from a URL to the Ayrshare media library."),
			mcp.WithString("file_url",
				mcp.Required(),
				mcp.Description("Public URL of the media file to upload"),
			),
			mcp.WithString("file_name",
				mcp.Description("Optional custom filename for the uploaded media"),
			),
		),
		"validate_media_url": mcp.NewTool("validate_media_url",
			mcp.WithDescription("Validate a media URL for accessibility and format."),
			mcp.WithString("media_url",
				mcp.Required(),
				mcp.Description("URL of the media file to validate"),
			),
		),
		"get_unsplash_image": mcp.NewTool("get_unsplash_image",
			mcp.WithDescription("Fetch a royalty-free image from Unsplash by search query or image ID."),
			mcp.WithString("query",
				mcp.Description("Search query for a random relevant image"),
			),
			mcp.WithString("image_id",
				mcp.Description("Specific Unsplash image ID to retrieve"),
			),
		),
		"list_all_media": mcp.NewTool("list_all_media",
			mcp.WithDescription("List all uploaded media files in the library."),
			mcp.WithNumber("limit",
				mcp.Description("Limit number of media items"),
			),
		),
		"get_media_item_details": mcp.NewTool("get_media_item_details",
			mcp.WithDescription("Get details for a specific media item."),
			mcp.WithString("media_id",
				mcp.Required(),
				mcp.Description("The media ID"),
			),
		),
		"delete_media_file": mcp.NewTool("delete_media_file",
			mcp.WithDescription("Delete media from the library."),
			mcp.WithString("media_id",
				mcp.Required(),
				mcp.Description("The media ID to delete"),
			),
		),

		// Comments
		"get_post_comments": mcp.NewTool("get_post_comments",
			mcp.WithDescription("Get comments on a specific social media post."),
			mcp.WithString("post_id",
				mcp.Required(),
				mcp.Description("The Ayrshare post ID"),
			),
			mcp.WithArray("platforms",
				mcp.Description("Optional list of specific platforms to get comments from"),
				stringItems(),
			),
		),
		"add_comment_to_post": mcp.NewTool("add_comment_to_post",
			mcp.WithDescription("Add a comment to a social media post."),
			mcp.WithString("post_id",
				mcp.Required(),
				mcp.Description("The Ayrshare post ID or social network post ID"),
			),
			mcp.WithString("comment_text",
				mcp.Required(),
				mcp.Description("The content of the comment"),
			),
			mcp.WithArray("platforms",
				mcp.Description("Optional list of platforms to comment on"),
				stringItems(),
			),
		),
		"reply_to_comment": mcp.NewTool("reply_to_comment",
			mcp.WithDescription("Reply to an existing comment on a social media post."),
			mcp.WithString("comment_id",
				mcp.Required(),
				mcp.Description("The social network comment ID"),
			),
			mcp.WithString("reply_text",
				mcp.Required(),
				mcp.Description("The content of your reply"),
			),
			mcp.WithString("platform",
				mcp.Required(),
				mcp.Description("The platform where the comment exists"),
			),
		),
		"delete_post_comment": mcp.NewTool("delete_post_comment",
			mcp.WithDescription("Delete a comment from social media platforms."),
			mcp.WithString("comment_id",
				mcp.Required(),
				mcp.Description("The Ayrshare comment ID or social network comment ID"),
			),
			mcp.WithArray("platforms",
				mcp.Description("Optional list of platforms to delete the comment from"),
				stringItems(),
			),
		),

		// Messages
		"send_direct_message": mcp.NewTool("send_direct_message",
			mcp.WithDescription("Send a direct message to a user on Facebook, Instagram, or Twitter/X (Business Plan required)."),
			mcp.WithString("platform",
				mcp.Required(),
				mcp.Description("Platform to send the message on"),
			),
			mcp.WithString("recipient_id",
				mcp.Required(),
				mcp.Description("Recipient's ID on the platform"),
			),
			mcp.WithString("message",
				mcp.Required(),
				mcp.Description("Message content"),
			),
			mcp.WithArray("media_urls",
				mcp.Description("Optional media attachments"),
				stringItems(),
			),
		),
		"get_message_conversations": mcp.NewTool("get_message_conversations",
			mcp.WithDescription("Get the list of direct message conversations (Business Plan required)."),
			mcp.WithString("platform",
				mcp.Required(),
				mcp.Description("Platform to get conversations from"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Optional limit on number of conversations"),
			),
		),
		"get_conversation_history": mcp.NewTool("get_conversation_history",
			mcp.WithDescription("Get messages from a specific conversation (Business Plan required)."),
			mcp.WithString("conversation_id",
				mcp.Required(),
				mcp.Description("The conversation ID"),
			),
			mcp.WithString("platform",
				mcp.Required(),
				mcp.Description("The platform"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Optional limit on number of messages"),
			),
		),
		"mark_messages_as_read": mcp.NewTool("mark_messages_as_read",
			mcp.WithDescription("Mark one or more direct messages as read (Business Plan required)."),
			mcp.WithArray("message_ids",
				mcp.Required(),
				mcp.Description("List of message IDs to mark as read"),
				stringItems(),
			),
			mcp.WithString("platform",
				mcp.Required(),
				mcp.Description("The platform"),
			),
		),

		// Reviews
		"get_google_business_reviews": mcp.NewTool("get_google_business_reviews",
			mcp.WithDescription("Get Google Business Profile reviews for one or all locations."),
			mcp.WithString("location_id",
				mcp.Description("Optional specific location ID; all locations when omitted"),
			),
		),
		"respond_to_review": mcp.NewTool("respond_to_review",
			mcp.WithDescription("Reply to a Google Business Profile review."),
			mcp.WithString("review_id",
				mcp.Required(),
				mcp.Description("The review ID"),
			),
			mcp.WithString("response_text",
				mcp.Required(),
				mcp.Description("Your reply to the review"),
			),
		),
		"remove_review_response": mcp.NewTool("remove_review_response",
			mcp.WithDescription("Delete your reply to a Google Business Profile review."),
			mcp.WithString("review_id",
				mcp.Required(),
				mcp.Description("The review ID"),
			),
		),

		// Webhooks
		"setup_webhook_endpoint": mcp.NewTool("setup_webhook_endpoint",
			mcp.WithDescription("Create a webhook subscription for real-time event notifications (Business Plan required)."),
			mcp.WithString("url",
				mcp.Required(),
				mcp.Description("Your webhook endpoint URL"),
			),
			mcp.WithArray("events",
				mcp.Required(),
				mcp.Description("List of events to subscribe to (e.g., post.published, comment.added)"),
				stringItems(),
			),
		),
		"list_webhook_subscriptions": mcp.NewTool("list_webhook_subscriptions",
			mcp.WithDescription("List all webhook subscriptions for your account (Business Plan required)."),
		),
		"update_webhook_configuration": mcp.NewTool("update_webhook_configuration",
			mcp.WithDescription("Modify a webhook's URL or event subscriptions (Business Plan required)."),
			mcp.WithString("webhook_id",
				mcp.Required(),
				mcp.Description("The webhook ID"),
			),
			mcp.WithString("url",
				mcp.Description("Optional new webhook URL"),
			),
			mcp.WithArray("events",
				mcp.Description("Optional new events list"),
				stringItems(),
			),
		),
		"remove_webhook": mcp.NewTool("remove_webhook",
			mcp.WithDescription("Delete a webhook subscription (Business Plan required)."),
			mcp.WithString("webhook_id",
				mcp.Required(),
				mcp.Description("The webhook ID to delete"),
			),
		),

		// Links
		"shorten_url": mcp.NewTool("shorten_url",
			mcp.WithDescription("Create a shortened link with an optional custom slug (Max Pack Add-on required)."),
			mcp.WithString("url",
				mcp.Required(),
				mcp.Description("The URL to shorten"),
			),
			mcp.WithString("custom_slug",
				mcp.Description("Optional custom slug for the shortened URL"),
			),
		),
		"get_link_analytics": mcp.NewTool("get_link_analytics",
			mcp.WithDescription("Get click analytics for a shortened link (Max Pack Add-on required)."),
			mcp.WithString("link_id",
				mcp.Required(),
				mcp.Description("The shortened link ID"),
			),
		),

		// Ads
		"create_ad_from_post": mcp.NewTool("create_ad_from_post",
			mcp.WithDescription("Create a Facebook ad from an existing post (Business Plan required)."),
			mcp.WithString("post_id",
				mcp.Required(),
				mcp.Description("The post ID to boost"),
			),
			mcp.WithNumber("budget",
				mcp.Required(),
				mcp.Description("Ad budget in dollars"),
			),
			mcp.WithNumber("duration",
				mcp.Required(),
				mcp.Description("Duration in days"),
			),
			mcp.WithObject("targeting",
				mcp.Description("Optional targeting parameters (age, location, interests, etc.)"),
			),
		),
		"get_ad_analytics": mcp.NewTool("get_ad_analytics",
			mcp.WithDescription("Get performance metrics for a Facebook ad (Business Plan required)."),
			mcp.WithString("ad_id",
				mcp.Required(),
				mcp.Description("The ad ID"),
			),
		),
		"manage_ad_campaign": mcp.NewTool("manage_ad_campaign",
			mcp.WithDescription("Modify budget or pause/resume an ad campaign (Business Plan required)."),
			mcp.WithString("ad_id",
				mcp.Required(),
				mcp.Description("The ad ID"),
			),
			mcp.WithNumber("budget",
				mcp.Description("Optional new budget in dollars"),
			),
			mcp.WithString("status",
				mcp.Description("Optional new status"),
				mcp.Enum("active", "paused"),
			),
		),
		"stop_ad_campaign": mcp.NewTool("stop_ad_campaign",
			mcp.WithDescription("Permanently stop an ad and remove it from your account (Business Plan required)."),
			mcp.WithString("ad_id",
				mcp.Required(),
				mcp.Description("The ad ID to stop"),
			),
		),

		// Profiles
		"create_user_profile": mcp.NewTool("create_user_profile",
			mcp.WithDescription("Create a new user profile for multi-tenant management (Business Plan required)."),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Profile title/name"),
			),
			mcp.WithBoolean("messaging_active",
				mcp.Description("Enable messaging for the profile"),
			),
			mcp.WithArray("team",
				mcp.Description("List of team member emails"),
				stringItems(),
			),
			mcp.WithString("email",
				mcp.Description("Profile email address"),
			),
			mcp.WithArray("disable_social",
				mcp.Description("List of social networks to disable"),
				stringItems(),
			),
			mcp.WithArray("tags",
				mcp.Description("Tags for organizing profiles"),
				stringItems(),
			),
		),
		"list_user_profiles": mcp.NewTool("list_user_profiles",
			mcp.WithDescription("List user profiles with filtering options (Business Plan required)."),
			mcp.WithString("title",
				mcp.Description("Filter by profile title"),
			),
			mcp.WithString("ref_id",
				mcp.Description("Filter by reference ID"),
			),
			mcp.WithBoolean("has_active_social",
				mcp.Description("Filter profiles with active social accounts"),
			),
			mcp.WithArray("includes_active_social",
				mcp.Description("Filter profiles with specific active platforms"),
				stringItems(),
			),
			mcp.WithNumber("limit",
				mcp.Description("Limit number of profiles returned"),
			),
		),
		"get_user_profile_details": mcp.NewTool("get_user_profile_details",
			mcp.WithDescription("Get details for a specific user profile (Business Plan required)."),
			mcp.WithString("profile_key",
				mcp.Required(),
				mcp.Description("The profile key"),
			),
		),
		"update_user_profile": mcp.NewTool("update_user_profile",
			mcp.WithDescription("Update user profile settings (Business Plan required)."),
			mcp.WithString("profile_key",
				mcp.Required(),
				mcp.Description("The profile key"),
			),
			mcp.WithObject("settings",
				mcp.Required(),
				mcp.Description("Settings to update (title, messagingActive, team, email, etc.)"),
			),
		),
		"delete_user_profile": mcp.NewTool("delete_user_profile",
			mcp.WithDescription("Delete a user profile and all of its post history (Business Plan required). Cannot be undone."),
			mcp.WithString("profile_key",
				mcp.Required(),
				mcp.Description("The profile key to delete"),
			),
		),

		// Auto-schedule
		"setup_auto_schedule": mcp.NewTool("setup_auto_schedule",
			mcp.WithDescription("Set an auto-posting schedule with optimal posting times."),
			mcp.WithObject("schedule_config",
				mcp.Required(),
				mcp.Description("Schedule configuration (times, days, platforms, timezone)"),
			),
		),
		"get_current_auto_schedule": mcp.NewTool("get_current_auto_schedule",
			mcp.WithDescription("Get the current auto-schedule configuration."),
		),
		"modify_auto_schedule": mcp.NewTool("modify_auto_schedule",
			mcp.WithDescription("Update auto-schedule settings."),
			mcp.WithObject("schedule_config",
				mcp.Required(),
				mcp.Description("Updated schedule configuration"),
			),
		),
		"remove_auto_schedule": mcp.NewTool("remove_auto_schedule",
			mcp.WithDescription("Disable the automated posting schedule."),
		),

		// Brand
		"create_brand_profile_config": mcp.NewTool("create_brand_profile_config",
			mcp.WithDescription("Create a brand profile with assets: logos, colors, templates."),
			mcp.WithObject("brand_data",
				mcp.Required(),
				mcp.Description("Brand information (name, logo, colors, fonts, templates)"),
			),
		),
		"get_brand_profile_assets": mcp.NewTool("get_brand_profile_assets",
			mcp.WithDescription("Get all brand assets including logos, colors, and templates."),
		),
		"update_brand_profile_settings": mcp.NewTool("update_brand_profile_settings",
			mcp.WithDescription("Update brand profile settings."),
			mcp.WithObject("brand_data",
				mcp.Required(),
				mcp.Description("Updated brand information"),
			),
		),

		// Feed
		"get_platform_feed": mcp.NewTool("get_platform_feed",
			mcp.WithDescription("Get the social media feed from a specific platform."),
			mcp.WithString("platform",
				mcp.Required(),
				mcp.Description("Platform name (facebook, instagram, linkedin, twitter)"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Limit number of posts"),
			),
		),
		"get_all_platform_feeds": mcp.NewTool("get_all_platform_feeds",
			mcp.WithDescription("Get feeds from all connected platforms."),
			mcp.WithNumber("limit",
				mcp.Description("Limit number of posts per platform"),
			),
		),

		// Generate
		"ai_generate_post_text": mcp.NewTool("ai_generate_post_text",
			mcp.WithDescription("Generate post text using AI (Max Pack Add-on required)."),
			mcp.WithString("prompt",
				mcp.Required(),
				mcp.Description("Content prompt describing what you want to post about"),
			),
			mcp.WithString("platform",
				mcp.Description("Target platform for optimization"),
			),
			mcp.WithString("tone",
				mcp.Description("Desired tone (professional, casual, friendly, humorous, etc.)"),
			),
		),
		"ai_generate_hashtags_for_content": mcp.NewTool("ai_generate_hashtags_for_content",
			mcp.WithDescription("Generate hashtags for content using AI (Max Pack Add-on required)."),
			mcp.WithString("content",
				mcp.Required(),
				mcp.Description("Post content to generate hashtags for"),
			),
			mcp.WithNumber("count",
				mcp.Description("Number of hashtags to generate"),
			),
		),
		"ai_generate_image_caption": mcp.NewTool("ai_generate_image_caption",
			mcp.WithDescription("Generate a caption for an image using AI (Max Pack Add-on required)."),
			mcp.WithString("image_url",
				mcp.Required(),
				mcp.Description("URL of the image to generate a caption for"),
			),
			mcp.WithString("style",
				mcp.Description("Caption style (descriptive, creative, humorous, etc.)"),
			),
		),

		// Hashtags
		"suggest_relevant_hashtags": mcp.NewTool("suggest_relevant_hashtags",
			mcp.WithDescription("Get hashtag suggestions for post content."),
			mcp.WithString("content",
				mcp.Required(),
				mcp.Description("Post content to get hashtag suggestions for"),
			),
			mcp.WithString("platform",
				mcp.Description("Target platform for platform-specific suggestions"),
			),
		),
		"get_trending_platform_hashtags": mcp.NewTool("get_trending_platform_hashtags",
			mcp.WithDescription("Get trending hashtags for a platform."),
			mcp.WithString("platform",
				mcp.Required(),
				mcp.Description("Platform name (twitter, instagram, tiktok, etc.)"),
			),
			mcp.WithString("region",
				mcp.Description("Optional region filter (e.g., US, UK, CA)"),
			),
		),
		"analyze_hashtag_metrics": mcp.NewTool("analyze_hashtag_metrics",
			mcp.WithDescription("Analyze hashtag usage, engagement, and trends over time."),
			mcp.WithString("hashtag",
				mcp.Required(),
				mcp.Description("Hashtag to analyze (with or without #)"),
			),
			mcp.WithString("time_range",
				mcp.Description("Time range for analysis (7d, 30d, 90d)"),
			),
		),

		// User
		"get_account_information": mcp.NewTool("get_account_information",
			mcp.WithDescription("Get Ayrshare account details and settings."),
		),
		"update_account_settings": mcp.NewTool("update_account_settings",
			mcp.WithDescription("Update user account settings."),
			mcp.WithObject("settings",
				mcp.Required(),
				mcp.Description("Settings to update (preferences, notifications, etc.)"),
			),
		),
		"get_api_usage_limits": mcp.NewTool("get_api_usage_limits",
			mcp.WithDescription("Get API rate limits, post quotas, and current usage."),
		),

		// Utils
		"verify_media_accessibility": mcp.NewTool("verify_media_accessibility",
			mcp.WithDescription("Verify that a media URL is accessible and meets format requirements."),
			mcp.WithString("url",
				mcp.Required(),
				mcp.Description("Media URL to verify"),
			),
		),
		"list_available_timezones": mcp.NewTool("list_available_timezones",
			mcp.WithDescription("Get all supported timezone identifiers for scheduling posts."),
		),
		"convert_time_between_timezones": mcp.NewTool("convert_time_between_timezones",
			mcp.WithDescription("Convert a time between timezones; useful for cross-timezone scheduling."),
			mcp.WithString("time",
				mcp.Required(),
				mcp.Description("Time string in ISO 8601 format"),
			),
			mcp.WithString("from_tz",
				mcp.Required(),
				mcp.Description("Source timezone (e.g., America/New_York)"),
			),
			mcp.WithString("to_tz",
				mcp.Required(),
				mcp.Description("Target timezone (e.g., Europe/London)"),
			),
		),

		// Validate
		"validate_post_before_publishing": mcp.NewTool("validate_post_before_publishing",
			mcp.WithDescription("Pre-flight check of post parameters to identify issues before posting."),
			mcp.WithObject("post_data",
				mcp.Required(),
				mcp.Description("Post data to validate (post, platforms, mediaUrls, etc.)"),
			),
		),
		"validate_media_for_platform": mcp.NewTool("validate_media_for_platform",
			mcp.WithDescription("Check whether media meets a platform's specific requirements."),
			mcp.WithString("media_url",
				mcp.Required(),
				mcp.Description("Media URL to validate"),
			),
			mcp.WithString("platform",
				mcp.Required(),
				mcp.Description("Target platform"),
			),
		),
		"validate_schedule_datetime": mcp.NewTool("validate_schedule_datetime",
			mcp.WithDescription("Check whether a schedule date/time is valid for the target platform."),
			mcp.WithString("schedule_date",
				mcp.Required(),
				mcp.Description("Schedule date in ISO 8601 format"),
			),
			mcp.WithString("platform",
				mcp.Required(),
				mcp.Description("Target platform"),
			),
		),

		// Operations
		"server_health": mcp.NewTool("server_health",
			mcp.WithDescription("Get the server's health status: uptime details, rate limit usage, and configuration."),
		),
	}
}
