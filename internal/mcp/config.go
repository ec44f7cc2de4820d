package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/socialops/ayrshare-mcp/internal/ayrshare"
	"github.com/socialops/ayrshare-mcp/internal/config"
	"github.com/socialops/ayrshare-mcp/internal/health"
	"github.com/socialops/ayrshare-mcp/internal/logging"
	"github.com/socialops/ayrshare-mcp/internal/mcp/tools"
	"github.com/socialops/ayrshare-mcp/internal/ratelimit"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	Client       *ayrshare.Client
	Limiter      *ratelimit.Limiter
	Logger       logging.Logger
}

// DefaultConfig builds the full production wiring: a single Ayrshare client
// shared by every tool adapter, the request limiter, and the streamable HTTP
// options. Credentials come from the environment via the config package.
func DefaultConfig() Config {
	baseLogger := logging.Configure(config.LogLevel(), config.LogFormat())
	logger := logging.New(baseLogger)

	client, err := ayrshare.New(config.APIKey(), config.ProfileKey(),
		ayrshare.WithTimeout(config.Timeout()),
		ayrshare.WithLogger(logger.WithName("ayrshare")),
	)
	if err != nil {
		log.Fatalf("failed to init ayrshare client: %v", err)
	}

	limiter := ratelimit.New(config.RateLimitPerMinute(), config.RateLimitPerHour())

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			// Posting
			"post_to_social":           &tools.PostToSocialHandler{Service: client},
			"schedule_post":            &tools.SchedulePostHandler{Service: client},
			"delete_post":              &tools.DeletePostHandler{Service: client},
			"update_post":              &tools.UpdatePostHandler{Service: client},
			"retry_post":               &tools.RetryPostHandler{Service: client},
			"copy_post":                &tools.CopyPostHandler{Service: client},
			"bulk_post":                &tools.BulkPostHandler{Service: client},
			"post_with_auto_hashtags":  &tools.AutoHashtagPostHandler{Service: client},
			"create_evergreen_post":    &tools.EvergreenPostHandler{Service: client},
			"post_with_first_comment":  &tools.FirstCommentPostHandler{Service: client},
			"submit_post_for_approval": &tools.ApprovalPostHandler{Service: client},
			"approve_post":             &tools.ApprovePostHandler{Service: client},
			"list_platforms":           &tools.ListPlatformsHandler{},

			// Analytics
			"get_post_analytics":    &tools.PostAnalyticsHandler{Service: client},
			"get_social_analytics":  &tools.SocialAnalyticsHandler{Service: client},
			"get_profile_analytics": &tools.ProfileAnalyticsHandler{Service: client},

			// History
			"get_post_by_history_id":  &tools.HistoryByIDHandler{Service: client},
			"get_all_scheduled_posts": &tools.ScheduledPostsHandler{Service: client},
			"get_repost_series":       &tools.RepostSeriesHandler{Service: client},

			// Media
			"upload_media":           &tools.UploadMediaHandler{Service: client},
			"validate_media_url":     &tools.ValidateMediaURLHandler{Service: client},
			"get_unsplash_image":     &tools.UnsplashImageHandler{Service: client},
			"list_all_media":         &tools.ListMediaHandler{Service: client},
			"get_media_item_details": &tools.MediaDetailsHandler{Service: client},
			"delete_media_file":      &tools.DeleteMediaHandler{Service: client},

			// Comments
			"get_post_comments":   &tools.GetCommentsHandler{Service: client},
			"add_comment_to_post": &tools.AddCommentHandler{Service: client},
			"reply_to_comment":    &tools.ReplyToCommentHandler{Service: client},
			"delete_post_comment": &tools.DeleteCommentHandler{Service: client},

			// Messages
			"send_direct_message":       &tools.SendMessageHandler{Service: client},
			"get_message_conversations": &tools.ConversationsHandler{Service: client},
			"get_conversation_history":  &tools.ConversationHistoryHandler{Service: client},
			"mark_messages_as_read":     &tools.MarkMessagesReadHandler{Service: client},

			// Reviews
			"get_google_business_reviews": &tools.GetReviewsHandler{Service: client},
			"respond_to_review":           &tools.ReplyToReviewHandler{Service: client},
			"remove_review_response":      &tools.DeleteReviewResponseHandler{Service: client},

			// Webhooks
			"setup_webhook_endpoint":       &tools.CreateWebhookHandler{Service: client},
			"list_webhook_subscriptions":   &tools.ListWebhooksHandler{Service: client},
			"update_webhook_configuration": &tools.UpdateWebhookHandler{Service: client},
			"remove_webhook":               &tools.DeleteWebhookHandler{Service: client},

			// Links
			"shorten_url":        &tools.ShortenURLHandler{Service: client},
			"get_link_analytics": &tools.LinkAnalyticsHandler{Service: client},

			// Ads
			"create_ad_from_post": &tools.CreateAdHandler{Service: client},
			"get_ad_analytics":    &tools.AdAnalyticsHandler{Service: client},
			"manage_ad_campaign":  &tools.UpdateAdHandler{Service: client},
			"stop_ad_campaign":    &tools.StopAdHandler{Service: client},

			// Profiles
			"create_user_profile":      &tools.CreateProfileHandler{Service: client},
			"list_user_profiles":       &tools.ListProfilesHandler{Service: client},
			"get_user_profile_details": &tools.ProfileDetailsHandler{Service: client},
			"update_user_profile":      &tools.UpdateProfileHandler{Service: client},
			"delete_user_profile":      &tools.DeleteProfileHandler{Service: client},

			// Auto-schedule
			"setup_auto_schedule":       &tools.SetAutoScheduleHandler{Service: client},
			"get_current_auto_schedule": &tools.GetAutoScheduleHandler{Service: client},
			"modify_auto_schedule":      &tools.UpdateAutoScheduleHandler{Service: client},
			"remove_auto_schedule":      &tools.DeleteAutoScheduleHandler{Service: client},

			// Brand
			"create_brand_profile_config":   &tools.CreateBrandProfileHandler{Service: client},
			"get_brand_profile_assets":      &tools.BrandAssetsHandler{Service: client},
			"update_brand_profile_settings": &tools.UpdateBrandSettingsHandler{Service: client},

			// Feed
			"get_platform_feed":      &tools.PlatformFeedHandler{Service: client},
			"get_all_platform_feeds": &tools.AllFeedsHandler{Service: client},

			// AI generation
			"ai_generate_post_text":            &tools.GeneratePostTextHandler{Service: client},
			"ai_generate_hashtags_for_content": &tools.GenerateHashtagsHandler{Service: client},
			"ai_generate_image_caption":        &tools.GenerateCaptionHandler{Service: client},

			// Hashtags
			"suggest_relevant_hashtags":      &tools.SuggestHashtagsHandler{Service: client},
			"get_trending_platform_hashtags": &tools.TrendingHashtagsHandler{Service: client},
			"analyze_hashtag_metrics":        &tools.AnalyzeHashtagHandler{Service: client},

			// Account
			"get_account_information": &tools.AccountInfoHandler{Service: client},
			"update_account_settings": &tools.UpdateAccountSettingsHandler{Service: client},
			"get_api_usage_limits":    &tools.APILimitsHandler{Service: client},

			// Utilities
			"verify_media_accessibility":     &tools.VerifyMediaHandler{Service: client},
			"list_available_timezones":       &tools.ListTimezonesHandler{Service: client},
			"convert_time_between_timezones": &tools.ConvertTimeHandler{Service: client},

			// Validation
			"validate_post_before_publishing": &tools.ValidatePostHandler{Service: client},
			"validate_media_for_platform":     &tools.ValidateMediaHandler{Service: client},
			"validate_schedule_datetime":      &tools.ValidateScheduleHandler{Service: client},

			// Operations
			"server_health": &tools.ServerHealthHandler{
				Snapshot: func() map[string]any { return health.Snapshot(limiter) },
			},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp"),
			server.WithStateLess(true),
		},
		Client:  client,
		Limiter: limiter,
		Logger:  logger,
	}
}
