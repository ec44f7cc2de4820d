package config

const (
	KeyAPIKey          = "AYRSHARE_API_KEY"
	KeyProfileKey      = "AYRSHARE_PROFILE_KEY"
	KeyTimeout         = "AYRSHARE_TIMEOUT"
	KeyDebug           = "AYRSHARE_DEBUG"
	KeyLogLevel        = "LOG_LEVEL"
	KeyLogFormat       = "LOG_FORMAT"
	KeyRateLimitMinute = "RATE_LIMIT_PER_MINUTE"
	KeyRateLimitHour   = "RATE_LIMIT_PER_HOUR"
	KeyHost            = "HOST"
	KeyPort            = "PORT"
	KeyTransport       = "TRANSPORT"
)
