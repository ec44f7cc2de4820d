package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyTimeout, 30)
	viper.SetDefault(KeyDebug, false)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "json")
	viper.SetDefault(KeyRateLimitMinute, 60)
	viper.SetDefault(KeyRateLimitHour, 1000)
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyTransport, "stdio")
}

func APIKey() string     { return viper.GetString(KeyAPIKey) }
func ProfileKey() string { return viper.GetString(KeyProfileKey) }
func Debug() bool        { return viper.GetBool(KeyDebug) }
func LogLevel() string   { return viper.GetString(KeyLogLevel) }
func LogFormat() string  { return viper.GetString(KeyLogFormat) }
func Host() string       { return viper.GetString(KeyHost) }
func Port() int          { return viper.GetInt(KeyPort) }
func Transport() string  { return viper.GetString(KeyTransport) }

func RateLimitPerMinute() int { return viper.GetInt(KeyRateLimitMinute) }
func RateLimitPerHour() int   { return viper.GetInt(KeyRateLimitHour) }

// Timeout returns the per-request timeout for the Ayrshare channel.
func Timeout() time.Duration {
	return time.Duration(viper.GetInt(KeyTimeout)) * time.Second
}
