package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	Init(nil)

	assert.Equal(t, 30*time.Second, Timeout())
	assert.False(t, Debug())
	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, "json", LogFormat())
	assert.Equal(t, 60, RateLimitPerMinute())
	assert.Equal(t, 1000, RateLimitPerHour())
	assert.Equal(t, "0.0.0.0", Host())
	assert.Equal(t, 8000, Port())
	assert.Equal(t, "stdio", Transport())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("AYRSHARE_API_KEY", "key-from-env")
	t.Setenv("AYRSHARE_TIMEOUT", "45")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("LOG_LEVEL", "debug")
	Init(nil)

	assert.Equal(t, "key-from-env", APIKey())
	assert.Equal(t, 45*time.Second, Timeout())
	assert.Equal(t, 5, RateLimitPerMinute())
	assert.Equal(t, "debug", LogLevel())
}
