package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAllowWithinLimits(t *testing.T) {
	l := New(3, 10)
	for i := 0; i < 3; i++ {
		ok, msg := l.Allow()
		require.True(t, ok)
		require.Empty(t, msg)
	}
}

func TestMinuteLimitExceeded(t *testing.T) {
	l := New(2, 100)
	l.Allow()
	l.Allow()

	ok, msg := l.Allow()
	require.False(t, ok)
	require.Equal(t, "Rate limit exceeded: 2 requests per minute", msg)
}

func TestHourLimitExceeded(t *testing.T) {
	l := New(0, 2)
	l.Allow()
	l.Allow()

	ok, msg := l.Allow()
	require.False(t, ok)
	require.Equal(t, "Rate limit exceeded: 2 requests per hour", msg)
}

func TestMinuteWindowSlides(t *testing.T) {
	now := time.Now()
	l := New(1, 100)
	l.now = func() time.Time { return now }

	ok, _ := l.Allow()
	require.True(t, ok)
	ok, _ = l.Allow()
	require.False(t, ok)

	// Advance past the minute window; the hour window still holds the call.
	l.now = func() time.Time { return now.Add(61 * time.Second) }
	ok, _ = l.Allow()
	require.True(t, ok)

	minute, hour := l.Usage()
	require.Equal(t, 1, minute)
	require.Equal(t, 2, hour)
}

func TestZeroDisablesWindow(t *testing.T) {
	l := New(0, 0)
	for i := 0; i < 500; i++ {
		ok, _ := l.Allow()
		require.True(t, ok)
	}
}

func TestLimits(t *testing.T) {
	l := New(60, 1000)
	perMinute, perHour := l.Limits()
	require.Equal(t, 60, perMinute)
	require.Equal(t, 1000, perHour)
}
