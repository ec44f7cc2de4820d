// Package health builds the server_health snapshot: server identity,
// process stats, rate limiter occupancy and the active configuration.
package health

import (
	"runtime"
	"time"

	"github.com/socialops/ayrshare-mcp/internal/config"
	"github.com/socialops/ayrshare-mcp/internal/ratelimit"
)

const (
	ServerName    = "ayrshare-mcp"
	ServerVersion = "1.0.0"
)

// Snapshot reports the current health of the running server.
func Snapshot(limiter *ratelimit.Limiter) map[string]any {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	curMinute, curHour := limiter.Usage()
	perMinute, perHour := limiter.Limits()

	return map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"server": map[string]any{
			"name":      ServerName,
			"version":   ServerVersion,
			"transport": config.Transport(),
			"log_level": config.LogLevel(),
		},
		"system": map[string]any{
			"go_version":    runtime.Version(),
			"goroutines":    runtime.NumGoroutine(),
			"heap_alloc_mb": mem.HeapAlloc / (1 << 20),
			"heap_sys_mb":   mem.HeapSys / (1 << 20),
			"gc_cycles":     mem.NumGC,
			"num_cpu":       runtime.NumCPU(),
		},
		"rate_limits": map[string]any{
			"per_minute":     perMinute,
			"per_hour":       perHour,
			"current_minute": curMinute,
			"current_hour":   curHour,
		},
		"configuration": map[string]any{
			"ayrshare_timeout": int(config.Timeout().Seconds()),
			"debug_mode":       config.Debug(),
		},
	}
}
