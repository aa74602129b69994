package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiterConfig is runtime-tunable through the system endpoint.
// Rate uses the ulule format, e.g. "30-M" or "1000-H".
type RateLimiterConfig struct {
	Rate        string   `json:"rate"`
	SkipPaths   []string `json:"skip_paths"` // prefix match
	AddHeaders  bool     `json:"add_headers"`
	DenyStatus  int      `json:"deny_status"`
	DenyMessage string   `json:"deny_message"`
}

var (
	rlMu     sync.RWMutex
	rlConfig = RateLimiterConfig{
		Rate:        "30-M",
		AddHeaders:  true,
		DenyStatus:  http.StatusTooManyRequests,
		DenyMessage: "too many requests",
	}
)

func SetRateLimiterConfig(cfg RateLimiterConfig) {
	rlMu.Lock()
	defer rlMu.Unlock()
	if cfg.DenyStatus == 0 {
		cfg.DenyStatus = http.StatusTooManyRequests
	}
	if cfg.DenyMessage == "" {
		cfg.DenyMessage = "too many requests"
	}
	rlConfig = cfg
}

func GetRateLimiterConfig() RateLimiterConfig {
	rlMu.RLock()
	defer rlMu.RUnlock()
	return rlConfig
}

// RateLimiter keys on client IP against an in-memory store. The rate set at
// construction is the baseline; config updates only change deny behavior and
// skip paths, not the already-built store.
func RateLimiter(rate string) gin.HandlerFunc {
	if rate == "" {
		rate = GetRateLimiterConfig().Rate
	}
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		// a broken rate should not take the route down
		return func(c *gin.Context) { c.Next() }
	}
	instance := limiter.New(memory.NewStore(), parsed)

	return func(c *gin.Context) {
		cfg := GetRateLimiterConfig()
		for _, p := range cfg.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, p) {
				c.Next()
				return
			}
		}

		lctx, err := instance.Get(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}
		if cfg.AddHeaders {
			c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			c.Header("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))
		}
		if lctx.Reached {
			c.AbortWithStatusJSON(cfg.DenyStatus, gin.H{"error": cfg.DenyMessage})
			return
		}
		c.Next()
	}
}
