package middleware

import (
	"net/http"
	"sync"
	"time"

	"essencia/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	rateMap   = make(map[string]*rateEntry)
	rateMapMu sync.Mutex
)

// RateLimiter returns a general-purpose sliding-window rate limiter,
// keyed by client IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rateMapMu.Lock()
		entry, exists := rateMap[ip]
		if !exists {
			entry = &rateEntry{}
			rateMap[ip] = entry
		}
		rateMapMu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			// Reset sliding window
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, slow down"))
			return
		}
		c.Next()
	}
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// Periodically drops expired entries so rateMap does not grow by one entry
// per client IP forever.

const purgeInterval = 5 * time.Minute

func init() {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			if purged := purgeExpiredEntries(time.Now()); purged > 0 {
				log.Debug().
					Int("entries_purged", purged).
					Int("entries_remaining", entryCount()).
					Msg("rate limiter map purged")
			}
		}
	}()
}

func purgeExpiredEntries(now time.Time) int {
	rateMapMu.Lock()
	defer rateMapMu.Unlock()

	purged := 0
	for ip, entry := range rateMap {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(rateMap, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}

func entryCount() int {
	rateMapMu.Lock()
	defer rateMapMu.Unlock()
	return len(rateMap)
}
