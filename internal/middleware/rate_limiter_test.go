package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetRateMap() {
	rateMapMu.Lock()
	defer rateMapMu.Unlock()
	rateMap = make(map[string]*rateEntry)
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	resetRateMap()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(3, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "203.0.113.7").Code)
	}
	blocked := hit(r, "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))

	// A different IP has its own window.
	assert.Equal(t, http.StatusOK, hit(r, "203.0.113.8").Code)
}

func TestRateLimiterPurgeDropsExpiredEntries(t *testing.T) {
	resetRateMap()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(100, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit(r, "198.51.100.1")
	hit(r, "198.51.100.2")
	hit(r, "198.51.100.3")
	require.Equal(t, 3, entryCount())

	// Nothing has expired yet.
	assert.Equal(t, 0, purgeExpiredEntries(time.Now()))
	require.Equal(t, 3, entryCount())

	// Once the windows lapse, every idle IP is dropped.
	assert.Equal(t, 3, purgeExpiredEntries(time.Now().Add(2*time.Minute)))
	assert.Equal(t, 0, entryCount())

	// A returning client simply gets a fresh entry.
	assert.Equal(t, http.StatusOK, hit(r, "198.51.100.1").Code)
	assert.Equal(t, 1, entryCount())
}
