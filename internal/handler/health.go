package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports readiness of the two backing stores. Postgres holds the
// ledger, so losing it makes the service unavailable; redis only backs the
// stats cache, so losing it degrades the service but keeps it serving.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		pgState := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			pgState = "down"
		}

		cacheState := "disabled"
		if rdb != nil {
			cacheState = "up"
			if rdb.Ping(ctx).Err() != nil {
				cacheState = "down"
			}
		}

		status := "ok"
		code := http.StatusOK
		switch {
		case pgState == "down":
			status = "unavailable"
			code = http.StatusServiceUnavailable
		case cacheState == "down":
			status = "degraded"
		}

		c.JSON(code, gin.H{
			"service": "essencia",
			"status":  status,
			"checks": gin.H{
				"postgres": pgState,
				"redis":    cacheState,
			},
		})
	}
}
