package handler

import (
	"context"
	"net/http"
	"time"

	"stockbook/internal/storage"

	"github.com/gin-gonic/gin"
)

// Health reports service and storage-backend status.
func Health(kv storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		code := http.StatusOK
		if _, err := kv.Exists(ctx, "health_probe"); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "time": time.Now().UTC().Format(time.RFC3339)})
	}
}
