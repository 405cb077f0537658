package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/database"
)

// HealthHandler reports whether the API and its backing stores respond
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// Health handles GET /health. Redis is optional, so its failure only
// degrades the report.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{"database": "ok"}
	if err := database.HealthCheck(ctx, h.db); err != nil {
		_ = c.Error(err)
		checks["database"] = "unavailable"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "Database unavailable",
			"data":    gin.H{"status": "unhealthy", "checks": checks},
		})
		return
	}

	switch {
	case h.redis == nil:
		checks["redis"] = "disabled"
	case h.redis.Ping(ctx).Err() != nil:
		checks["redis"] = "unavailable"
	default:
		checks["redis"] = "ok"
	}
	respond(c, http.StatusOK, "Recipe API is running", gin.H{"status": "healthy", "checks": checks})
}
