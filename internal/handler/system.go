package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MindAlchemy/pkg/middleware"
	"MindAlchemy/pkg/response"
)

func (h *Handlers) handleHealthCheck(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database connection failed"})
		return
	}
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database ping failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *Handlers) handleGetRateLimiterConfig(c *gin.Context) {
	response.Success(c, "ok", middleware.GetRateLimiterConfig())
}

func (h *Handlers) handleUpdateRateLimiterConfig(c *gin.Context) {
	var cfg middleware.RateLimiterConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.Fail(c, "invalid request", nil)
		return
	}
	middleware.SetRateLimiterConfig(cfg)
	response.Success(c, "rate limiter config updated", nil)
}
