package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthController reports service and database liveness
type HealthController struct {
	dbPool *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(dbPool *pgxpool.Pool) *HealthController {
	return &HealthController{dbPool: dbPool}
}

// Health reports whether the service and its database are reachable
// @Summary Health check
// @Description Reports service status including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	dbStatus := "up"
	if err := c.dbPool.Ping(pingCtx); err != nil {
		status = http.StatusServiceUnavailable
		dbStatus = "down"
	}

	overall := "ok"
	if dbStatus != "up" {
		overall = "degraded"
	}

	ctx.JSON(status, gin.H{
		"status":    overall,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
