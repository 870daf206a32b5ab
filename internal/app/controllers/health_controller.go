package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sis-eval/backend/internal/app/models/dto"
)

// Pinger reports whether a dependency answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness endpoint
type HealthController struct {
	db     Pinger
	logger zerolog.Logger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger, lgr zerolog.Logger) *HealthController {
	return &HealthController{db: db, logger: lgr}
}

// Health reports liveness and database reachability
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service and database are up"
// @Failure 503 {object} dto.HealthResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "up", Timestamp: time.Now()}
	status := http.StatusOK

	if err := c.db.Ping(pingCtx); err != nil {
		c.logger.Warn().Err(err).Msg("Health check: database unreachable")
		resp.Status = "degraded"
		resp.Database = "down"
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, resp)
}
