package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"feedbackapi/internal/models/response_models"
	"feedbackapi/pkg/utils"
)

// Pinger reports whether the database is reachable.
type Pinger func(ctx context.Context) error

type HealthController struct {
	ping   Pinger
	logger *zap.Logger
}

func NewHealthController(ping Pinger, logger *zap.Logger) *HealthController {
	return &HealthController{ping: ping, logger: logger}
}

func (h *HealthController) Root(c *gin.Context) {
	utils.RespondMessage(c, http.StatusOK, "Feedback API is running!")
}

func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err), zap.String("trace_id", utils.TraceID(c)))
		utils.RespondJSON(c, http.StatusServiceUnavailable, response_models.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}

	utils.RespondJSON(c, http.StatusOK, response_models.HealthResponse{Status: "ok", Database: "ok"})
}
