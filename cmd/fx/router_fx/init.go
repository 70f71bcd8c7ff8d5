package router_fx

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"feedbackapi/internal/api"
	"feedbackapi/internal/api/controllers"
	"feedbackapi/internal/config"
	"feedbackapi/internal/infra"
)

var Module = fx.Provide(
	provideHealthController, provideRouter)

func provideHealthController(db *gorm.DB, logger *zap.Logger) *controllers.HealthController {
	return controllers.NewHealthController(func(ctx context.Context) error {
		return infra.Ping(ctx, db)
	}, logger)
}

func provideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	registry *prometheus.Registry,
	feedbackController *controllers.FeedbackController,
	healthController *controllers.HealthController) *gin.Engine {

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	return api.NewRouter(api.RouterDeps{
		Config:             cfg,
		Logger:             logger,
		Registry:           registry,
		FeedbackController: feedbackController,
		HealthController:   healthController,
	})
}
