package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"feedbackapi/internal/api/controllers"
	"feedbackapi/internal/config"
	"feedbackapi/pkg/middleware"
)

const FeedbackPrefix = "/api/feedback"

type RouterDeps struct {
	Config             *config.Config
	Logger             *zap.Logger
	Registry           *prometheus.Registry
	FeedbackController *controllers.FeedbackController
	HealthController   *controllers.HealthController
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins))
	r.Use(middleware.NewHTTPMetrics(deps.Registry).Middleware())

	RegisterRoutes(r, deps)

	return r
}

func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	r.GET("/", deps.HealthController.Root)
	r.GET("/health", deps.HealthController.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	feedbackGroup := r.Group(FeedbackPrefix)
	deps.FeedbackController.RegisterRoutes(feedbackGroup)
}
