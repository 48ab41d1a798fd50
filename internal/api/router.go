package api

import (
	"github.com/Conceptual-Machines/sonicdna-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/sonicdna-api/internal/api/middleware"
	"github.com/Conceptual-Machines/sonicdna-api/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(cfg *config.Config, analyzer handlers.Analyzer, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.CORSAllowedOrigins))

	// Health check
	healthHandler := handlers.NewHealthHandler(analyzer)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoints
	metricsHandler := handlers.NewMetricsHandler(version, analyzer)
	router.GET("/api/metrics", metricsHandler.GetMetrics)
	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// API routes v1 (public; no accounts)
	v1 := router.Group("/api/v1")
	{
		sonicHandler := handlers.NewSonicHandler(analyzer)
		v1.POST("/analyze", sonicHandler.Analyze)
		v1.POST("/links", sonicHandler.Links)
	}

	return router
}
