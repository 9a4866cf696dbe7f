package router

import (
	"github.com/gin-gonic/gin"

	"drishti/internal/config"
	"drishti/internal/handler"
	"drishti/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	scanH *handler.ScanHandler,
	exportH *handler.ExportHandler,
	docsH *handler.DocsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check and docs
	r.GET("/healthz", healthH.Liveness)
	r.GET("/docs", docsH.Docs)

	v1 := r.Group("/api/v1")

	// Scan routes
	v1.POST("/scan", scanH.Scan)
	v1.POST("/scan/export/csv", exportH.ExportCSV)
	v1.POST("/scan/export/xlsx", exportH.ExportXLSX)

	return r
}
