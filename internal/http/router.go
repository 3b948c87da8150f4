package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/GylleadheBodedono/SCI/internal/http/handlers"
	httpMW "github.com/GylleadheBodedono/SCI/internal/http/middleware"
	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	ImportHandler      *httpH.ImportHandler
	MaintenanceHandler *httpH.MaintenanceHandler
	DisputeHandler     *httpH.DisputeHandler
	DashboardHandler   *httpH.DashboardHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestID())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Import
		if cfg.ImportHandler != nil {
			api.POST("/import", cfg.ImportHandler.Import)
		}

		// Maintenance (analyze is GET, apply is POST)
		if cfg.MaintenanceHandler != nil {
			api.GET("/maintenance/normalize", cfg.MaintenanceHandler.AnalyzeNormalization)
			api.POST("/maintenance/normalize", cfg.MaintenanceHandler.ApplyNormalization)
			api.GET("/maintenance/duplicates", cfg.MaintenanceHandler.AnalyzeDuplicates)
			api.POST("/maintenance/duplicates", cfg.MaintenanceHandler.RemoveDuplicates)
			api.GET("/maintenance/blank-rows", cfg.MaintenanceHandler.AnalyzeBlankRows)
			api.POST("/maintenance/blank-rows", cfg.MaintenanceHandler.RemoveBlankRows)
		}

		// Disputes
		if cfg.DisputeHandler != nil {
			api.GET("/disputes", cfg.DisputeHandler.List)
			api.POST("/disputes", cfg.DisputeHandler.Create)
			api.PUT("/disputes/:row", cfg.DisputeHandler.Update)
			api.DELETE("/disputes/:row", cfg.DisputeHandler.Delete)
		}

		// Dashboard
		if cfg.DashboardHandler != nil {
			api.GET("/dashboard", cfg.DashboardHandler.Get)
		}
	}

	return r
}
