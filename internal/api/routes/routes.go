package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resumeforge/internal/api/handlers"
	"resumeforge/internal/api/middleware"
	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/store"
	"resumeforge/internal/template"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, tmplManager *template.Manager, llmManager *llm.Manager, resumeStore *store.ResumeStore) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORS(cfg.Server.AllowOrigins))
	e.Use(middleware.RequestValidation())
	// Default timeout for most endpoints, extended for compilation and AI paths
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, cfg.Export.Timeout,
		"/api/v1/export", "/api/v1/ai", "/api/v1/templates"))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, resumeStore, tmplManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Template catalog routes
		templates := v1.Group("/templates")
		{
			templates.GET("", handlers.ListTemplatesHandler(tmplManager))
			templates.GET("/:id", handlers.GetTemplateHandler(tmplManager))
			templates.POST("/:id/preview", handlers.PreviewTemplateHandler(tmplManager))
		}

		// Document generation routes, rate limited per client
		export := v1.Group("/export", middleware.ExportRateLimit(cfg.Export.RateLimit, cfg.Export.Burst))
		{
			export.POST("/pdf", handlers.ExportPDFHandler(tmplManager))
			export.POST("/docx", handlers.ExportDOCXHandler())
			export.POST("/latex", handlers.ExportLatexHandler(tmplManager))
		}

		// Stored resume routes
		resumes := v1.Group("/resumes")
		{
			resumes.GET("/sample", handlers.SampleResumeHandler)
			resumes.POST("", handlers.CreateResumeHandler(resumeStore))
			resumes.GET("", handlers.ListResumesHandler(resumeStore))
			resumes.GET("/:id", handlers.GetResumeHandler(resumeStore))
			resumes.PUT("/:id", handlers.UpdateResumeHandler(resumeStore))
			resumes.DELETE("/:id", handlers.DeleteResumeHandler(resumeStore))
		}

		// AI assistance routes
		ai := v1.Group("/ai")
		{
			ai.POST("/enhance", handlers.EnhanceTextHandler(llmManager))
			ai.POST("/ats-score", handlers.ATSScoreHandler(llmManager))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "ResumeForge",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
