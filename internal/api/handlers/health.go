package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/store"
	"resumeforge/internal/template"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

var startTime = time.Now()

const serviceVersion = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports whether the service's collaborators are
// reachable. The service stays ready without the LLM and without a
// LaTeX toolchain; those checks are informational.
func ReadinessHandler(llmManager *llm.Manager, resumeStore *store.ResumeStore, tmplManager *template.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{
			"api": "ok",
		}
		status := "ready"

		if llmManager != nil && llmManager.IsHealthy() {
			checks["llm"] = "ok"
		} else {
			checks["llm"] = "unavailable"
		}

		if tmplManager.CompilerAvailable() {
			checks["latex"] = "ok"
		} else {
			checks["latex"] = "unavailable"
		}

		if resumeStore != nil {
			if err := resumeStore.IsHealthy(c.Request().Context()); err != nil {
				checks["store"] = "unavailable"
				status = "degraded"
			} else {
				checks["store"] = "ok"
			}
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Liveness check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}
