package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/routes"
	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/store"
	"resumeforge/internal/template"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// httpErrorHandler converts errors that escape handlers into the shared
// ErrorResponse shape so clients never see Echo's default payload.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	switch e := err.(type) {
	case *utils.CustomError:
		code = e.Code
		message = e.Error()
	case *echo.HTTPError:
		code = e.Code
		if s, ok := e.Message.(string); ok {
			message = s
		}
	}

	requestID, _ := c.Get("request_id").(string)
	resp := models.ErrorResponse{
		Error:     http.StatusText(code),
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
	if jsonErr := c.JSON(code, resp); jsonErr != nil {
		logging.GetGlobalLogger().Error("Failed to write error response", map[string]interface{}{
			"error": jsonErr.Error(),
		})
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting ResumeForge")

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Error("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize resume store
	resumeStore := store.NewResumeStore(cfg)
	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
		if err := resumeStore.Ping(ctx); err != nil {
			logger.Warn("Redis unreachable - stored resume endpoints will fail", map[string]interface{}{
				"error": err.Error(),
			})
		}
		cancel()
	}

	// Initialize template manager
	tmplManager := template.NewManager(cfg)
	if !tmplManager.CompilerAvailable() {
		logger.Warn("LaTeX compiler not found - export and preview will fall back to the plain layout for markup styles", map[string]interface{}{
			"compiler": cfg.Latex.Compiler,
		})
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler

	// Setup routes
	routes.SetupRoutes(e, cfg, tmplManager, llmManager, resumeStore)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping LLM manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Closing resume store...")
		if err := resumeStore.Close(); err != nil {
			logger.Error("Error closing resume store", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed to start", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}
