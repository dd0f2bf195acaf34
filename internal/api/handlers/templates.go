package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/logging"
	"resumeforge/internal/template"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// ListTemplatesHandler handles GET /api/v1/templates
func ListTemplatesHandler(tmplManager *template.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, tmplManager.ListStyles())
	}
}

// GetTemplateHandler handles GET /api/v1/templates/:id
func GetTemplateHandler(tmplManager *template.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)
		templateID := c.Param("id")

		info, err := tmplManager.DescribeStyle(templateID)
		if err != nil {
			if errors.Is(err, template.ErrTemplateNotFound) {
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error:     "template_not_found",
					Message:   "Template not found: " + templateID,
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "internal_error",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, info)
	}
}

// PreviewTemplateHandler handles POST /api/v1/templates/:id/preview.
// The body may carry resume data; when it is absent the bundled sample
// resume is rendered so the style can be inspected without real data.
func PreviewTemplateHandler(tmplManager *template.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)
		logger := logging.GetGlobalLogger()
		templateID := c.Param("id")

		var req models.ExportPDFRequest
		if err := c.Bind(&req); err != nil || len(req.Data) == 0 {
			req.Data = models.SampleResumeData()
		}

		logger.Info("Generating template preview", map[string]interface{}{
			"request_id":  requestID,
			"template_id": templateID,
			"theme_color": req.ThemeColor,
		})

		pdf, err := tmplManager.Render(c.Request().Context(), req.Data, templateID, req.ThemeColor)
		if err != nil {
			if !recoverable(err) {
				return utils.NewRenderError(utils.TruncateString(err.Error(), 200))
			}

			logger.Warn("Styled preview failed, using fallback layout", map[string]interface{}{
				"request_id":  requestID,
				"template_id": templateID,
				"error":       err.Error(),
			})

			pdf, err = tmplManager.RenderFallback(req.Data, req.ThemeColor)
			if err != nil {
				logger.Error("Fallback preview failed", map[string]interface{}{
					"request_id": requestID,
					"error":      err.Error(),
				})
				return utils.NewRenderError(utils.TruncateString(err.Error(), 200))
			}
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename=preview_`+templateID+`.pdf`)
		return c.Blob(http.StatusOK, "application/pdf", pdf)
	}
}
