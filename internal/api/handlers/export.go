package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumeforge/internal/logging"
	"resumeforge/internal/template"
	"resumeforge/internal/template/docx"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

var exportValidator = validator.New()

const (
	pdfContentType   = "application/pdf"
	docxContentType  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	latexContentType = "application/x-latex"
)

// ExportPDFHandler handles POST /api/v1/export/pdf. When the chosen
// style fails to compile, the document is re-rendered with the plain
// fallback layout rather than failing the request.
func ExportPDFHandler(tmplManager *template.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)
		logger := logging.WithRequestID(requestID)

		var req models.ExportPDFRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, requestID, "Invalid request body: "+err.Error())
		}
		if err := exportValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "Request validation failed: "+err.Error())
		}

		logger.Info("Processing PDF export", map[string]interface{}{
			"template_id": req.TemplateID,
			"theme_color": req.ThemeColor,
		})

		pdf, err := tmplManager.Render(c.Request().Context(), req.Data, req.TemplateID, req.ThemeColor)
		if err != nil {
			if !recoverable(err) {
				return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
					Error:     "render_failed",
					Message:   "Rendering failed: " + utils.TruncateString(err.Error(), 200),
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			logger.Warn("Styled render failed, using fallback layout", map[string]interface{}{
				"template_id": req.TemplateID,
				"error":       err.Error(),
			})

			pdf, err = tmplManager.RenderFallback(req.Data, req.ThemeColor)
			if err != nil {
				logger.Error("Fallback render failed", map[string]interface{}{
					"error": err.Error(),
				})
				return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
					Error:     "render_failed",
					Message:   "Rendering failed: " + utils.TruncateString(err.Error(), 200),
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=resume.pdf`)
		return c.Blob(http.StatusOK, pdfContentType, pdf)
	}
}

// ExportDOCXHandler handles POST /api/v1/export/docx
func ExportDOCXHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)
		logger := logging.WithRequestID(requestID)

		var req models.ExportDOCXRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, requestID, "Invalid request body: "+err.Error())
		}
		if err := exportValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "Request validation failed: "+err.Error())
		}

		logger.Info("Processing DOCX export")

		doc := models.NormalizeResume(req.Data)
		content, err := docx.NewRenderer(req.ThemeColor).Render(doc)
		if err != nil {
			logger.Error("DOCX render failed", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "render_failed",
				Message:   "Rendering failed: " + utils.TruncateString(err.Error(), 200),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=resume.docx`)
		return c.Blob(http.StatusOK, docxContentType, content)
	}
}

// ExportLatexHandler handles POST /api/v1/export/latex. It returns the
// generated LaTeX source without invoking the compiler, so it works on
// hosts with no TeX toolchain.
func ExportLatexHandler(tmplManager *template.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)
		logger := logging.WithRequestID(requestID)

		var req models.ExportPDFRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, requestID, "Invalid request body: "+err.Error())
		}
		if err := exportValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "Request validation failed: "+err.Error())
		}

		logger.Info("Processing LaTeX source export", map[string]interface{}{
			"template_id": req.TemplateID,
		})

		source, err := tmplManager.RenderSource(req.Data, req.TemplateID, req.ThemeColor)
		if err != nil {
			if errors.Is(err, template.ErrTemplateFileNotFound) {
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error:     "template_not_found",
					Message:   "No LaTeX source available for template: " + req.TemplateID,
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "render_failed",
				Message:   "Rendering failed: " + utils.TruncateString(err.Error(), 200),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=resume.tex`)
		return c.Blob(http.StatusOK, latexContentType, source)
	}
}

// recoverable reports whether a styled render failure should fall back
// to the plain layout instead of surfacing an error.
func recoverable(err error) bool {
	return errors.Is(err, template.ErrCompilationFailed) ||
		errors.Is(err, template.ErrCompilationTimeout) ||
		errors.Is(err, template.ErrTemplateFileNotFound)
}

func badRequest(c echo.Context, requestID, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:     "invalid_request",
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
