package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumeforge/internal/logging"
	"resumeforge/internal/store"
	"resumeforge/pkg/models"
)

var resumeValidator = validator.New()

// CreateResumeHandler handles POST /api/v1/resumes
func CreateResumeHandler(resumeStore *store.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)
		logger := logging.GetGlobalLogger()

		var req models.CreateResumeRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, requestID, "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "Request validation failed: "+err.Error())
		}

		resume, err := resumeStore.Create(c.Request().Context(), req.Title, req.Data)
		if err != nil {
			logger.Error("Failed to create resume", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return storeError(c, requestID, err)
		}

		return c.JSON(http.StatusCreated, resume)
	}
}

// GetResumeHandler handles GET /api/v1/resumes/:id
func GetResumeHandler(resumeStore *store.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)

		resume, err := resumeStore.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return storeError(c, requestID, err)
		}
		return c.JSON(http.StatusOK, resume)
	}
}

// ListResumesHandler handles GET /api/v1/resumes
func ListResumesHandler(resumeStore *store.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)

		resumes, err := resumeStore.List(c.Request().Context())
		if err != nil {
			return storeError(c, requestID, err)
		}
		return c.JSON(http.StatusOK, resumes)
	}
}

// UpdateResumeHandler handles PUT /api/v1/resumes/:id
func UpdateResumeHandler(resumeStore *store.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)

		var req models.UpdateResumeRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, requestID, "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "Request validation failed: "+err.Error())
		}

		resume, err := resumeStore.Update(c.Request().Context(), c.Param("id"), req.Title, req.Data)
		if err != nil {
			return storeError(c, requestID, err)
		}
		return c.JSON(http.StatusOK, resume)
	}
}

// DeleteResumeHandler handles DELETE /api/v1/resumes/:id
func DeleteResumeHandler(resumeStore *store.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)

		if err := resumeStore.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return storeError(c, requestID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// SampleResumeHandler handles GET /api/v1/resumes/sample, returning the
// bundled demo payload in its raw, pre-normalization shape.
func SampleResumeHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.SampleResumeData())
}

func storeError(c echo.Context, requestID string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:     "resume_not_found",
			Message:   err.Error(),
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:     "store_error",
		Message:   err.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
