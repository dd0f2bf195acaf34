package middleware

import (
	"net/http"
	"time"

	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"

	"github.com/labstack/echo/v4"
)

// maxBodyBytes bounds resume payloads; a resume with embedded
// descriptions stays well under 1MB.
const maxBodyBytes = 1024 * 1024

// RequestValidation assigns a request id and rejects oversized bodies.
// An inbound X-Request-ID is honored so callers can correlate logs.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = utils.GenerateRequestID()
			}
			c.Set("request_id", requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			method := c.Request().Method
			if method == http.MethodPost || method == http.MethodPut {
				if c.Request().ContentLength > maxBodyBytes {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
