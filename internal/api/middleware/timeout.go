package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies a longer timeout to slow route prefixes
// (LaTeX compilation, AI calls) and the default everywhere else.
func SelectiveTimeoutConfig(defaultTimeout, longTimeout time.Duration, longPrefixes ...string) echo.MiddlewareFunc {
	short := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
		Skipper: func(c echo.Context) bool {
			return hasPrefix(c.Request().URL.Path, longPrefixes)
		},
	})
	long := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: longTimeout,
		Skipper: func(c echo.Context) bool {
			return !hasPrefix(c.Request().URL.Path, longPrefixes)
		},
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return short(long(next))
	}
}

func hasPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
