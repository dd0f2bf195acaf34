package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"resumeforge/pkg/models"
)

// ipLimiter tracks one token bucket per client IP. Idle entries are
// evicted so the map does not grow without bound.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipEntry
	limit    rate.Limit
	burst    int
}

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(perMinute, burst int) *ipLimiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	if burst <= 0 {
		burst = perMinute
	}
	l := &ipLimiter{
		limiters: make(map[string]*ipEntry),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
	go l.cleanup()
	return l
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &ipEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (l *ipLimiter) cleanup() {
	for range time.Tick(5 * time.Minute) {
		l.mu.Lock()
		for ip, entry := range l.limiters {
			if time.Since(entry.lastSeen) > 10*time.Minute {
				delete(l.limiters, ip)
			}
		}
		l.mu.Unlock()
	}
}

// ExportRateLimit throttles document generation per client IP. The
// limit is requests per minute.
func ExportRateLimit(perMinute, burst int) echo.MiddlewareFunc {
	limiter := newIPLimiter(perMinute, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.get(c.RealIP()).Allow() {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limited",
					Message:   "Too many export requests, slow down",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return next(c)
		}
	}
}
