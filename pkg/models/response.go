package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// StoredResume is a resume document as persisted in the document store.
type StoredResume struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title,omitempty"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// EnhanceTextResponse is returned by the AI text enhancement endpoint.
type EnhanceTextResponse struct {
	Success   bool   `json:"success"`
	Enhanced  string `json:"enhanced"`
	Style     string `json:"style"`
	RequestID string `json:"request_id"`
}

// ATSScoreResponse is returned by the ATS scoring endpoints.
type ATSScoreResponse struct {
	Success         bool     `json:"success"`
	Score           int      `json:"score"`
	Feedback        []string `json:"feedback"`
	MissingKeywords []string `json:"missing_keywords"`
	Improvements    []string `json:"improvements"`
	Source          string   `json:"source"` // "heuristic" or "ai"
	RequestID       string   `json:"request_id"`
}
