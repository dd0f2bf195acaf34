package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"resumeforge/internal/logging/types"
)

// BetterstackAdapter ships log entries to Betterstack over HTTP.
type BetterstackAdapter struct {
	name          string
	config        BetterstackConfig
	httpClient    *http.Client
	mu            sync.Mutex
	healthy       bool
	lastError     error
	lastErrorTime time.Time
}

// BetterstackConfig configures the Betterstack adapter.
type BetterstackConfig struct {
	SourceToken string        `yaml:"source_token"`
	Endpoint    string        `yaml:"endpoint"`
	MaxRetries  int           `yaml:"max_retries"`
	Timeout     time.Duration `yaml:"timeout"`
}

// betterstackEntry is the wire format Betterstack ingests; "dt" carries
// the event timestamp.
type betterstackEntry struct {
	Timestamp time.Time              `json:"dt"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

func NewBetterstackAdapter(name string, config BetterstackConfig) (*BetterstackAdapter, error) {
	if config.SourceToken == "" {
		return nil, fmt.Errorf("source_token is required for Betterstack adapter")
	}
	if config.Endpoint == "" {
		config.Endpoint = "https://in.logs.betterstack.com"
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &BetterstackAdapter{
		name:   name,
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		healthy: true,
	}, nil
}

func (a *BetterstackAdapter) Write(entry *types.Entry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.send(betterstackEntry{
		Timestamp: entry.Timestamp,
		Level:     entry.Level.String(),
		Message:   entry.Message,
		Fields:    entry.Fields,
	})
	if err != nil {
		a.healthy = false
		a.lastError = err
		a.lastErrorTime = time.Now()
		return fmt.Errorf("failed to send log to Betterstack: %w", err)
	}

	a.healthy = true
	a.lastError = nil
	return nil
}

func (a *BetterstackAdapter) Close() error {
	if transport, ok := a.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
	return nil
}

func (a *BetterstackAdapter) Health() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.healthy {
		return fmt.Errorf("adapter unhealthy: %v (last error at %v)", a.lastError, a.lastErrorTime)
	}
	return nil
}

func (a *BetterstackAdapter) Name() string { return a.name }

func (a *BetterstackAdapter) send(entry betterstackEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodPost, a.config.Endpoint, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+a.config.SourceToken)

		resp, err := a.httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * time.Second)
			continue
		}

		status, err := drainResponse(resp)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryableStatus(status) {
			break
		}
		time.Sleep(time.Duration(attempt+1) * time.Second)
	}

	return fmt.Errorf("failed to send log after %d retries: %w", a.config.MaxRetries, lastErr)
}

func drainResponse(resp *http.Response) (int, error) {
	defer resp.Body.Close()

	// Error bodies are capped so a misbehaving endpoint cannot balloon memory.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.StatusCode, nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return resp.StatusCode, fmt.Errorf("unauthorized: invalid source token")
	case http.StatusTooManyRequests:
		return resp.StatusCode, fmt.Errorf("rate limited: %s", string(body))
	default:
		return resp.StatusCode, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
