package llm

import (
	"context"
	"errors"

	"resumeforge/pkg/models"
)

var (
	// ErrServiceUnavailable is returned when no provider is configured or
	// the provider failed its health check.
	ErrServiceUnavailable = errors.New("llm service unavailable")

	// ErrProvider wraps failures coming back from the provider API.
	ErrProvider = errors.New("llm provider error")
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Complete sends the conversation to the model and returns the
	// assistant's text response.
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
