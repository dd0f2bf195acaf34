package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// ClaudeProvider implements the completion provider interface using
// Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Complete sends the conversation to Claude and returns the assistant's
// text, with markdown code fences stripped.
func (cp *ClaudeProvider) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	startTime := time.Now()

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages:    make([]anthropic.MessageParam, 0, len(messages)),
	}

	for _, msg := range messages {
		role := anthropic.MessageParamRoleUser
		if msg.Role == models.ChatRoleAssistant {
			role = anthropic.MessageParamRoleAssistant
		}
		params.Messages = append(params.Messages, anthropic.MessageParam{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: msg.Content},
			}},
			Role: role,
		})
	}

	response, err := cp.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	text, err := cp.extractText(response)
	if err != nil {
		return "", err
	}

	cp.logger.Debug("Claude completion finished", map[string]interface{}{
		"provider":        "claude",
		"messages":        len(messages),
		"response_length": len(text),
		"processing_time": time.Since(startTime).String(),
	})

	return text, nil
}

// extractText pulls the first text block from the response and removes
// any code fences the model wrapped it in.
func (cp *ClaudeProvider) extractText(response *anthropic.Message) (string, error) {
	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	}

	return responseText, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	// Create a simple test request to check if the API is accessible
	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 500,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
