package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

type stubProvider struct {
	response string
	err      error
}

func (p stubProvider) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	return p.response, p.err
}

func (p stubProvider) IsHealthy(ctx context.Context) error { return p.err }

func (p stubProvider) GetProviderName() string { return "stub" }

func TestManagerCompleteNotStarted(t *testing.T) {
	m := &Manager{}

	_, err := m.Complete(context.Background(), []models.ChatMessage{{Role: models.ChatRoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestManagerCompleteUnhealthy(t *testing.T) {
	m := &Manager{provider: stubProvider{response: "ok"}, healthy: false}

	_, err := m.Complete(context.Background(), []models.ChatMessage{{Role: models.ChatRoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestManagerCompleteProviderFailure(t *testing.T) {
	upstream := errors.New("upstream API rejected the request")
	m := &Manager{provider: stubProvider{err: upstream}, healthy: true}

	_, err := m.Complete(context.Background(), []models.ChatMessage{{Role: models.ChatRoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)
	assert.NotErrorIs(t, err, ErrServiceUnavailable)
	assert.Contains(t, err.Error(), "upstream API rejected the request")
}

func TestManagerCompleteSuccess(t *testing.T) {
	m := &Manager{provider: stubProvider{response: "enhanced text"}, healthy: true}

	result, err := m.Complete(context.Background(), []models.ChatMessage{{Role: models.ChatRoleUser, Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "enhanced text", result)
}
