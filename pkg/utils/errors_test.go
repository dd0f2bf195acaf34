package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorError(t *testing.T) {
	withDetail := &CustomError{Code: 422, Message: "Rendering failed", Detail: "missing template"}
	assert.Equal(t, "Rendering failed: missing template", withDetail.Error())

	withoutDetail := &CustomError{Code: 404, Message: "Resume not found"}
	assert.Equal(t, "Resume not found", withoutDetail.Error())
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *CustomError
		code    int
		message string
	}{
		{"bad request", NewBadRequestError("bad input"), http.StatusBadRequest, "bad input"},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound, "missing"},
		{"internal", NewInternalServerError("boom"), http.StatusInternalServerError, "boom"},
		{"timeout", NewTimeoutError("too slow"), http.StatusRequestTimeout, "too slow"},
		{"validation", NewValidationError("name required"), http.StatusBadRequest, "Validation failed"},
		{"render", NewRenderError("compile error"), http.StatusUnprocessableEntity, "Rendering failed"},
		{"llm", NewLLMError("provider down"), http.StatusBadGateway, "LLM processing failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}
