package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/ats"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// stylePrompts maps enhancement styles to rewrite instructions.
var stylePrompts = map[string]string{
	"professional":  "Rewrite this to sound more professional and polished:",
	"concise":       "Make this more concise while keeping the impact:",
	"impactful":     "Rewrite this with strong action verbs and quantifiable results:",
	"ats-optimized": "Optimize this for ATS systems with relevant keywords:",
}

const defaultEnhanceStyle = "professional"

// EnhanceTextHandler handles POST /api/v1/ai/enhance
func EnhanceTextHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)
		logger := logging.GetGlobalLogger()

		var req models.EnhanceTextRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, requestID, "Invalid request body: "+err.Error())
		}
		if err := exportValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "Request validation failed: "+err.Error())
		}

		style := req.Style
		prompt, ok := stylePrompts[style]
		if !ok {
			style = defaultEnhanceStyle
			prompt = stylePrompts[defaultEnhanceStyle]
		}

		instruction := "You are an expert resume writer. " + prompt
		if req.Section != "" {
			instruction += " The text belongs to the resume's " + req.Section + " section."
		}

		logger.Info("Processing text enhancement", map[string]interface{}{
			"request_id":  requestID,
			"style":       style,
			"text_length": len(req.Text),
		})

		enhanced, err := llmManager.Complete(c.Request().Context(), []models.ChatMessage{
			{Role: models.ChatRoleUser, Content: instruction + "\n\n" + req.Text},
		})
		if err != nil {
			return llmError(c, requestID, logger, err)
		}

		return c.JSON(http.StatusOK, models.EnhanceTextResponse{
			Success:   true,
			Enhanced:  strings.TrimSpace(enhanced),
			Style:     style,
			RequestID: requestID,
		})
	}
}

// ATSScoreHandler handles POST /api/v1/ai/ats-score. By default the
// score comes from the local heuristic; use_ai routes the resume
// through the LLM, falling back to the heuristic when the model
// response cannot be parsed.
func ATSScoreHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)
		logger := logging.GetGlobalLogger()

		var req models.ATSScoreRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, requestID, "Invalid request body: "+err.Error())
		}
		if err := exportValidator.Struct(&req); err != nil {
			return badRequest(c, requestID, "Request validation failed: "+err.Error())
		}

		doc := models.NormalizeResume(req.Data)

		if req.UseAI && llmManager != nil && llmManager.IsHealthy() {
			if resp, err := aiScore(c, llmManager, req, requestID); err == nil {
				return c.JSON(http.StatusOK, resp)
			} else {
				logger.Warn("AI scoring failed, falling back to heuristic", map[string]interface{}{
					"request_id": requestID,
					"error":      err.Error(),
				})
			}
		}

		result := ats.NewScorer(doc).Score()
		return c.JSON(http.StatusOK, models.ATSScoreResponse{
			Success:         true,
			Score:           result.Score,
			Feedback:        result.Feedback,
			MissingKeywords: result.MissingKeywords,
			Improvements:    result.Improvements,
			Source:          "heuristic",
			RequestID:       requestID,
		})
	}
}

// aiScoreResult mirrors the JSON shape requested from the model.
type aiScoreResult struct {
	Score           int      `json:"score"`
	Feedback        string   `json:"feedback"`
	MissingKeywords []string `json:"missing_keywords"`
	Improvements    []string `json:"improvements"`
}

func aiScore(c echo.Context, llmManager *llm.Manager, req models.ATSScoreRequest, requestID string) (*models.ATSScoreResponse, error) {
	resumeJSON, err := json.Marshal(req.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize resume data: %w", err)
	}

	prompt := `You are an ATS (Applicant Tracking System) expert. Analyze the resume and provide:
1. A score out of 100
2. Detailed feedback
3. Missing important keywords
4. Specific improvements

Return your response in this JSON format, with no additional text:
{"score": 85, "feedback": "Your resume has good structure...", "missing_keywords": ["Python", "AWS"], "improvements": ["Add more quantifiable achievements"]}

Analyze this resume for ATS compatibility:

` + string(resumeJSON)

	if req.JobDescription != "" {
		prompt += "\n\nScore it against this job description:\n\n" + utils.TruncateString(req.JobDescription, 4000)
	}

	raw, err := llmManager.Complete(c.Request().Context(), []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	var parsed aiScoreResult
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	if parsed.Score < 0 {
		parsed.Score = 0
	}
	if parsed.Score > 100 {
		parsed.Score = 100
	}

	feedback := []string{}
	if parsed.Feedback != "" {
		feedback = strings.Split(strings.TrimSpace(parsed.Feedback), "\n")
	}

	return &models.ATSScoreResponse{
		Success:         true,
		Score:           parsed.Score,
		Feedback:        feedback,
		MissingKeywords: parsed.MissingKeywords,
		Improvements:    parsed.Improvements,
		Source:          "ai",
		RequestID:       requestID,
	}, nil
}

func llmError(c echo.Context, requestID string, logger logging.Logger, err error) error {
	if errors.Is(err, llm.ErrServiceUnavailable) {
		return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:     "llm_unavailable",
			Message:   "AI features are not available: " + err.Error(),
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}

	logger.Error("LLM request failed", map[string]interface{}{
		"request_id": requestID,
		"error":      err.Error(),
	})

	kind := "llm_error"
	if errors.Is(err, llm.ErrProvider) {
		kind = "llm_provider_error"
	}
	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:     kind,
		Message:   "AI request failed: " + utils.TruncateString(err.Error(), 200),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
