package models

// CreateResumeRequest is the payload for storing a new resume document.
// Data carries the raw resume shape; it is normalized at render time, not
// at storage time, so legacy payloads survive round-trips unchanged.
type CreateResumeRequest struct {
	Title string                 `json:"title"`
	Data  map[string]interface{} `json:"data" validate:"required"`
}

// UpdateResumeRequest is the payload for replacing a stored resume.
type UpdateResumeRequest struct {
	Title string                 `json:"title"`
	Data  map[string]interface{} `json:"data" validate:"required"`
}

// ExportPDFRequest is the payload for rendering a resume to PDF.
type ExportPDFRequest struct {
	Data       map[string]interface{} `json:"data" validate:"required"`
	TemplateID string                 `json:"template_id"`
	ThemeColor string                 `json:"theme_color"`
}

// ExportDOCXRequest is the payload for rendering a resume to DOCX.
type ExportDOCXRequest struct {
	Data       map[string]interface{} `json:"data" validate:"required"`
	ThemeColor string                 `json:"theme_color"`
}

// EnhanceTextRequest is the payload for AI text enhancement.
type EnhanceTextRequest struct {
	Text    string `json:"text" validate:"required"`
	Style   string `json:"style,omitempty"`   // professional, concise, impactful, ats-optimized
	Section string `json:"section,omitempty"` // which resume section the text belongs to
}

// ATSScoreRequest is the payload for ATS compatibility scoring.
type ATSScoreRequest struct {
	Data           map[string]interface{} `json:"data" validate:"required"`
	JobDescription string                 `json:"job_description,omitempty"`
	UseAI          bool                   `json:"use_ai,omitempty"`
}
