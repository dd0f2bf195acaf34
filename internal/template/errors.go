package template

import (
	"errors"

	"resumeforge/internal/template/markup"
)

// Typed failures surfaced by the rendering engine. Handlers map these to
// HTTP responses; callers that want fallback behavior match with
// errors.Is and retry with a different renderer, never the same one.
var (
	ErrTemplateNotFound = errors.New("template_not_found")
	ErrRender           = errors.New("render_error")

	// Markup-backend failures, re-exported so callers match against one
	// package.
	ErrTemplateFileNotFound = markup.ErrTemplateFileNotFound
	ErrCompilationTimeout   = markup.ErrCompilationTimeout
	ErrCompilationFailed    = markup.ErrCompilationFailed
)
