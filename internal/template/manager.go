package template

import (
	"context"
	"fmt"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/template/markup"
	"resumeforge/internal/template/native"
	"resumeforge/pkg/models"
)

// Manager is the single entry point for rendering: it normalizes the raw
// resume data, resolves the style in the registry and dispatches to the
// native layout backend or the markup compilation backend. It holds no
// per-render state and performs no storage or network access; concurrent
// calls are independent.
type Manager struct {
	registry  *Registry
	processor *markup.Processor
	compiler  *markup.Compiler
	logger    logging.Logger
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		registry:  NewRegistry(cfg.Templates.Default),
		processor: markup.NewProcessor(cfg.Latex.TemplateDir),
		compiler:  markup.NewCompiler(cfg),
		logger:    logging.GetGlobalLogger(),
	}
}

// Render produces a PDF for the given raw resume data, style id and theme
// color. An unknown style id silently falls back to the default style;
// strict lookups belong to DescribeStyle. The manager never retries a
// failed backend, callers decide whether to fall back to a different
// renderer.
func (m *Manager) Render(ctx context.Context, data map[string]interface{}, templateID, themeColor string) ([]byte, error) {
	entry, ok := m.registry.Get(templateID)
	if !ok {
		m.logger.Debug("Unknown style id, using default", map[string]interface{}{
			"template_id": templateID,
			"default":     m.registry.Default().ID,
		})
		entry = m.registry.Default()
	}

	doc := models.NormalizeResume(data)

	if entry.Backend == BackendMarkup && markup.HasSkeleton(entry.ID) {
		return m.renderMarkup(ctx, doc, entry, themeColor)
	}
	return m.renderNative(doc, entry, themeColor)
}

// RenderSource produces the markup source for a style without compiling
// it, for callers that want the .tex document itself.
func (m *Manager) RenderSource(data map[string]interface{}, templateID, themeColor string) ([]byte, error) {
	entry, ok := m.registry.Get(templateID)
	if !ok {
		entry = m.registry.Default()
	}
	doc := models.NormalizeResume(data)
	return m.processor.Source(doc, entry.ID, themeColor)
}

// RenderFallback renders with the guaranteed-simple layout. The export
// flow calls this after a primary style failed; it uses no subprocess and
// no style-specific policies.
func (m *Manager) RenderFallback(data map[string]interface{}, themeColor string) ([]byte, error) {
	doc := models.NormalizeResume(data)
	out, err := native.NewFallback(themeColor).Render(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out, nil
}

// ListStyles returns the metadata of every registered style.
func (m *Manager) ListStyles() []StyleInfo {
	return m.registry.List()
}

// DescribeStyle returns the metadata for one style. Unlike Render, an
// unknown id is an error here; the asymmetry is long-standing caller
// behavior.
func (m *Manager) DescribeStyle(templateID string) (StyleInfo, error) {
	entry, ok := m.registry.Get(templateID)
	if !ok {
		return StyleInfo{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}
	return entry.StyleInfo, nil
}

// CompilerAvailable reports whether the external markup compiler responds
// to a version probe. Advisory only; health reporting uses it.
func (m *Manager) CompilerAvailable() bool {
	return m.compiler.Probe() == nil
}

func (m *Manager) renderNative(doc *models.ResumeDocument, entry StyleEntry, themeColor string) ([]byte, error) {
	out, err := entry.NewRenderer(themeColor).Render(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: style %s: %v", ErrRender, entry.ID, err)
	}
	return out, nil
}

func (m *Manager) renderMarkup(ctx context.Context, doc *models.ResumeDocument, entry StyleEntry, themeColor string) ([]byte, error) {
	source, err := m.processor.Source(doc, entry.ID, themeColor)
	if err != nil {
		return nil, err
	}
	pdf, err := m.compiler.Compile(ctx, source, m.processor.TemplateDir(), markup.AuxFiles(entry.ID))
	if err != nil {
		m.logger.Error("Markup compilation failed", map[string]interface{}{
			"template_id": entry.ID,
			"error":       err.Error(),
		})
		return nil, err
	}
	return pdf, nil
}
