package template

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
)

func writeTestSkeleton(t *testing.T, dir, name string) {
	t.Helper()
	skeleton := `\documentclass{article}
\definecolor{primaryColor}{RGB}{59, 130, 246}
\begin{document}
\end{document}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(skeleton), 0644))
}

func managerConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Templates.Default = "rendercv_classic"
	cfg.Latex.Compiler = "definitely-not-a-latex-compiler"
	cfg.Latex.CompilePasses = 2
	cfg.Latex.Timeout = 5 * time.Second
	cfg.Latex.TemplateDir = t.TempDir()
	return cfg
}

func resumeData() map[string]interface{} {
	return map[string]interface{}{
		"personal_info": map[string]interface{}{
			"name":  "Jane Doe",
			"email": "jane@example.com",
		},
		"summary": "Engineer at A&B Corp",
		"skills":  []interface{}{"Go", "C++"},
		"experience": []interface{}{
			map[string]interface{}{
				"company":    "A&B Corp",
				"position":   "Engineer",
				"start_date": "2020",
				"current":    true,
			},
		},
	}
}

func TestManagerRender_NativeStyle(t *testing.T) {
	m := NewManager(managerConfig(t))

	pdf, err := m.Render(context.Background(), resumeData(), "rendercv_classic", "")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestManagerRender_UnknownStyleFallsBackToDefault(t *testing.T) {
	m := NewManager(managerConfig(t))

	// the configured default is a native style, so the render succeeds
	// without any markup skeleton on disk
	pdf, err := m.Render(context.Background(), resumeData(), "no_such_style", "")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestManagerRender_MarkupStyleWithoutSkeletonFile(t *testing.T) {
	m := NewManager(managerConfig(t))

	// auto_cv selects the markup backend; with an empty template dir the
	// skeleton read fails
	_, err := m.Render(context.Background(), resumeData(), "auto_cv", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateFileNotFound)
}

func TestManagerDescribeStyle_UnknownIsError(t *testing.T) {
	m := NewManager(managerConfig(t))

	// render falls back on unknown ids, describe does not
	_, err := m.DescribeStyle("no_such_style")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	info, err := m.DescribeStyle("yuan")
	require.NoError(t, err)
	assert.Equal(t, "yuan", info.ID)
}

func TestManagerListStyles(t *testing.T) {
	m := NewManager(managerConfig(t))
	assert.Len(t, m.ListStyles(), 7)
}

func TestManagerRenderFallback(t *testing.T) {
	m := NewManager(managerConfig(t))

	pdf, err := m.RenderFallback(resumeData(), "#10B981")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestManagerRenderFallback_EmptyData(t *testing.T) {
	m := NewManager(managerConfig(t))

	pdf, err := m.RenderFallback(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestManagerRenderSource_NativeStyleStillHasSource(t *testing.T) {
	cfg := managerConfig(t)
	writeTestSkeleton(t, cfg.Latex.TemplateDir, "rendercv_classic.tex")
	m := NewManager(cfg)

	source, err := m.RenderSource(resumeData(), "rendercv_classic", "")
	require.NoError(t, err)
	assert.Contains(t, string(source), `\begin{document}`)
	assert.Contains(t, string(source), `A\&B Corp`)
}

func TestManagerCompilerAvailable_MissingBinary(t *testing.T) {
	m := NewManager(managerConfig(t))
	assert.False(t, m.CompilerAvailable())
}
