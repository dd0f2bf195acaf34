package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
	"resumeforge/internal/template"
	"resumeforge/pkg/models"
)

func handlerConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Templates.Default = "rendercv_classic"
	cfg.Latex.Compiler = "pdflatex"
	cfg.Latex.TemplateDir = t.TempDir()
	cfg.Latex.CompilePasses = 2
	return cfg
}

func TestListTemplatesHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := ListTemplatesHandler(template.NewManager(handlerConfig(t)))
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var styles []template.StyleInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &styles))
	assert.Len(t, styles, 7)

	ids := make([]string, 0, len(styles))
	for _, s := range styles {
		ids = append(ids, s.ID)
	}
	assert.Contains(t, ids, "auto_cv")
	assert.Contains(t, ids, "rendercv_classic")
}

func TestGetTemplateHandler(t *testing.T) {
	mgr := template.NewManager(handlerConfig(t))

	t.Run("known style", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("ethan")

		require.NoError(t, GetTemplateHandler(mgr)(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var info template.StyleInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "ethan", info.ID)
	})

	t.Run("unknown style returns 404", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, GetTemplateHandler(mgr)(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "template_not_found", resp.Error)
	})
}

func TestPreviewTemplateHandlerSampleData(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("yuan")

	h := PreviewTemplateHandler(template.NewManager(handlerConfig(t)))
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "preview_yuan.pdf")
	assert.True(t, len(rec.Body.Bytes()) > 4 && string(rec.Body.Bytes()[:4]) == "%PDF")
}

func TestPreviewTemplateHandlerFallsBack(t *testing.T) {
	// auto_cv uses the markup backend and its skeleton is absent from the
	// temp template dir, so the styled render fails and the preview must
	// come from the fallback layout instead of erroring.
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("auto_cv")

	h := PreviewTemplateHandler(template.NewManager(handlerConfig(t)))
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, len(rec.Body.Bytes()) > 4 && string(rec.Body.Bytes()[:4]) == "%PDF")
}

func TestSampleResumeHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, SampleResumeHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Contains(t, data, "name")
	assert.Contains(t, data, "experience")
}
