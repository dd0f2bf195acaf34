package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "pdflatex", cfg.Latex.Compiler)
	assert.Equal(t, 2, cfg.Latex.CompilePasses)
	assert.Equal(t, "auto_cv", cfg.Templates.Default)
	assert.Equal(t, 30, cfg.Export.RateLimit)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_YAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
latex:
  compiler: xelatex
  compile_passes: 3
templates:
  default: ethan
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "xelatex", cfg.Latex.Compiler)
	assert.Equal(t, 3, cfg.Latex.CompilePasses)
	assert.Equal(t, "ethan", cfg.Templates.Default)
	// untouched values keep their defaults
	assert.Equal(t, 60*time.Second, cfg.Latex.Timeout)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0644))

	t.Setenv("PORT", "7070")
	t.Setenv("LATEX_COMPILE_PASSES", "4")
	t.Setenv("DEFAULT_TEMPLATE", "yuan")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Latex.CompilePasses)
	assert.Equal(t, "yuan", cfg.Templates.Default)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_CONFIG_TOKEN", "secret123")

	assert.Equal(t, "token: secret123", expandEnvVars("token: ${TEST_CONFIG_TOKEN}"))
	assert.Equal(t, "token: secret123", expandEnvVars("token: $TEST_CONFIG_TOKEN"))
	// unknown variables are left as-is
	assert.Equal(t, "token: ${NOPE_NOT_SET_ANYWHERE}", expandEnvVars("token: ${NOPE_NOT_SET_ANYWHERE}"))
}
