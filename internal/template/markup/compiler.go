package markup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
)

// Compiler runs the external markup compiler in an ephemeral per-call
// scratch directory. Each render spawns its own directory and process, so
// concurrent compilations cannot interfere.
type Compiler struct {
	binary     string
	passes     int
	timeout    time.Duration
	scratchDir string
	logger     logging.Logger
}

func NewCompiler(cfg *config.Config) *Compiler {
	return &Compiler{
		binary:     cfg.Latex.Compiler,
		passes:     cfg.Latex.CompilePasses,
		timeout:    cfg.Latex.Timeout,
		scratchDir: cfg.Latex.ScratchDir,
		logger:     logging.GetGlobalLogger(),
	}
}

// Probe checks whether the compiler binary responds to --version. The
// result is advisory: health reporting uses it, compilation does not gate
// on it.
func (c *Compiler) Probe() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, c.binary, "--version").Run()
}

// Compile writes the source into a scratch directory, copies any
// auxiliary files next to it, and runs the compiler for the configured
// number of passes. The first pass resolves structural content, the
// second resolves cross-references and pagination the first leaves stale.
// The whole invocation is bounded by the configured timeout.
func (c *Compiler) Compile(ctx context.Context, source []byte, auxDir string, aux []string) ([]byte, error) {
	workDir, err := os.MkdirTemp(c.scratchDir, "resume-build-*")
	if err != nil {
		return nil, fmt.Errorf("%w: create scratch dir: %v", ErrCompilationFailed, err)
	}
	defer os.RemoveAll(workDir)

	texFile := filepath.Join(workDir, "resume.tex")
	if err := os.WriteFile(texFile, source, 0644); err != nil {
		return nil, fmt.Errorf("%w: write source: %v", ErrCompilationFailed, err)
	}

	for _, name := range aux {
		data, err := os.ReadFile(filepath.Join(auxDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: aux file %s: %v", ErrTemplateFileNotFound, name, err)
		}
		if err := os.WriteFile(filepath.Join(workDir, name), data, 0644); err != nil {
			return nil, fmt.Errorf("%w: copy aux file %s: %v", ErrCompilationFailed, name, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out bytes.Buffer
	for pass := 1; pass <= c.passes; pass++ {
		cmd := exec.CommandContext(ctx, c.binary,
			"-interaction=nonstopmode",
			"-halt-on-error",
			"-output-directory", workDir,
			texFile,
		)
		cmd.Dir = workDir
		out.Reset()
		cmd.Stdout = &out
		cmd.Stderr = &out

		if err := cmd.Run(); err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return nil, fmt.Errorf("%w: pass %d exceeded %s", ErrCompilationTimeout, pass, c.timeout)
			}
			c.logger.Warn("Compiler pass failed", map[string]interface{}{
				"pass":  pass,
				"error": err.Error(),
			})
			// Fall through: the output check decides, using the log
			// diagnostic for the error message.
			break
		}
	}

	pdf, err := os.ReadFile(filepath.Join(workDir, "resume.pdf"))
	if err != nil || len(pdf) == 0 {
		diag := firstDiagnostic(filepath.Join(workDir, "resume.log"))
		if diag == "" {
			diag = "no output produced"
		}
		return nil, fmt.Errorf("%w: %s", ErrCompilationFailed, diag)
	}
	return pdf, nil
}

// firstDiagnostic extracts the first fatal diagnostic line from a
// compiler log file.
func firstDiagnostic(logPath string) string {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "! ") {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
