package validation

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// CompilationTimeout is the maximum time to wait for LaTeX compilation
	CompilationTimeout = 30 * time.Second
)

// CompileLaTeX compiles a LaTeX file using pdflatex. An empty workDir
// compiles in a fresh temporary directory.
func CompileLaTeX(ctx context.Context, texPath string, workDir string) (pdfPath string, logOutput string, err error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return "", "", &CompilationError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	if workDir == "" {
		workDir, err = os.MkdirTemp("", "latex-compile-*")
		if err != nil {
			return "", "", &CompilationError{
				Message: "failed to create temporary working directory",
				Cause:   err,
			}
		}
	} else if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", "", &CompilationError{
			Message: fmt.Sprintf("failed to create working directory: %s", workDir),
			Cause:   err,
		}
	}

	texBaseName := filepath.Base(texPath)
	workTexPath := filepath.Join(workDir, texBaseName)

	if texPath != workTexPath {
		texContent, err := os.ReadFile(texPath)
		if err != nil {
			return "", "", &FileReadError{
				Message: fmt.Sprintf("failed to read LaTeX file: %s", texPath),
				Cause:   err,
			}
		}
		if err := os.WriteFile(workTexPath, texContent, 0644); err != nil {
			return "", "", &CompilationError{
				Message: fmt.Sprintf("failed to write LaTeX file to working directory: %s", workDir),
				Cause:   err,
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	// nonstopmode keeps pdflatex from waiting on stdin after an error
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", "-halt-on-error", "-output-directory", workDir, workTexPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()
	logOutput = stdout.String() + stderr.String()

	pdfPath = filepath.Join(workDir, strings.TrimSuffix(texBaseName, ".tex")+".pdf")
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		return "", logOutput, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// LaTeX can produce a PDF despite errors
	if runErr != nil {
		return pdfPath, logOutput, &CompilationError{
			Message:   "LaTeX compilation completed with errors (PDF may be incomplete)",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	return pdfPath, logOutput, nil
}

// CleanupCompilationArtifacts removes the auxiliary files pdflatex leaves
// next to texPath's output in workDir. Temporary directories created by
// CompileLaTeX are removed entirely.
func CleanupCompilationArtifacts(workDir, texPath string) error {
	if workDir == "" {
		return nil
	}

	if strings.HasPrefix(filepath.Base(workDir), "latex-compile-") {
		return os.RemoveAll(workDir)
	}

	base := strings.TrimSuffix(filepath.Base(texPath), ".tex")
	for _, ext := range []string{".aux", ".log", ".out", ".toc"} {
		_ = os.Remove(filepath.Join(workDir, base+ext))
	}
	return nil
}
