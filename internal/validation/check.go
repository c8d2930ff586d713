package validation

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jonathan/cv-builder/internal/types"
)

// Toolchain compiles LaTeX sources and counts PDF pages.
type Toolchain interface {
	Compile(ctx context.Context, texPath, workDir string) (pdfPath, logOutput string, err error)
	CountPages(ctx context.Context, pdfPath string) (int, error)
}

// SystemToolchain runs pdflatex and pdfinfo/ghostscript from PATH.
type SystemToolchain struct{}

// Compile implements Toolchain.
func (SystemToolchain) Compile(ctx context.Context, texPath, workDir string) (string, string, error) {
	return CompileLaTeX(ctx, texPath, workDir)
}

// CountPages implements Toolchain.
func (SystemToolchain) CountPages(ctx context.Context, pdfPath string) (int, error) {
	return CountPDFPages(ctx, pdfPath)
}

// CompileResult describes one compiled LaTeX artifact.
type CompileResult struct {
	PDFPath    string           `json:"pdf_path,omitempty"`
	Pages      int              `json:"pages,omitempty"`
	Violations types.Violations `json:"violations"`
}

// CheckDocument compiles texPath next to itself and, when maxPages is
// positive, checks the page count against it. Compilation failures and page
// overflows are returned as violations; the error covers failures that
// prevent checking at all, such as an unreadable source.
func CheckDocument(ctx context.Context, tc Toolchain, texPath string, maxPages int) (*CompileResult, error) {
	if tc == nil {
		tc = SystemToolchain{}
	}
	artifact := filepath.Base(texPath)
	workDir := filepath.Dir(texPath)
	result := &CompileResult{}

	pdfPath, _, err := tc.Compile(ctx, texPath, workDir)
	if err != nil {
		var compErr *CompilationError
		if !errors.As(err, &compErr) {
			return nil, fmt.Errorf("failed to compile LaTeX: %w", err)
		}
		result.Violations.Add(artifact, types.Violation{
			Type:     "latex_error",
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("LaTeX compilation failed: %s", compErr.Message),
		})
		if pdfPath == "" {
			return result, nil
		}
	}
	result.PDFPath = pdfPath
	defer func() { _ = CleanupCompilationArtifacts(workDir, texPath) }()

	pages, err := tc.CountPages(ctx, pdfPath)
	if err != nil {
		result.Violations.Add(artifact, types.Violation{
			Type:     "page_overflow",
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("Could not determine page count: %v", err),
		})
		return result, nil
	}
	result.Pages = pages

	if maxPages > 0 && pages > maxPages {
		count := pages
		result.Violations.Add(artifact, types.Violation{
			Type:      "page_overflow",
			Severity:  types.SeverityError,
			Details:   fmt.Sprintf("Document has %d pages, maximum allowed is %d", pages, maxPages),
			PageCount: &count,
		})
	}
	return result, nil
}
