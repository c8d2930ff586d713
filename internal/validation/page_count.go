package validation

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// CountPDFPages counts the number of pages in a PDF file.
// It tries pdfinfo first, then falls back to ghostscript.
func CountPDFPages(ctx context.Context, pdfPath string) (int, error) {
	if count, err := countPagesWithPdfinfo(ctx, pdfPath); err == nil {
		return count, nil
	}

	if count, err := countPagesWithGhostscript(ctx, pdfPath); err == nil {
		return count, nil
	}

	return 0, &Error{
		Message: "failed to count PDF pages: neither pdfinfo nor ghostscript available. Please install poppler-utils (pdfinfo) or ghostscript",
	}
}

func countPagesWithPdfinfo(ctx context.Context, pdfPath string) (int, error) {
	output, err := exec.CommandContext(ctx, "pdfinfo", pdfPath).Output()
	if err != nil {
		return 0, fmt.Errorf("pdfinfo command failed: %w", err)
	}
	return parsePdfinfoPages(string(output))
}

// parsePdfinfoPages extracts N from the "Pages: N" line.
func parsePdfinfoPages(output string) (int, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 {
			if count, err := strconv.Atoi(parts[1]); err == nil {
				return count, nil
			}
		}
	}
	return 0, fmt.Errorf("could not parse page count from pdfinfo output")
}

func countPagesWithGhostscript(ctx context.Context, pdfPath string) (int, error) {
	script := fmt.Sprintf("(%s) (r) file runpdfbegin pdfpagecount = quit", pdfPath)
	output, err := exec.CommandContext(ctx, "gs", "-q", "-dNODISPLAY", "-dNOSAFER", "-c", script).Output()
	if err != nil {
		return 0, fmt.Errorf("ghostscript command failed: %w", err)
	}

	outputStr := strings.TrimSpace(string(output))
	count, err := strconv.Atoi(outputStr)
	if err != nil {
		return 0, fmt.Errorf("could not parse page count from ghostscript output: %s", outputStr)
	}
	return count, nil
}
