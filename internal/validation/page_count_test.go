package validation

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPDFPages_WithPdfinfo(t *testing.T) {
	if _, err := exec.LookPath("pdfinfo"); err != nil {
		t.Skip("pdfinfo not available, skipping test")
	}
	requirePdflatex(t)

	tmpDir := t.TempDir()
	texFile := filepath.Join(tmpDir, "test.tex")
	content := `\documentclass{article}
\begin{document}
Page 1
\newpage
Page 2
\end{document}`
	require.NoError(t, os.WriteFile(texFile, []byte(content), 0644))

	pdfPath, _, err := CompileLaTeX(context.Background(), texFile, tmpDir)
	require.NoError(t, err)

	count, err := CountPDFPages(context.Background(), pdfPath)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestParsePdfinfoPages(t *testing.T) {
	output := "Title:          cv\nCreator:        LaTeX\nPages:          3\nEncrypted:      no\n"

	count, err := parsePdfinfoPages(output)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestParsePdfinfoPages_Missing(t *testing.T) {
	_, err := parsePdfinfoPages("Title: cv\n")
	assert.Error(t, err)
}

func TestCountPDFPages_FileNotFound(t *testing.T) {
	_, err := CountPDFPages(context.Background(), "/nonexistent/file.pdf")
	assert.Error(t, err)
}
