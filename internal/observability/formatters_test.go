package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-builder/internal/pipeline"
	"github.com/jonathan/cv-builder/internal/preview"
	"github.com/jonathan/cv-builder/internal/types"
)

func TestNewPrinter_BufferIsPlain(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{})
	assert.False(t, p.styled)
}

func TestPrintManifest_Documents(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintManifest(&pipeline.Manifest{
		RunID: "run-1",
		Name:  "latex-onepage",
		Artifacts: []pipeline.Artifact{
			{Path: "/out/cv-onepage.tex", Privacy: "public", Bytes: 1200, PDFPath: "/out/cv-onepage.pdf", Pages: 1},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "LATEX-ONEPAGE OUTPUT")
	assert.Contains(t, output, "cv-onepage.tex (public, 1200 bytes)")
	assert.Contains(t, output, "cv-onepage.pdf, 1 page(s)")
}

func TestPrintManifest_PreviewTally(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintManifest(&pipeline.Manifest{
		Name:  "previews",
		Tally: &preview.Tally{Generated: 4, Skipped: 1},
		Previews: []pipeline.PreviewEntry{
			{Slug: "a", Status: "generated"},
			{Slug: "draft", Source: "/posts/2024-01-01-draft.md", Status: "skipped", Error: "malformed excerpt: no title"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "Generated 4 previews")
	assert.Contains(t, output, "Skipped 1 posts (1 malformed, 0 failed)")
	assert.Contains(t, output, "2024-01-01-draft.md")
}

func TestPrintManifest_AllGenerated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintManifest(&pipeline.Manifest{Name: "previews", Tally: &preview.Tally{Generated: 2}})

	assert.Contains(t, buf.String(), "Generated 2 previews")
	assert.NotContains(t, buf.String(), "Skipped")
}

func TestPrintManifest_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintManifest(nil)
	assert.Empty(t, buf.String())
}

func TestPrintDataSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDataSummary(&pipeline.DataSummary{
		Length:     "concise",
		Path:       "/data/cv_data_concise.yml",
		Name:       "Ada Example",
		Experience: 3,
		Education:  1,
	})
	output := buf.String()

	assert.Contains(t, output, "VALID CONCISE RECORD")
	assert.Contains(t, output, "cv_data_concise.yml")
	assert.Contains(t, output, "Ada Example")
	assert.Contains(t, output, "Experience:      3")
}

func TestPrintViolations_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(nil)

	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")
}

func TestPrintViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(&types.Violations{Violations: []types.Violation{
		{Type: "page_overflow", Severity: types.SeverityError, Details: "Document has 2 pages", Artifact: "cv-onepage.tex"},
		{Type: "page_overflow", Severity: types.SeverityWarning, Details: "Could not determine page count"},
	}})
	output := buf.String()

	assert.Contains(t, output, "Found 2 violations")
	assert.Contains(t, output, "✗ page_overflow [cv-onepage.tex]")
	assert.Contains(t, output, "⚠ page_overflow")
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgress(pipeline.ProgressEvent{Step: "render", Message: "Wrote cv.tex"})
	assert.Equal(t, "[render] Wrote cv.tex\n", buf.String())
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
}
