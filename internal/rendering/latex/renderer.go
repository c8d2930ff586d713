// Package latex builds complete LaTeX documents from a CV in either the full
// single-column layout or the compact two-column one-page layout.
package latex

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"
	"time"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/variant"
)

//go:embed templates/*.tex.tmpl
var templateFiles embed.FS

// parsed templates by file name
var (
	cache   = make(map[string]*template.Template)
	cacheMu sync.RWMutex
)

const (
	fullTemplate    = "full.tex.tmpl"
	compactTemplate = "compact.tex.tmpl"
)

// Renderer renders the .tex source of one variant.
type Renderer struct {
	Layout variant.Layout
	// Now is the date printed as "Last updated" in the compact layout.
	// Zero means the current time.
	Now       time.Time
	SiteURL   string
	SiteLabel string
}

var _ rendering.Renderer = Renderer{}

// Extension returns the file extension of the rendered document.
func (r Renderer) Extension() string {
	return ".tex"
}

// Render builds the complete document in memory.
func (r Renderer) Render(in rendering.Input) ([]byte, error) {
	if in.CV == nil {
		return nil, &rendering.RenderError{Message: "nothing to render", Cause: rendering.ErrNilCV}
	}

	var (
		name string
		doc  *document
	)
	switch r.Layout {
	case variant.LayoutFull, "":
		name, doc = fullTemplate, r.fullDocument(in)
	case variant.LayoutCompact:
		now := r.Now
		if now.IsZero() {
			now = time.Now()
		}
		name, doc = compactTemplate, r.compactDocument(in, now)
	default:
		return nil, &rendering.RenderError{Message: fmt.Sprintf("unknown layout %q", r.Layout)}
	}

	tmpl, err := loadTemplate(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, &rendering.TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return buf.Bytes(), nil
}

// loadTemplate parses and caches an embedded template. Templates use << >>
// delimiters so LaTeX braces need no quoting.
func loadTemplate(name string) (*template.Template, error) {
	cacheMu.RLock()
	if tmpl, ok := cache[name]; ok {
		cacheMu.RUnlock()
		return tmpl, nil
	}
	cacheMu.RUnlock()

	tmpl, err := template.New(name).Delims("<<", ">>").ParseFS(templateFiles, "templates/"+name)
	if err != nil {
		return nil, &rendering.TemplateError{
			Message: fmt.Sprintf("failed to parse template %s", name),
			Cause:   err,
		}
	}

	cacheMu.Lock()
	cache[name] = tmpl
	cacheMu.Unlock()
	return tmpl, nil
}
