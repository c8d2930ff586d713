// Package docx builds word-processor documents from a CV. Build produces an
// in-memory paragraph tree; Renderer serializes it as an OOXML package.
package docx

import "strings"

// Alignment is a paragraph justification.
type Alignment string

// Alignment values.
const (
	AlignLeft   Alignment = ""
	AlignCenter Alignment = "center"
)

// Document is an ordered list of paragraphs on a single page section.
type Document struct {
	Paragraphs []Paragraph
	// Margin is the uniform page margin in twips.
	Margin int
}

// Paragraph is a block of inline content.
type Paragraph struct {
	Content       []Inline
	Style         string
	Align         Alignment
	SpacingBefore int
	SpacingAfter  int
	BottomBorder  bool
	Bullet        bool
	KeepNext      bool
}

// Inline is a Run or a Hyperlink.
type Inline interface {
	text() string
}

// Run is formatted text. Size is in half-points.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Size      int
	Color     string
}

// Hyperlink wraps runs that link to an external URL.
type Hyperlink struct {
	URL  string
	Runs []Run
}

func (r Run) text() string { return r.Text }

func (h Hyperlink) text() string {
	var sb strings.Builder
	for _, r := range h.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Text returns the visible text of the paragraph.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, in := range p.Content {
		sb.WriteString(in.text())
	}
	return sb.String()
}

// Text returns the visible text of the document, one paragraph per line.
func (d *Document) Text() string {
	lines := make([]string, 0, len(d.Paragraphs))
	for _, p := range d.Paragraphs {
		lines = append(lines, p.Text())
	}
	return strings.Join(lines, "\n")
}

// Hyperlinks returns every hyperlink URL in document order.
func (d *Document) Hyperlinks() []string {
	var urls []string
	for _, p := range d.Paragraphs {
		for _, in := range p.Content {
			if h, ok := in.(Hyperlink); ok {
				urls = append(urls, h.URL)
			}
		}
	}
	return urls
}
