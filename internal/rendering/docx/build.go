package docx

import (
	"strings"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/textutil"
	"github.com/jonathan/cv-builder/internal/types"
)

// Font sizes in half-points.
const (
	sizeName       = 48
	sizeHeading    = 28
	sizeSubheading = 24
	sizeBody       = 22
	sizeSmall      = 20
)

const (
	// pageMargin is 0.75in in twips.
	pageMargin = 1080

	headingStyle = "Heading1"
	linkColor    = "0563C1"
	mutedColor   = "666666"
)

// Build converts the render input into a paragraph tree. Every entry of the
// input is kept; nothing is truncated.
func Build(in rendering.Input) (*Document, error) {
	if in.CV == nil {
		return nil, &rendering.RenderError{Message: "nothing to render", Cause: rendering.ErrNilCV}
	}
	b := &builder{doc: &Document{Margin: pageMargin}}
	cv := in.CV

	b.header(in)

	if cv.Summary != "" {
		b.heading("Professional Summary")
		b.add(Paragraph{Content: rich(cv.Summary, sizeBody), SpacingAfter: 120})
	}

	if len(cv.Experience) > 0 {
		b.heading("Professional Experience")
		for _, e := range cv.Experience {
			b.experience(e)
		}
	}

	if len(cv.Research) > 0 {
		b.heading("Research & Open Source")
		for _, p := range cv.Research {
			b.research(p)
		}
	}

	if len(cv.Publications) > 0 {
		b.heading("Publications & Technical Disclosures")
		for _, p := range cv.Publications {
			title := Inline(Run{Text: p.Title, Bold: true, Size: sizeBody})
			if p.URL != "" {
				title = Hyperlink{URL: p.URL, Runs: []Run{{Text: p.Title, Bold: true, Size: sizeBody, Color: linkColor, Underline: true}}}
			}
			b.add(Paragraph{Content: []Inline{title}, SpacingBefore: 80, SpacingAfter: 20})
			if meta := joinNonEmpty(", ", p.Venue, textutil.FormatDate(p.Date)); meta != "" {
				b.add(Paragraph{
					Content:      []Inline{Run{Text: meta, Italic: true, Size: sizeSmall}},
					SpacingAfter: 60,
				})
			}
		}
	}

	if len(cv.Education) > 0 {
		b.heading("Education")
		for _, e := range cv.Education {
			content := []Inline{Run{Text: e.Degree, Bold: true, Size: sizeBody}}
			if e.Institution != "" {
				content = append(content, Run{Text: " - " + e.Institution, Size: sizeBody})
			}
			if dates := dateRange(e.StartDate, e.EndDate, false); dates != "" {
				content = append(content, Run{Text: " (" + dates + ")", Italic: true, Size: sizeBody})
			}
			b.add(Paragraph{Content: content, SpacingBefore: 80, SpacingAfter: 40})
		}
	}

	if len(cv.Skills) > 0 {
		b.heading("Technical Skills")
		for _, s := range cv.Skills {
			b.add(Paragraph{
				Content: []Inline{
					Run{Text: s.Category + ": ", Bold: true, Size: sizeBody},
					Run{Text: strings.Join(s.Items, ", "), Size: sizeBody},
				},
				SpacingAfter: 60,
			})
		}
	}

	if len(cv.Certifications) > 0 {
		b.heading("Certifications")
		for _, c := range cv.Certifications {
			content := []Inline{Run{Text: c.Name, Size: sizeBody}}
			if c.Issuer != "" {
				content = append(content, Run{Text: " - " + c.Issuer, Italic: true, Size: sizeBody})
			}
			b.add(Paragraph{Content: content, SpacingAfter: 40})
		}
	}

	if len(cv.Affiliations) > 0 {
		b.heading("Professional Affiliations")
		b.add(Paragraph{
			Content:      []Inline{Run{Text: strings.Join(cv.Affiliations, " | "), Size: sizeBody}},
			SpacingAfter: 80,
		})
	}

	return b.doc, nil
}

type builder struct {
	doc *Document
}

func (b *builder) add(p Paragraph) {
	b.doc.Paragraphs = append(b.doc.Paragraphs, p)
}

func (b *builder) header(in rendering.Input) {
	c := in.CV.Contact
	b.add(Paragraph{
		Content:      []Inline{Run{Text: c.Name, Bold: true, Size: sizeName}},
		Align:        AlignCenter,
		SpacingAfter: 80,
	})
	if c.Title != "" {
		b.add(Paragraph{
			Content:      []Inline{Run{Text: c.Title, Italic: true, Size: sizeSubheading}},
			Align:        AlignCenter,
			SpacingAfter: 80,
		})
	}
	b.add(Paragraph{
		Content:      []Inline{Run{Text: strings.Join(rendering.ContactParts(in), " | "), Size: sizeBody}},
		Align:        AlignCenter,
		SpacingAfter: 40,
	})

	if len(c.Profiles) > 0 {
		var content []Inline
		for i, p := range c.Profiles {
			if i > 0 {
				content = append(content, Run{Text: " | ", Size: sizeBody})
			}
			content = append(content, link(p.URL, p.Network, sizeBody))
		}
		b.add(Paragraph{Content: content, Align: AlignCenter, SpacingAfter: 200})
	}
}

// heading is a bold section title with a single bottom border.
func (b *builder) heading(text string) {
	b.add(Paragraph{
		Content:       []Inline{Run{Text: text, Bold: true, Size: sizeHeading, Color: "000000"}},
		Style:         headingStyle,
		SpacingBefore: 300,
		SpacingAfter:  120,
		BottomBorder:  true,
		KeepNext:      true,
	})
}

func (b *builder) experience(e types.Experience) {
	b.add(Paragraph{
		Content:       []Inline{Run{Text: e.Company, Bold: true, Size: sizeSubheading}},
		SpacingBefore: 160,
		SpacingAfter:  40,
		KeepNext:      true,
	})

	role := []Inline{Run{Text: e.Role, Bold: true, Size: sizeBody}}
	if dates := dateRange(e.StartDate, e.EndDate, e.Current); dates != "" {
		role = append(role,
			Run{Text: "  "},
			Run{Text: dates, Italic: true, Size: sizeBody},
		)
	}
	b.add(Paragraph{Content: role, SpacingAfter: 60})

	if e.Description != "" {
		b.add(Paragraph{Content: rich(e.Description, sizeBody), SpacingAfter: 80})
	}

	switch d := e.Details.(type) {
	case types.Detailed:
		for _, s := range d.Sections {
			if len(s.Highlights) == 0 {
				continue
			}
			b.add(Paragraph{
				Content:       []Inline{Run{Text: s.Title + ":", Bold: true, Size: sizeBody}},
				SpacingBefore: 80,
				SpacingAfter:  40,
				KeepNext:      true,
			})
			b.bullets(s.Highlights)
		}
	case types.Flat:
		b.bullets(d.Highlights)
	}
}

func (b *builder) bullets(hs []types.Highlight) {
	for _, h := range hs {
		b.add(Paragraph{Content: rich(h.String(), sizeBody), Bullet: true, SpacingAfter: 40})
	}
}

func (b *builder) research(p types.ResearchEntry) {
	title := []Inline{Run{Text: p.Title, Bold: true, Size: sizeBody}}
	if p.Period != "" {
		title = append(title, Run{Text: " (" + p.Period + ")", Italic: true, Size: sizeBody})
	}
	b.add(Paragraph{Content: title, SpacingBefore: 120, SpacingAfter: 40, KeepNext: true})

	if p.Status != "" {
		b.add(Paragraph{
			Content:      []Inline{Run{Text: p.Status, Italic: true, Size: sizeSmall, Color: mutedColor}},
			SpacingAfter: 40,
		})
	}
	if p.Description != "" {
		b.add(Paragraph{Content: rich(p.Description, sizeBody), SpacingAfter: 80})
	}
	if len(p.Links) > 0 {
		var content []Inline
		for i, l := range p.Links {
			if i > 0 {
				content = append(content, Run{Text: " · ", Size: sizeSmall})
			}
			content = append(content, link(l.URL, l.DisplayLabel(), sizeSmall))
		}
		b.add(Paragraph{Content: content, SpacingAfter: 80})
	}
}

func link(url, label string, size int) Hyperlink {
	return Hyperlink{URL: url, Runs: []Run{{Text: label, Size: size, Color: linkColor, Underline: true}}}
}

// rich splits text on inline anchors so links become real hyperlinks.
func rich(text string, size int) []Inline {
	var out []Inline
	for _, seg := range textutil.SplitInlineLinks(textutil.CollapseNewlines(text)) {
		if seg.IsLink() {
			out = append(out, link(seg.URL, seg.Text, size))
			continue
		}
		out = append(out, Run{Text: seg.Text, Size: size})
	}
	return out
}

func dateRange(start, end string, current bool) string {
	if end == "" && current {
		end = textutil.Present
	}
	return joinNonEmpty(" - ", textutil.FormatDate(start), textutil.FormatDate(end))
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
