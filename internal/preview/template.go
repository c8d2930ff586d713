package preview

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-builder/internal/textutil"
	"github.com/jonathan/cv-builder/internal/types"
)

// Image dimensions in pixels.
const (
	Width  = 1200
	Height = 630
)

const (
	maxTitleRunes       = 80
	maxDescriptionRunes = 120
)

const (
	colorBackground = "#0a0a0a"
	colorAccent     = "#b509ac"
	colorTitle      = "#ffffff"
	colorMuted      = "#888888"
	colorSeparator  = "#666666"
	colorDivider    = "#333333"
	colorPill       = "#1a1a1a"
)

// Site identifies the blog the previews belong to.
type Site struct {
	Name   string
	Author string
	URL    string
	Domain string
}

// BuildLayout returns the unlaid-out tree for one excerpt's preview: a
// header band with the site label and first tag, a centred title and
// description, and a footer with author, date, reading time and domain.
func BuildLayout(ex types.Excerpt, site Site) *Node {
	header := &Node{
		Name:      "header",
		Direction: Row,
		Justify:   JustifySpaceBetween,
		Align:     AlignCenter,
		Margin:    Edges{Bottom: 40},
		Children: []*Node{
			text("label", strings.ToUpper(site.Name), TextStyle{Size: 24, Bold: true, Color: colorAccent}),
		},
	}
	if ex.Tag != "" {
		pill := text("tag", "#"+ex.Tag, TextStyle{Size: 18, Color: colorMuted})
		pill.Background = colorPill
		pill.Border = Border{Color: colorDivider, Width: 1}
		pill.Radius = 20
		pill.Padding = Symmetric(8, 16)
		header.Children = append(header.Children, pill)
	}

	title := text("title", textutil.Truncate(ex.Title, maxTitleRunes),
		TextStyle{Size: 56, Bold: true, Color: colorTitle, LineHeight: 1.2})
	title.Margin = Edges{Bottom: 24}
	body := &Node{
		Name:      "body",
		Direction: Column,
		Justify:   JustifyCenter,
		Grow:      1,
		Children:  []*Node{title},
	}
	if ex.Description != "" {
		body.Children = append(body.Children, text("description",
			textutil.Truncate(ex.Description, maxDescriptionRunes),
			TextStyle{Size: 24, Color: colorMuted, LineHeight: 1.4}))
	}

	byline := &Node{
		Name:      "byline",
		Direction: Row,
		Align:     AlignCenter,
		Gap:       24,
		Children: []*Node{
			text("author", site.Author, TextStyle{Size: 20, Bold: true, Color: colorTitle}),
			text("separator", "|", TextStyle{Size: 20, Color: colorSeparator}),
			text("meta", metaLine(ex), TextStyle{Size: 20, Color: colorMuted}),
		},
	}
	footer := &Node{
		Name:      "footer",
		Direction: Row,
		Justify:   JustifySpaceBetween,
		Align:     AlignCenter,
		Border:    Border{Color: colorDivider, Width: 1, TopOnly: true},
		Padding:   Edges{Top: 24},
		Margin:    Edges{Top: 24},
		Children: []*Node{
			byline,
			text("domain", site.Domain, TextStyle{Size: 20, Bold: true, Color: colorAccent}),
		},
	}

	return &Node{
		Name:       "root",
		Direction:  Column,
		Width:      Width,
		Height:     Height,
		Padding:    Uniform(60),
		Background: colorBackground,
		Children:   []*Node{header, body, footer},
	}
}

func metaLine(ex types.Excerpt) string {
	reading := fmt.Sprintf("%d min read", ex.ReadingMinutes)
	if ex.DateLabel == "" {
		return reading
	}
	return ex.DateLabel + "  •  " + reading
}

func text(name, content string, style TextStyle) *Node {
	return &Node{Name: name, Text: content, Style: style}
}
