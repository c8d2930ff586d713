// Package observability provides formatted output utilities for CLI runs.
package observability

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/jonathan/cv-builder/internal/pipeline"
	"github.com/jonathan/cv-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}).
			Padding(0, 1).
			Width(boxWidth - 2)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
)

// Printer handles formatted output of run summaries
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter creates a new Printer that writes to the given writer. Output
// is styled only when out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, styled: isTTY(out)}
}

// NewPlainPrinter creates a Printer that never styles its output.
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) paint(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	if p.styled {
		body := titleStyle.Render(title) + "\n\n" + content
		fmt.Fprintln(p.out, boxStyle.Render(body))
		return
	}

	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads line to width runes.
func pad(line string, width int) string {
	n := utf8.RuneCountInString(line)
	if n > width {
		runes := []rune(line)
		return string(runes[:width-3]) + "..."
	}
	return line + strings.Repeat(" ", width-n)
}

// PrintManifest outputs the documents written by a run.
func (p *Printer) PrintManifest(m *pipeline.Manifest) {
	if m == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run: %s\n\n", m.RunID))
	for _, a := range m.Artifacts {
		sb.WriteString(fmt.Sprintf("%s %s (%s, %d bytes)\n",
			p.paint(okStyle, "✓"), filepath.Base(a.Path), a.Privacy, a.Bytes))
		if a.PDFPath != "" {
			sb.WriteString(fmt.Sprintf("    PDF: %s, %d page(s)\n", filepath.Base(a.PDFPath), a.Pages))
		}
	}
	if m.Tally != nil {
		p.writeTally(&sb, m)
	}

	p.printBox(strings.ToUpper(m.Name)+" OUTPUT", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) writeTally(sb *strings.Builder, m *pipeline.Manifest) {
	sb.WriteString(fmt.Sprintf("Generated %d previews\n", m.Tally.Generated))
	if m.Tally.NotGenerated() == 0 {
		return
	}
	sb.WriteString(p.paint(warnStyle, fmt.Sprintf("Skipped %d posts", m.Tally.NotGenerated())))
	sb.WriteString(fmt.Sprintf(" (%d malformed, %d failed)\n", m.Tally.Skipped, m.Tally.Failed))

	shown := 0
	for _, entry := range m.Previews {
		if entry.Status == "generated" {
			continue
		}
		if shown == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", m.Tally.NotGenerated()-maxItemsToShow))
			break
		}
		name := entry.Source
		if name == "" {
			name = entry.Slug
		}
		sb.WriteString(fmt.Sprintf("  • %s: %s\n", filepath.Base(name), entry.Error))
		shown++
	}
}

// PrintDataSummary outputs the section counts of a validated content record.
func (p *Printer) PrintDataSummary(s *pipeline.DataSummary) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", filepath.Base(s.Path)))
	sb.WriteString(fmt.Sprintf("Name:     %s\n\n", s.Name))
	sb.WriteString(fmt.Sprintf("Experience:      %d\n", s.Experience))
	sb.WriteString(fmt.Sprintf("Research:        %d\n", s.Research))
	sb.WriteString(fmt.Sprintf("Publications:    %d\n", s.Publications))
	sb.WriteString(fmt.Sprintf("Education:       %d\n", s.Education))
	sb.WriteString(fmt.Sprintf("Skill groups:    %d\n", s.SkillGroups))
	sb.WriteString(fmt.Sprintf("Certifications:  %d\n", s.Certifications))
	sb.WriteString(fmt.Sprintf("Affiliations:    %d", s.Affiliations))

	title := "VALID RECORD"
	if s.Length != "" {
		title = fmt.Sprintf("VALID %s RECORD", strings.ToUpper(string(s.Length)))
	}
	p.printBox(title, sb.String())
}

// PrintProgress outputs one progress event as a single line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(e pipeline.ProgressEvent) {
	fmt.Fprintf(p.out, "%s %s\n", p.paint(titleStyle, "["+e.Step+"]"), e.Message)
}

// PrintViolations outputs any check violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		p.printBox("CHECKS", p.paint(okStyle, "✅ NO VIOLATIONS FOUND"))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		marker := p.paint(warnStyle, "⚠")
		if v.Severity == types.SeverityError {
			marker = p.paint(errStyle, "✗")
		}
		sb.WriteString(fmt.Sprintf("%s %s", marker, v.Type))
		if v.Artifact != "" {
			sb.WriteString(fmt.Sprintf(" [%s]", v.Artifact))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s\n", v.Details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CHECK VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
