package textutil

import (
	"regexp"
	"strings"
)

var inlineLinkPattern = regexp.MustCompile(`(?i)<a\s+href=["']([^"']+)["'][^>]*>([^<]+)</a>`)

// LinkFunc renders a hyperlink whose label has already been escaped.
type LinkFunc func(url, label string) string

// ReplaceInlineLinks converts <a href="URL">LABEL</a> spans into backend
// hyperlinks. Text outside the spans and each label are passed through
// escape exactly once; URLs are passed to link untouched.
func ReplaceInlineLinks(text string, escape func(string) string, link LinkFunc) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	last := 0
	for _, m := range inlineLinkPattern.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(escape(text[last:m[0]]))
		url := text[m[2]:m[3]]
		label := text[m[4]:m[5]]
		sb.WriteString(link(url, escape(label)))
		last = m[1]
	}
	sb.WriteString(escape(text[last:]))
	return sb.String()
}

// Segment is a piece of text that is either plain or a hyperlink.
type Segment struct {
	Text string
	URL  string
}

// IsLink reports whether the segment is a hyperlink.
func (s Segment) IsLink() bool { return s.URL != "" }

// SplitInlineLinks splits text into plain and hyperlink segments in order.
// Backends that build a tree instead of a string use this form.
func SplitInlineLinks(text string) []Segment {
	var segments []Segment
	last := 0
	for _, m := range inlineLinkPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			segments = append(segments, Segment{Text: text[last:m[0]]})
		}
		segments = append(segments, Segment{Text: text[m[4]:m[5]], URL: text[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// StripInlineLinks replaces each link span with its label.
func StripInlineLinks(text string) string {
	return inlineLinkPattern.ReplaceAllString(text, "$2")
}
