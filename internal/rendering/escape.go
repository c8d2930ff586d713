package rendering

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-builder/internal/textutil"
)

// typography is applied after the special characters have been escaped.
var typography = strings.NewReplacer(
	"“", "``",
	"”", "''",
	"‘", "`",
	"’", "'",
	"–", "--",
	"—", "---",
	"...", `\ldots{}`,
	"->", `$\rightarrow$`,
)

// preEscapedCurrency lists the amounts that arrive with their dollar sign
// already escaped. Any other backslash is escaped as usual.
var preEscapedCurrency = []string{`\$XXM`, `\$XM`, `\$50K`}

// EscapeLaTeX escapes special LaTeX characters in text and converts
// typographic punctuation to its LaTeX form.
// Special characters: \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for i := 0; i < len(text); {
		if text[i] == '\\' {
			if token, ok := preEscapedAt(text[i:]); ok {
				result.WriteString(token)
				i += len(token)
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}

	return typography.Replace(result.String())
}

func preEscapedAt(s string) (string, bool) {
	for _, token := range preEscapedCurrency {
		if strings.HasPrefix(s, token) {
			return token, true
		}
	}
	return "", false
}

// EscapeURL escapes the characters that break a URL inside a macro argument.
func EscapeURL(url string) string {
	return strings.NewReplacer(`%`, `\%`, `#`, `\#`).Replace(url)
}

// Href renders a hyperlink. label must already be escaped.
func Href(url, label string) string {
	return `\href{` + EscapeURL(url) + `}{` + label + `}`
}

// RichLaTeX collapses line breaks, converts inline anchors to \href and
// escapes everything else.
func RichLaTeX(text string) string {
	return textutil.ReplaceInlineLinks(textutil.CollapseNewlines(text), EscapeLaTeX, Href)
}
