package textutil

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// WordsPerMinute is the reading speed used for reading-time estimates.
const WordsPerMinute = 200

// Truncate cuts text to max runes and appends Ellipsis when it is longer.
// Text of exactly max runes is returned unchanged.
func Truncate(text string, max int) string {
	if max < 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + Ellipsis
}

// CollapseNewlines replaces line breaks with single spaces and trims the result.
func CollapseNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(text)
}

// FirstSentences keeps the first n "."-separated fragments of text and
// terminates the result with a period.
//
// The split is purely lexical: abbreviations, decimals and URLs that
// contain a period are cut as if they ended a sentence.
func FirstSentences(text string, n int) string {
	parts := strings.Split(CollapseNewlines(text), ".")
	if len(parts) > n {
		parts = parts[:n]
	}
	return strings.Join(parts, ".") + "."
}

// Slugify lowercases title and joins its alphanumeric runs with hyphens.
func Slugify(title string) string {
	var sb strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingDash = false
			sb.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return sb.String()
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ReadingTime returns the estimated reading time in whole minutes, at least 1.
func ReadingTime(words int) int {
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
