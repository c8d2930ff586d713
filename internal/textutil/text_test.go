package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_LongerThanMax(t *testing.T) {
	title := strings.Repeat("a", 90)
	got := Truncate(title, 80)
	assert.Equal(t, strings.Repeat("a", 80)+"...", got)
}

func TestTruncate_ExactlyMax(t *testing.T) {
	title := strings.Repeat("b", 80)
	assert.Equal(t, title, Truncate(title, 80))
}

func TestTruncate_CountsRunes(t *testing.T) {
	assert.Equal(t, "résu...", Truncate("résumé", 4))
}

func TestCollapseNewlines(t *testing.T) {
	assert.Equal(t, "one two three", CollapseNewlines("one\n\ntwo\nthree\n"))
}

func TestFirstSentences(t *testing.T) {
	got := FirstSentences("First sentence. Second one. Third one.", 2)
	assert.Equal(t, "First sentence. Second one.", got)
}

func TestFirstSentences_CutsDecimals(t *testing.T) {
	// Lexical split: the decimal point counts as a sentence boundary.
	got := FirstSentences("Uptime 99.9 percent. Led teams. Shipped.", 2)
	assert.Equal(t, "Uptime 99.9 percent.", got)
}

func TestFirstSentences_FewerFragments(t *testing.T) {
	assert.Equal(t, "No period at all.", FirstSentences("No period at all", 2))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world-2024", Slugify("Hello, World! 2024"))
	assert.Equal(t, "go-generics", Slugify("  Go -- Generics  "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 1, ReadingTime(0))
	assert.Equal(t, 1, ReadingTime(200))
	assert.Equal(t, 2, ReadingTime(201))
	assert.Equal(t, 5, ReadingTime(1000))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 4, CountWords("  one two\nthree\tfour "))
}
