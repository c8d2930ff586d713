package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/jonathan/cv-builder/internal/textutil"
	"github.com/jonathan/cv-builder/internal/types"
)

var (
	frontMatterPattern = regexp.MustCompile(`(?s)\A---\r?\n(.*?)\r?\n---\r?\n?`)
	datePrefixPattern  = regexp.MustCompile(`^(\d{4})-(\d{2})-\d{2}-`)
)

type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        flexList `yaml:"tags"`
}

// LoadExcerpts reads every markdown post in dir, sorted by file name.
// Hidden files are ignored. A post with unusable front matter is returned
// with an empty title rather than failing the whole directory.
func LoadExcerpts(dir string) ([]types.Excerpt, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read posts directory %s", dir),
			Cause:   fmt.Errorf("%w: %w", ErrMissingInput, err),
		}
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".md" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	excerpts := make([]types.Excerpt, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("failed to read post %s", path),
				Cause:   err,
			}
		}
		ex := ParseExcerpt(name, data)
		ex.Source = path
		excerpts = append(excerpts, ex)
	}
	return excerpts, nil
}

// ParseExcerpt builds an excerpt from a post file name and its contents.
func ParseExcerpt(filename string, data []byte) types.Excerpt {
	base := filepath.Base(filename)
	ex := types.Excerpt{
		Slug:      PostSlug(base),
		DateLabel: dateLabel(base),
	}

	body := data
	if m := frontMatterPattern.FindSubmatchIndex(data); m != nil {
		body = data[m[1]:]
		var fm frontMatter
		if err := unmarshalYAML(data[m[2]:m[3]], &fm); err == nil {
			ex.Title = strings.TrimSpace(fm.Title)
			ex.Description = plainText(fm.Description)
			if len(fm.Tags) > 0 {
				ex.Tag = fm.Tags[0]
			}
		}
	}

	ex.ReadingMinutes = textutil.ReadingTime(countBodyWords(body))
	if ex.Slug == "" {
		ex.Slug = textutil.Slugify(ex.Title)
	}
	return ex
}

// PostSlug strips the date prefix and extension from a post file name.
func PostSlug(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), ".md")
	return datePrefixPattern.ReplaceAllString(name, "")
}

func dateLabel(filename string) string {
	m := datePrefixPattern.FindStringSubmatch(filename)
	if m == nil {
		return ""
	}
	month, _ := strconv.Atoi(m[2])
	return textutil.ShortMonthYear(m[1], month)
}

// plainText strips HTML markup from a front matter description.
func plainText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// countBodyWords counts the words a reader sees: text, code and autolink
// labels. Raw HTML is not counted.
func countBodyWords(src []byte) int {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				buf.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			buf.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.AutoLink:
			buf.Write(v.Label(src))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
				buf.WriteByte(' ')
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return textutil.CountWords(buf.String())
}
