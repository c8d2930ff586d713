package docx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/variant"
)

const testPhone = "+1 555 0100"

func hl(texts ...string) []types.Highlight {
	out := make([]types.Highlight, 0, len(texts))
	for _, t := range texts {
		out = append(out, types.Highlight{Text: t})
	}
	return out
}

func sampleCV() *types.CV {
	return &types.CV{
		Contact: types.ContactInfo{
			Name:     "Ada Example",
			Title:    "Staff Engineer",
			Location: "Berlin",
			Email:    "ada@example.com",
			Phone:    testPhone,
			Profiles: []types.Profile{{Network: "LinkedIn", URL: "https://linkedin.com/in/ada"}},
		},
		Summary: "Builds <a href=\"https://ada.example/platforms\">platforms</a>.\nLeads teams.",
		Experience: []types.Experience{
			{
				Company: "Acme", Role: "Lead", StartDate: "2021-03", Current: true,
				Details: types.Flat{Highlights: hl("a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8")},
			},
			{
				Company: "Initech", Role: "Engineer", StartDate: "2018", EndDate: "2021",
				Description: "Platform team.",
				Details: types.Detailed{Sections: []types.Section{
					{Title: "Infra", Highlights: []types.Highlight{{Title: "K8s", Description: "Migrated to Kubernetes"}}},
					{Title: "Data", Highlights: hl("Built pipelines")},
				}},
			},
		},
		Research: []types.ResearchEntry{{
			Title: "Tracer", Period: "2023", Status: "Active", Description: "Tracing.",
			Links: []types.Link{{Type: "pypi", URL: "https://pypi.org/project/tracer"}},
		}},
		Publications:   []types.Publication{{Title: "On Tracing", Venue: "ACM", Date: "2022-05", URL: "https://doi.example/1"}},
		Education:      []types.Education{{Degree: "BSc", Institution: "TU Berlin", StartDate: "2012", EndDate: "2016"}},
		Skills:         []types.SkillCategory{{Category: "Languages", Items: []string{"Go", "Python"}}},
		Certifications: []types.Certification{{Name: "CKA", Issuer: "CNCF"}},
		Affiliations:   []string{"ACM", "IEEE"},
	}
}

func build(t *testing.T, cv *types.CV, p variant.Privacy) *Document {
	t.Helper()
	doc, err := Build(rendering.Input{CV: cv, Privacy: p})
	require.NoError(t, err)
	return doc
}

func headings(doc *Document) []string {
	var out []string
	for _, p := range doc.Paragraphs {
		if p.Style == headingStyle {
			out = append(out, p.Text())
		}
	}
	return out
}

func TestBuild_SectionOrder(t *testing.T) {
	doc := build(t, sampleCV(), variant.Public)
	assert.Equal(t, []string{
		"Professional Summary",
		"Professional Experience",
		"Research & Open Source",
		"Publications & Technical Disclosures",
		"Education",
		"Technical Skills",
		"Certifications",
		"Professional Affiliations",
	}, headings(doc))
}

func TestBuild_HeadingsAreBorderedAndBold(t *testing.T) {
	doc := build(t, sampleCV(), variant.Public)
	for _, p := range doc.Paragraphs {
		if p.Style != headingStyle {
			continue
		}
		assert.True(t, p.BottomBorder, p.Text())
		assert.True(t, p.KeepNext, p.Text())
		run, ok := p.Content[0].(Run)
		require.True(t, ok)
		assert.True(t, run.Bold)
		assert.Equal(t, sizeHeading, run.Size)
	}
}

func TestBuild_Header(t *testing.T) {
	doc := build(t, sampleCV(), variant.Private)
	require.GreaterOrEqual(t, len(doc.Paragraphs), 4)

	assert.Equal(t, "Ada Example", doc.Paragraphs[0].Text())
	assert.Equal(t, AlignCenter, doc.Paragraphs[0].Align)
	assert.Equal(t, "Staff Engineer", doc.Paragraphs[1].Text())
	assert.Equal(t, "Berlin | +1 555 0100 | ada@example.com", doc.Paragraphs[2].Text())
	assert.Equal(t, "LinkedIn", doc.Paragraphs[3].Text())
}

func TestBuild_PhoneOnlyInPrivate(t *testing.T) {
	private := build(t, sampleCV(), variant.Private)
	assert.Equal(t, 1, strings.Count(private.Text(), testPhone))

	public := build(t, sampleCV(), variant.Public)
	assert.NotContains(t, public.Text(), testPhone)
}

func TestBuild_NoTruncation(t *testing.T) {
	doc := build(t, sampleCV(), variant.Public)
	bullets := 0
	for _, p := range doc.Paragraphs {
		if p.Bullet {
			bullets++
		}
	}
	assert.Equal(t, 10, bullets)
}

func TestBuild_DetailedNeverEmitsFlatList(t *testing.T) {
	cv := sampleCV()
	cv.Experience = cv.Experience[1:]
	doc := build(t, cv, variant.Public)

	for i, p := range doc.Paragraphs {
		if !p.Bullet {
			continue
		}
		prev := doc.Paragraphs[i-1]
		if prev.Bullet {
			continue
		}
		assert.True(t, strings.HasSuffix(prev.Text(), ":"), "bullet %q not under a section label", p.Text())
	}
	assert.Contains(t, doc.Text(), "Infra:\nMigrated to Kubernetes\nData:\nBuilt pipelines")
}

func TestBuild_SkipsSectionsWithoutBullets(t *testing.T) {
	cv := sampleCV()
	cv.Experience = []types.Experience{{
		Company: "Initech", Role: "Engineer",
		Details: types.Detailed{Sections: []types.Section{
			{Title: "Hiring"},
			{Title: "Infra", Highlights: hl("Migrated to Kubernetes")},
		}},
	}}

	text := build(t, cv, variant.Public).Text()
	assert.NotContains(t, text, "Hiring")
	assert.Contains(t, text, "Infra:\nMigrated to Kubernetes")
}

func TestBuild_InlineLinksBecomeHyperlinks(t *testing.T) {
	doc := build(t, sampleCV(), variant.Public)
	assert.Equal(t, []string{
		"https://linkedin.com/in/ada",
		"https://ada.example/platforms",
		"https://pypi.org/project/tracer",
		"https://doi.example/1",
	}, doc.Hyperlinks())
	assert.Contains(t, doc.Text(), "Builds platforms. Leads teams.")
	assert.Contains(t, doc.Text(), "PyPI")
}

func TestBuild_EntryFormatting(t *testing.T) {
	text := build(t, sampleCV(), variant.Public).Text()
	assert.Contains(t, text, "Lead  March 2021 - Present")
	assert.Contains(t, text, "Engineer  2018 - 2021")
	assert.Contains(t, text, "Tracer (2023)")
	assert.Contains(t, text, "ACM, May 2022")
	assert.Contains(t, text, "BSc - TU Berlin (2012 - 2016)")
	assert.Contains(t, text, "Languages: Go, Python")
	assert.Contains(t, text, "CKA - CNCF")
	assert.Contains(t, text, "ACM | IEEE")
}

func TestBuild_Margins(t *testing.T) {
	doc := build(t, sampleCV(), variant.Public)
	assert.Equal(t, 1080, doc.Margin)
}

func TestBuild_NilCV(t *testing.T) {
	_, err := Build(rendering.Input{})
	var renderErr *rendering.RenderError
	assert.ErrorAs(t, err, &renderErr)
}
