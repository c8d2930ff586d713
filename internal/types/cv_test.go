package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight_StringPrefersDescription(t *testing.T) {
	assert.Equal(t, "plain", Highlight{Text: "plain"}.String())
	assert.Equal(t, "detail", Highlight{Title: "T", Description: "detail"}.String())
}

func TestBullets_Flat(t *testing.T) {
	d := Flat{Highlights: []Highlight{{Text: "a"}, {Text: "b"}}}
	assert.Len(t, Bullets(d), 2)
}

func TestBullets_DetailedKeepsSectionOrder(t *testing.T) {
	d := Detailed{Sections: []Section{
		{Title: "One", Highlights: []Highlight{{Text: "a"}}},
		{Title: "Two", Highlights: []Highlight{{Text: "b"}, {Text: "c"}}},
	}}
	got := Bullets(d)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].String())
	assert.Equal(t, "c", got[2].String())
}

func TestBullets_Nil(t *testing.T) {
	assert.Nil(t, Bullets(nil))
}

func TestLink_DisplayLabel(t *testing.T) {
	assert.Equal(t, "GitHub", Link{Type: "source"}.DisplayLabel())
	assert.Equal(t, "GitHub", Link{Type: "github"}.DisplayLabel())
	assert.Equal(t, "PyPI", Link{Type: "package"}.DisplayLabel())
	assert.Equal(t, "Docs", Link{Type: "documentation"}.DisplayLabel())
	assert.Equal(t, "Blog", Link{Type: "writeup"}.DisplayLabel())
	assert.Equal(t, "Paper", Link{Type: "paper"}.DisplayLabel())
	assert.Equal(t, "Demo", Link{Type: "other", Label: "Demo"}.DisplayLabel())
	assert.Equal(t, "Link", Link{Type: "other"}.DisplayLabel())
}

func TestCV_CloneIsDeep(t *testing.T) {
	cv := &CV{
		Contact: ContactInfo{Name: "Ada", Profiles: []Profile{{Network: "GitHub", URL: "u"}}},
		Experience: []Experience{{
			Company: "Acme",
			Details: Detailed{Sections: []Section{{Title: "S", Highlights: []Highlight{{Text: "x"}}}}},
		}},
		Skills:       []SkillCategory{{Category: "Go", Items: []string{"a"}}},
		Affiliations: []string{"IEEE"},
	}

	clone := cv.Clone()
	clone.Contact.Phone = "123"
	clone.Contact.Profiles[0].URL = "changed"
	clone.Experience[0].Details.(Detailed).Sections[0].Highlights[0].Text = "changed"
	clone.Skills[0].Items[0] = "changed"
	clone.Affiliations[0] = "changed"

	assert.Empty(t, cv.Contact.Phone)
	assert.Equal(t, "u", cv.Contact.Profiles[0].URL)
	assert.Equal(t, "x", cv.Experience[0].Details.(Detailed).Sections[0].Highlights[0].Text)
	assert.Equal(t, "a", cv.Skills[0].Items[0])
	assert.Equal(t, "IEEE", cv.Affiliations[0])
}

func TestCV_CloneNil(t *testing.T) {
	var cv *CV
	assert.Nil(t, cv.Clone())
}
