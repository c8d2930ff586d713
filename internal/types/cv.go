// Package types provides type definitions for structured data used throughout the cv-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CV is the canonical in-memory résumé record. It is read-only once loaded;
// renderers derive output from it without modifying it.
type CV struct {
	Contact        ContactInfo
	Summary        string
	Experience     []Experience
	Research       []ResearchEntry
	Publications   []Publication
	Education      []Education
	Skills         []SkillCategory
	Certifications []Certification
	Affiliations   []string
}

// ContactInfo holds the header fields of the résumé.
// Phone is only populated on the render input of the private variant.
type ContactInfo struct {
	Name     string
	Title    string
	Location string
	Email    string
	Phone    string
	Profiles []Profile
}

// Profile is a social profile link shown in the header.
type Profile struct {
	Network string
	URL     string
}

// Experience is one employment entry. Entries are rendered in the order given.
type Experience struct {
	Company     string
	Role        string
	StartDate   string
	EndDate     string
	Current     bool
	Description string
	Details     Details
}

// Details is the body of an experience entry: either Flat highlights or
// Detailed labelled sections, never both.
type Details interface {
	isDetails()
}

// Flat is a plain list of highlights.
type Flat struct {
	Highlights []Highlight
}

// Detailed is an ordered list of labelled sub-sections.
type Detailed struct {
	Sections []Section
}

func (Flat) isDetails()     {}
func (Detailed) isDetails() {}

// Section is a labelled group of highlights inside a Detailed entry.
type Section struct {
	Title      string
	Highlights []Highlight
}

// Highlight is a single bullet. Structured highlights carry a Title and a
// Description; plain ones only Text.
type Highlight struct {
	Text        string
	Title       string
	Description string
}

// String returns the text a renderer shows for the highlight.
func (h Highlight) String() string {
	if h.Description != "" {
		return h.Description
	}
	return h.Text
}

// Bullets flattens the details into the highlight list a renderer shows,
// in order. Sections contribute their highlights one after another.
func Bullets(d Details) []Highlight {
	switch v := d.(type) {
	case Flat:
		return v.Highlights
	case Detailed:
		var out []Highlight
		for _, s := range v.Sections {
			out = append(out, s.Highlights...)
		}
		return out
	default:
		return nil
	}
}

// ResearchEntry is a research or open-source project.
type ResearchEntry struct {
	Title       string
	Period      string
	Status      string
	Description string
	Links       []Link
}

// Link is a typed project link.
type Link struct {
	Type  string
	URL   string
	Label string
}

// Known link types. The short aliases are accepted for the same labels.
const (
	LinkSource        = "source"
	LinkPackage       = "package"
	LinkDocumentation = "documentation"
	LinkWriteup       = "writeup"
	LinkPaper         = "paper"
)

var linkLabels = map[string]string{
	LinkSource:        "GitHub",
	"github":          "GitHub",
	LinkPackage:       "PyPI",
	"pypi":            "PyPI",
	LinkDocumentation: "Docs",
	"docs":            "Docs",
	LinkWriteup:       "Blog",
	"blog":            "Blog",
	LinkPaper:         "Paper",
}

// DisplayLabel returns the label shown for the link.
func (l Link) DisplayLabel() string {
	if label, ok := linkLabels[l.Type]; ok {
		return label
	}
	if l.Label != "" {
		return l.Label
	}
	return "Link"
}

// Publication is a paper, article or technical disclosure.
type Publication struct {
	Title string
	Venue string
	Date  string
	URL   string
}

// Education is a degree entry.
type Education struct {
	Degree      string
	Institution string
	StartDate   string
	EndDate     string
}

// SkillCategory groups skill items under a label.
type SkillCategory struct {
	Category string
	Items    []string
}

// Certification is a professional certification.
type Certification struct {
	Name   string
	Issuer string
}

// Clone returns a deep copy of the CV so a render pass can own its input.
func (cv *CV) Clone() *CV {
	if cv == nil {
		return nil
	}
	out := *cv
	out.Contact.Profiles = append([]Profile(nil), cv.Contact.Profiles...)
	out.Experience = make([]Experience, len(cv.Experience))
	for i, e := range cv.Experience {
		out.Experience[i] = e
		out.Experience[i].Details = cloneDetails(e.Details)
	}
	out.Research = make([]ResearchEntry, len(cv.Research))
	for i, r := range cv.Research {
		out.Research[i] = r
		out.Research[i].Links = append([]Link(nil), r.Links...)
	}
	out.Publications = append([]Publication(nil), cv.Publications...)
	out.Education = append([]Education(nil), cv.Education...)
	out.Skills = make([]SkillCategory, len(cv.Skills))
	for i, s := range cv.Skills {
		out.Skills[i] = SkillCategory{Category: s.Category, Items: append([]string(nil), s.Items...)}
	}
	out.Certifications = append([]Certification(nil), cv.Certifications...)
	out.Affiliations = append([]string(nil), cv.Affiliations...)
	return &out
}

func cloneDetails(d Details) Details {
	switch v := d.(type) {
	case Flat:
		return Flat{Highlights: append([]Highlight(nil), v.Highlights...)}
	case Detailed:
		sections := make([]Section, len(v.Sections))
		for i, s := range v.Sections {
			sections[i] = Section{Title: s.Title, Highlights: append([]Highlight(nil), s.Highlights...)}
		}
		return Detailed{Sections: sections}
	default:
		return d
	}
}
