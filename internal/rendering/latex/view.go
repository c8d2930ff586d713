package latex

import (
	"strings"
	"time"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/textutil"
	"github.com/jonathan/cv-builder/internal/types"
)

// Compact layout limits.
const (
	compactExperience       = 4
	compactResearch         = 6
	compactPublications     = 6
	compactBullets          = 3
	compactCurrentBullets   = 6
	compactSummarySentences = 2
)

// document is the template data of both layouts. Every string is already
// escaped LaTeX.
type document struct {
	Name           string
	Title          string
	ContactLine    string
	SocialLine     string
	Summary        string
	Experience     []experienceView
	Research       []researchView
	Publications   []publicationView
	Education      []educationView
	Skills         []skillView
	Certifications []certificationView
	Affiliations   string
	SiteLink       string
	Updated        string
}

type experienceView struct {
	Company     string
	Role        string
	Dates       string
	Description string
	Sections    []sectionView
	Bullets     []string
}

type sectionView struct {
	Title   string
	Bullets []string
}

type researchView struct {
	Title       string
	Period      string
	Description string
	Body        string
}

type publicationView struct {
	Title string
	Meta  string
	Year  string
}

type educationView struct {
	Degree      string
	Institution string
	Dates       string
}

type skillView struct {
	Category string
	Items    string
}

type certificationView struct {
	Name   string
	Issuer string
}

// header fills the fields shared by both layouts.
func (r Renderer) header(in rendering.Input, sep string) *document {
	cv := in.CV
	doc := &document{
		Name:  rendering.EscapeLaTeX(cv.Contact.Name),
		Title: rendering.EscapeLaTeX(cv.Contact.Title),
	}

	var social []string
	for _, p := range cv.Contact.Profiles {
		social = append(social, rendering.Href(p.URL, rendering.EscapeLaTeX(p.Network)))
	}
	doc.SocialLine = strings.Join(social, sep)

	if r.SiteURL != "" {
		label := r.SiteLabel
		if label == "" {
			label = r.SiteURL
		}
		doc.SiteLink = rendering.Href(r.SiteURL, rendering.EscapeLaTeX(label))
	}

	for _, s := range cv.Skills {
		items := make([]string, 0, len(s.Items))
		for _, item := range s.Items {
			items = append(items, rendering.EscapeLaTeX(item))
		}
		doc.Skills = append(doc.Skills, skillView{
			Category: rendering.EscapeLaTeX(s.Category),
			Items:    strings.Join(items, ", "),
		})
	}
	for _, c := range cv.Certifications {
		doc.Certifications = append(doc.Certifications, certificationView{
			Name:   rendering.EscapeLaTeX(c.Name),
			Issuer: rendering.EscapeLaTeX(c.Issuer),
		})
	}
	if len(cv.Affiliations) > 0 {
		items := make([]string, 0, len(cv.Affiliations))
		for _, a := range cv.Affiliations {
			items = append(items, rendering.EscapeLaTeX(a))
		}
		doc.Affiliations = strings.Join(items, ` \textbullet{} `)
	}
	return doc
}

func (r Renderer) fullDocument(in rendering.Input) *document {
	cv := in.CV
	doc := r.header(in, ` $|$ `)

	contact := rendering.ContactParts(in)
	for i, part := range contact {
		contact[i] = rendering.EscapeLaTeX(part)
	}
	doc.ContactLine = strings.Join(contact, ` $|$ `)
	doc.Summary = rendering.RichLaTeX(cv.Summary)

	for _, e := range cv.Experience {
		view := experienceView{
			Company:     rendering.EscapeLaTeX(e.Company),
			Role:        rendering.EscapeLaTeX(e.Role),
			Dates:       dateRange(e.StartDate, e.EndDate, e.Current, textutil.FormatDate),
			Description: rendering.RichLaTeX(e.Description),
		}
		view.Sections, view.Bullets = bullets(e.Details, -1)
		doc.Experience = append(doc.Experience, view)
	}

	for _, p := range cv.Research {
		lines := []string{`\textbf{` + rendering.EscapeLaTeX(p.Title) + `}`}
		if desc := rendering.RichLaTeX(p.Description); desc != "" {
			lines = append(lines, desc)
		}
		if len(p.Links) > 0 {
			links := make([]string, 0, len(p.Links))
			for _, l := range p.Links {
				links = append(links, rendering.Href(l.URL, rendering.EscapeLaTeX(l.DisplayLabel())))
			}
			lines = append(lines, strings.Join(links, ` $\cdot$ `))
		}
		if p.Status != "" {
			lines = append(lines, `\textit{`+rendering.EscapeLaTeX(p.Status)+`}`)
		}
		doc.Research = append(doc.Research, researchView{Body: strings.Join(lines, " \\\\\n")})
	}

	for _, p := range cv.Publications {
		title := `\textbf{` + rendering.EscapeLaTeX(p.Title) + `}`
		if p.URL != "" {
			title = rendering.Href(p.URL, title)
		}
		doc.Publications = append(doc.Publications, publicationView{
			Title: title,
			Meta:  joinNonEmpty(", ", rendering.EscapeLaTeX(p.Venue), rendering.EscapeLaTeX(textutil.FormatDate(p.Date))),
		})
	}

	for _, e := range cv.Education {
		doc.Education = append(doc.Education, educationView{
			Degree:      rendering.EscapeLaTeX(e.Degree),
			Institution: rendering.EscapeLaTeX(e.Institution),
		})
	}
	return doc
}

func (r Renderer) compactDocument(in rendering.Input, now time.Time) *document {
	cv := in.CV
	doc := r.header(in, ` \quad `)

	contact := make([]string, 0, 3)
	for _, item := range rendering.ContactItems(in) {
		if item.Kind == rendering.ContactEmail {
			contact = append(contact, rendering.Href("mailto:"+item.Value, rendering.EscapeLaTeX(item.Value)))
			continue
		}
		contact = append(contact, rendering.EscapeLaTeX(item.Value))
	}
	doc.ContactLine = strings.Join(contact, ` \quad `)

	if summary := textutil.CollapseNewlines(cv.Summary); summary != "" {
		doc.Summary = rendering.RichLaTeX(textutil.FirstSentences(summary, compactSummarySentences))
	}
	doc.Updated = textutil.FormatDate(now.Format("2006-01"))

	for _, e := range head(cv.Experience, compactExperience) {
		limit := compactBullets
		if e.Current {
			limit = compactCurrentBullets
		}
		view := experienceView{
			Company: rendering.EscapeLaTeX(e.Company),
			Role:    rendering.EscapeLaTeX(e.Role),
			Dates:   dateRange(e.StartDate, e.EndDate, e.Current, textutil.FormatYear),
		}
		view.Sections, view.Bullets = bullets(e.Details, limit)
		doc.Experience = append(doc.Experience, view)
	}

	for _, e := range cv.Education {
		doc.Education = append(doc.Education, educationView{
			Degree:      rendering.EscapeLaTeX(e.Degree),
			Institution: rendering.EscapeLaTeX(e.Institution),
			Dates:       dateRange(e.StartDate, e.EndDate, false, textutil.FormatYear),
		})
	}

	for _, p := range head(cv.Research, compactResearch) {
		doc.Research = append(doc.Research, researchView{
			Title:       rendering.EscapeLaTeX(p.Title),
			Period:      rendering.EscapeLaTeX(p.Period),
			Description: rendering.RichLaTeX(p.Description),
		})
	}

	for _, p := range head(cv.Publications, compactPublications) {
		title := rendering.EscapeLaTeX(p.Title)
		if p.URL != "" {
			title = rendering.Href(p.URL, title)
		}
		doc.Publications = append(doc.Publications, publicationView{
			Title: title,
			Year:  rendering.EscapeLaTeX(textutil.FormatYear(p.Date)),
		})
	}
	return doc
}

// bullets converts entry details into template sections or a flat list.
// A non-negative limit caps the number of bullets across the whole entry.
// Sections without bullets are dropped.
func bullets(d types.Details, limit int) ([]sectionView, []string) {
	switch v := d.(type) {
	case types.Detailed:
		remaining := limit
		var sections []sectionView
		for _, s := range v.Sections {
			hs := s.Highlights
			if limit >= 0 {
				if remaining <= 0 {
					break
				}
				hs = head(hs, remaining)
				remaining -= len(hs)
			}
			if len(hs) == 0 {
				continue
			}
			sections = append(sections, sectionView{
				Title:   rendering.EscapeLaTeX(s.Title),
				Bullets: richAll(hs),
			})
		}
		return sections, nil
	case types.Flat:
		hs := v.Highlights
		if limit >= 0 {
			hs = head(hs, limit)
		}
		return nil, richAll(hs)
	default:
		return nil, nil
	}
}

func richAll(hs []types.Highlight) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		out = append(out, rendering.RichLaTeX(h.String()))
	}
	return out
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func dateRange(start, end string, current bool, format func(string) string) string {
	if end == "" && current {
		end = textutil.Present
	}
	return rendering.EscapeLaTeX(joinNonEmpty(" -- ", format(start), format(end)))
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
