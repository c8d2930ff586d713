package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-builder/internal/types"
)

// record mirrors the serialized content file. It is converted into
// types.CV once validated.
type record struct {
	Basics         basicsRecord          `yaml:"basics" validate:"required"`
	Experience     []experienceRecord    `yaml:"experience" validate:"dive"`
	Research       []researchRecord      `yaml:"research" validate:"dive"`
	Publications   []publicationRecord   `yaml:"publications" validate:"dive"`
	Education      []educationRecord     `yaml:"education" validate:"dive"`
	Skills         []skillRecord         `yaml:"skills" validate:"dive"`
	Certifications []certificationRecord `yaml:"certifications" validate:"dive"`
	Affiliations   []string              `yaml:"affiliations"`
}

type basicsRecord struct {
	Name     string `yaml:"name" validate:"required"`
	Title    string `yaml:"title"`
	Location string `yaml:"location"`
	Email    string `yaml:"email" validate:"required,email"`
	Summary  string `yaml:"summary"`
	LinkedIn string `yaml:"linkedin" validate:"omitempty,url"`
	GitHub   string `yaml:"github" validate:"omitempty,url"`
	Website  string `yaml:"website" validate:"omitempty,url"`
}

type experienceRecord struct {
	Company     string            `yaml:"company" validate:"required"`
	Role        string            `yaml:"role" validate:"required"`
	StartDate   flexString        `yaml:"start_date"`
	EndDate     flexString        `yaml:"end_date"`
	Current     bool              `yaml:"current"`
	Description string            `yaml:"description"`
	Highlights  []highlightRecord `yaml:"highlights"`
	Sections    []sectionRecord   `yaml:"sections" validate:"dive"`
}

type sectionRecord struct {
	Title      string            `yaml:"title" validate:"required"`
	Highlights []highlightRecord `yaml:"highlights"`
}

// highlightRecord is either a plain string or a {title, description} mapping.
type highlightRecord struct {
	Text        string
	Title       string
	Description string
}

func (h *highlightRecord) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		h.Text = t
	case map[string]any:
		h.Title = fmt.Sprint(valueOr(t["title"], ""))
		h.Description = fmt.Sprint(valueOr(t["description"], ""))
	default:
		return fmt.Errorf("highlight must be a string or mapping, got %T", v)
	}
	return nil
}

func valueOr(v, fallback any) any {
	if v == nil {
		return fallback
	}
	return v
}

type researchRecord struct {
	Title       string       `yaml:"title" validate:"required"`
	Period      flexString   `yaml:"period"`
	Status      string       `yaml:"status"`
	Description string       `yaml:"description"`
	Links       []linkRecord `yaml:"links" validate:"dive"`
}

type linkRecord struct {
	Type  string `yaml:"type"`
	URL   string `yaml:"url" validate:"required"`
	Label string `yaml:"label"`
}

type publicationRecord struct {
	Title string     `yaml:"title" validate:"required"`
	Venue string     `yaml:"venue"`
	Date  flexString `yaml:"date"`
	URL   string     `yaml:"url" validate:"omitempty,url"`
}

type educationRecord struct {
	Degree      string     `yaml:"degree" validate:"required"`
	Institution string     `yaml:"institution"`
	StartDate   flexString `yaml:"start_date"`
	EndDate     flexString `yaml:"end_date"`
}

type skillRecord struct {
	Category string   `yaml:"category" validate:"required"`
	Items    []string `yaml:"items"`
}

type certificationRecord struct {
	Name   string `yaml:"name" validate:"required"`
	Issuer string `yaml:"issuer"`
}

// Validate checks the struct-level constraints of the record.
func (r *record) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// toCV converts the serialized record into the canonical data model.
func (r *record) toCV() *types.CV {
	cv := &types.CV{
		Contact: types.ContactInfo{
			Name:     r.Basics.Name,
			Title:    r.Basics.Title,
			Location: r.Basics.Location,
			Email:    r.Basics.Email,
			Profiles: profiles(r.Basics),
		},
		Summary:      r.Basics.Summary,
		Affiliations: r.Affiliations,
	}

	for _, e := range r.Experience {
		cv.Experience = append(cv.Experience, types.Experience{
			Company:     e.Company,
			Role:        e.Role,
			StartDate:   string(e.StartDate),
			EndDate:     string(e.EndDate),
			Current:     e.Current,
			Description: e.Description,
			Details:     details(e),
		})
	}
	for _, p := range r.Research {
		entry := types.ResearchEntry{
			Title:       p.Title,
			Period:      string(p.Period),
			Status:      p.Status,
			Description: p.Description,
		}
		for _, l := range p.Links {
			entry.Links = append(entry.Links, types.Link{Type: l.Type, URL: l.URL, Label: l.Label})
		}
		cv.Research = append(cv.Research, entry)
	}
	for _, p := range r.Publications {
		cv.Publications = append(cv.Publications, types.Publication{
			Title: p.Title, Venue: p.Venue, Date: string(p.Date), URL: p.URL,
		})
	}
	for _, e := range r.Education {
		cv.Education = append(cv.Education, types.Education{
			Degree:      e.Degree,
			Institution: e.Institution,
			StartDate:   string(e.StartDate),
			EndDate:     string(e.EndDate),
		})
	}
	for _, s := range r.Skills {
		cv.Skills = append(cv.Skills, types.SkillCategory{Category: s.Category, Items: s.Items})
	}
	for _, c := range r.Certifications {
		cv.Certifications = append(cv.Certifications, types.Certification{Name: c.Name, Issuer: c.Issuer})
	}
	return cv
}

func profiles(b basicsRecord) []types.Profile {
	var out []types.Profile
	for _, p := range []types.Profile{
		{Network: "LinkedIn", URL: b.LinkedIn},
		{Network: "GitHub", URL: b.GitHub},
		{Network: "Website", URL: b.Website},
	} {
		if p.URL != "" {
			out = append(out, p)
		}
	}
	return out
}

// details picks the entry shape; sections take precedence over highlights.
func details(e experienceRecord) types.Details {
	if len(e.Sections) > 0 {
		sections := make([]types.Section, 0, len(e.Sections))
		for _, s := range e.Sections {
			sections = append(sections, types.Section{Title: s.Title, Highlights: highlights(s.Highlights)})
		}
		return types.Detailed{Sections: sections}
	}
	return types.Flat{Highlights: highlights(e.Highlights)}
}

func highlights(in []highlightRecord) []types.Highlight {
	out := make([]types.Highlight, 0, len(in))
	for _, h := range in {
		out = append(out, types.Highlight{Text: h.Text, Title: h.Title, Description: h.Description})
	}
	return out
}
