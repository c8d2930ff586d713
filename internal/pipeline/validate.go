package pipeline

import (
	"path/filepath"

	"github.com/jonathan/cv-builder/internal/content"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/variant"
)

// DataSummary describes a content record that passed validation.
type DataSummary struct {
	Length         variant.Length `json:"length"`
	Path           string         `json:"path"`
	Name           string         `json:"name"`
	Experience     int            `json:"experience"`
	Research       int            `json:"research"`
	Publications   int            `json:"publications"`
	Education      int            `json:"education"`
	SkillGroups    int            `json:"skill_groups"`
	Certifications int            `json:"certifications"`
	Affiliations   int            `json:"affiliations"`
}

// ValidateData loads and validates the content record of length without
// rendering anything.
func ValidateData(dataDir string, length variant.Length) (*DataSummary, error) {
	spec, err := variant.Resolve(length)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dataDir, spec.DataFile)
	cv, err := content.LoadCV(path)
	if err != nil {
		return nil, err
	}
	return summarize(length, path, cv), nil
}

// ValidateFile validates a content record at an arbitrary path. The summary
// carries no length.
func ValidateFile(path string) (*DataSummary, error) {
	cv, err := content.LoadCV(path)
	if err != nil {
		return nil, err
	}
	return summarize("", path, cv), nil
}

func summarize(length variant.Length, path string, cv *types.CV) *DataSummary {
	return &DataSummary{
		Length:         length,
		Path:           path,
		Name:           cv.Contact.Name,
		Experience:     len(cv.Experience),
		Research:       len(cv.Research),
		Publications:   len(cv.Publications),
		Education:      len(cv.Education),
		SkillGroups:    len(cv.Skills),
		Certifications: len(cv.Certifications),
		Affiliations:   len(cv.Affiliations),
	}
}
