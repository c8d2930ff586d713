package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
)

const sampleRecord = `
basics:
  name: Ada Example
  title: Staff Engineer
  location: Berlin, DE
  email: ada@example.com
  summary: |
    Builds <a href="https://example.com/ml">ML platforms</a>.
    Ships things.
  linkedin: https://linkedin.com/in/ada
  github: https://github.com/ada
experience:
  - company: Acme & Co
    role: Lead Engineer
    start_date: 2021-03
    end_date: present
    current: true
    highlights:
      - Cut latency by 40%
      - title: Platform
        description: Built the platform
  - company: Initech
    role: Engineer
    start_date: 2018
    end_date: 2021
    highlights:
      - Ignored when sections exist
    sections:
      - title: Infrastructure
        highlights:
          - Migrated to Kubernetes
education:
  - degree: BSc Computer Science
    institution: TU Berlin
    start_date: 2012
    end_date: 2016
skills:
  - category: Languages
    items: [Go, Python]
certifications:
  - name: CKA
    issuer: CNCF
affiliations:
  - ACM
`

func writeRecord(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv_data.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCV_ValidFile(t *testing.T) {
	cv, err := LoadCV(writeRecord(t, sampleRecord))
	require.NoError(t, err)

	assert.Equal(t, "Ada Example", cv.Contact.Name)
	assert.Empty(t, cv.Contact.Phone)
	require.Len(t, cv.Contact.Profiles, 2)
	assert.Equal(t, "LinkedIn", cv.Contact.Profiles[0].Network)
	assert.Equal(t, "GitHub", cv.Contact.Profiles[1].Network)

	require.Len(t, cv.Experience, 2)
	assert.Equal(t, "Acme & Co", cv.Experience[0].Company)
	assert.Equal(t, "2021-03", cv.Experience[0].StartDate)
	assert.Equal(t, "present", cv.Experience[0].EndDate)
	assert.True(t, cv.Experience[0].Current)

	require.Len(t, cv.Education, 1)
	assert.Equal(t, "2012", cv.Education[0].StartDate)
	require.Len(t, cv.Certifications, 1)
	assert.Equal(t, []string{"ACM"}, cv.Affiliations)
}

func TestLoadCV_FlatHighlights(t *testing.T) {
	cv, err := LoadCV(writeRecord(t, sampleRecord))
	require.NoError(t, err)

	flat, ok := cv.Experience[0].Details.(types.Flat)
	require.True(t, ok, "details should be Flat")
	require.Len(t, flat.Highlights, 2)
	assert.Equal(t, "Cut latency by 40%", flat.Highlights[0].String())
	assert.Equal(t, "Platform", flat.Highlights[1].Title)
	assert.Equal(t, "Built the platform", flat.Highlights[1].String())
}

func TestLoadCV_SectionsWinOverHighlights(t *testing.T) {
	cv, err := LoadCV(writeRecord(t, sampleRecord))
	require.NoError(t, err)

	detailed, ok := cv.Experience[1].Details.(types.Detailed)
	require.True(t, ok, "details should be Detailed")
	require.Len(t, detailed.Sections, 1)
	assert.Equal(t, "Infrastructure", detailed.Sections[0].Title)
	assert.Equal(t, "Migrated to Kubernetes", detailed.Sections[0].Highlights[0].String())
}

func TestLoadCV_FileNotFound(t *testing.T) {
	_, err := LoadCV(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.True(t, errors.Is(err, ErrMissingInput))
}

func TestLoadCV_EmptyFile(t *testing.T) {
	_, err := LoadCV(writeRecord(t, ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestLoadCV_PhoneInRecordRejected(t *testing.T) {
	record := `
basics:
  name: Ada Example
  email: ada@example.com
  phone: "+49 000"
experience: []
education: []
skills: []
`
	_, err := LoadCV(writeRecord(t, record))
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoadCV_InvalidEmail(t *testing.T) {
	record := `
basics:
  name: Ada Example
  email: not-an-email
experience: []
education: []
skills: []
`
	_, err := LoadCV(writeRecord(t, record))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
}

func TestParseCV_AcceptsJSON(t *testing.T) {
	cv, err := ParseCV([]byte(`{"basics": {"name": "Ada", "email": "ada@example.com"},
		"experience": [], "education": [], "skills": []}`))
	require.NoError(t, err)
	assert.Equal(t, "Ada", cv.Contact.Name)
}

func TestParseCV_TooLarge(t *testing.T) {
	old := MaxInputSize
	MaxInputSize = 8
	t.Cleanup(func() { MaxInputSize = old })

	_, err := ParseCV([]byte("basics: {}\n"))
	assert.ErrorIs(t, err, ErrInputTooLarge)
}
