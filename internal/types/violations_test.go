package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_JSONOmitsEmptyPointers(t *testing.T) {
	pages := 2
	violation := Violation{
		Type:      "page_overflow",
		Severity:  SeverityError,
		Details:   "document has 2 pages, maximum is 1",
		Artifact:  "cv-onepage.tex",
		PageCount: &pages,
	}

	jsonBytes, err := json.Marshal(violation)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"page_count":2`)
	assert.Contains(t, string(jsonBytes), `"artifact":"cv-onepage.tex"`)
	assert.NotContains(t, string(jsonBytes), "line_number")
}

func TestViolations_HasErrors(t *testing.T) {
	var none *Violations
	assert.False(t, none.HasErrors())

	v := &Violations{}
	v.Add("cv.tex", Violation{Type: "latex_warning", Severity: SeverityWarning})
	assert.False(t, v.HasErrors())

	v.Add("cv.tex", Violation{Type: "phone_leak", Severity: SeverityError})
	assert.True(t, v.HasErrors())
}

func TestViolations_AddStampsArtifact(t *testing.T) {
	v := &Violations{}
	v.Add("cv.tex",
		Violation{Type: "a"},
		Violation{Type: "b", Artifact: "other.tex"},
	)

	require.Len(t, v.Violations, 2)
	assert.Equal(t, "cv.tex", v.Violations[0].Artifact)
	assert.Equal(t, "other.tex", v.Violations[1].Artifact)
}
