package types

// Severity levels for violations.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single check failure on a rendered artifact.
type Violation struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Details    string `json:"details"`
	Artifact   string `json:"artifact,omitempty"`
	LineNumber *int   `json:"line_number,omitempty"`
	PageCount  *int   `json:"page_count,omitempty"`
}

// Violations represents a collection of check failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation has error severity.
func (v *Violations) HasErrors() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Add appends violations, stamping each with artifact when it has none.
func (v *Violations) Add(artifact string, violations ...Violation) {
	for _, violation := range violations {
		if violation.Artifact == "" {
			violation.Artifact = artifact
		}
		v.Violations = append(v.Violations, violation)
	}
}
