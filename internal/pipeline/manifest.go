package pipeline

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/fsutil"
	"github.com/jonathan/cv-builder/internal/preview"
	"github.com/jonathan/cv-builder/internal/types"
)

// Artifact is one document written by a run.
type Artifact struct {
	Path    string `json:"path"`
	Backend string `json:"backend"`
	Length  string `json:"length"`
	Privacy string `json:"privacy"`
	Bytes   int    `json:"bytes"`
	PDFPath string `json:"pdf_path,omitempty"`
	Pages   int    `json:"pages,omitempty"`
}

// PreviewEntry is one preview batch item as recorded in a manifest.
type PreviewEntry struct {
	Slug    string `json:"slug"`
	Source  string `json:"source,omitempty"`
	Path    string `json:"path,omitempty"`
	SVGPath string `json:"svg_path,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// Manifest records what a run produced.
type Manifest struct {
	RunID      string           `json:"run_id"`
	Name       string           `json:"name"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Artifacts  []Artifact       `json:"artifacts,omitempty"`
	Previews   []PreviewEntry   `json:"previews,omitempty"`
	Tally      *preview.Tally   `json:"tally,omitempty"`
	Violations types.Violations `json:"violations"`
}

// NewManifest starts a manifest for the run named name.
func NewManifest(runID uuid.UUID, name string, startedAt time.Time) *Manifest {
	return &Manifest{
		RunID:     runID.String(),
		Name:      name,
		StartedAt: startedAt.UTC(),
	}
}

// Finish stamps the completion time.
func (m *Manifest) Finish(at time.Time) {
	m.FinishedAt = at.UTC()
}

// AddPreviews records the items and tally of a preview batch.
func (m *Manifest) AddPreviews(report *preview.Report) {
	for _, item := range report.Items {
		entry := PreviewEntry{
			Slug:    item.Slug,
			Source:  item.Source,
			Path:    item.Path,
			SVGPath: item.SVGPath,
			Status:  string(item.Status),
		}
		if item.Err != nil {
			entry.Error = item.Err.Error()
		}
		m.Previews = append(m.Previews, entry)
	}
	tally := report.Tally
	m.Tally = &tally
}

// Filename is the manifest file name. Runs writing to the same directory
// with different names do not overwrite each other's manifests.
func (m *Manifest) Filename() string {
	return "manifest-" + m.Name + ".json"
}

// Write stores the manifest as indented JSON in dir.
func (m *Manifest) Write(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	data = append(data, '\n')
	if err := fsutil.WriteFile(filepath.Join(dir, m.Filename()), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
