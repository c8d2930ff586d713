// Package pipeline provides the high-level orchestration for rendering
// résumé documents and blog preview images: load, select, render, write.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/cv-builder/internal/content"
	"github.com/jonathan/cv-builder/internal/fsutil"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/rendering/docx"
	"github.com/jonathan/cv-builder/internal/rendering/latex"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
	"github.com/jonathan/cv-builder/internal/variant"
)

// Step names reported in progress events.
const (
	StepLoad     = "load"
	StepRender   = "render"
	StepCompile  = "compile"
	StepPreviews = "previews"
)

// Event categories.
const (
	CategoryInput  = "input"
	CategoryOutput = "output"
	CategoryCheck  = "check"
)

// ErrChecksFailed is returned after all outputs are written when a compile
// check reported an error-severity violation.
var ErrChecksFailed = errors.New("document checks failed")

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// DocumentOptions holds configuration for rendering one length with one backend.
type DocumentOptions struct {
	DataDir string
	OutDir  string
	Length  variant.Length
	Backend variant.Backend
	// Phone is rendered into the private variant only and is required.
	Phone     string
	SiteURL   string
	SiteLabel string
	// Now stamps "Last updated" and package metadata. Zero means time.Now.
	Now time.Time
	// Compile runs pdflatex on LaTeX outputs and enforces the one-page
	// budget of the onepage length.
	Compile    bool
	Toolchain  validation.Toolchain
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(cb ProgressCallback, runID uuid.UUID, step, category, message string, content any) {
	if cb != nil {
		cb(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID.String(),
			Content:  content,
		})
	}
}

// NewRenderer returns the document renderer for backend.
func NewRenderer(backend variant.Backend, layout variant.Layout, opts DocumentOptions) (rendering.Renderer, error) {
	switch backend {
	case variant.BackendLaTeX, "":
		return latex.Renderer{
			Layout:    layout,
			Now:       opts.Now,
			SiteURL:   opts.SiteURL,
			SiteLabel: opts.SiteLabel,
		}, nil
	case variant.BackendDOCX:
		return docx.Renderer{Now: opts.Now}, nil
	default:
		return nil, fmt.Errorf("%w: %q", variant.ErrUnknownBackend, backend)
	}
}

// RenderDocuments loads the dataset of opts.Length and writes the public and
// private variants with the selected backend into opts.OutDir. Each document
// is rendered fully in memory and written atomically, so a failure never
// leaves a partial file. A manifest of the run is written alongside.
func RenderDocuments(ctx context.Context, opts DocumentOptions) (*Manifest, error) {
	if opts.Backend == "" {
		opts.Backend = variant.BackendLaTeX
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	runID := uuid.New()
	manifest := NewManifest(runID, string(opts.Backend)+"-"+string(opts.Length), time.Now())
	log := logger.With(
		zap.String("run_id", runID.String()),
		zap.String("backend", string(opts.Backend)),
		zap.String("length", string(opts.Length)))

	spec, err := variant.Resolve(opts.Length)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.Phone) == "" {
		return nil, fmt.Errorf("%w: set CV_PHONE or phone in the config file", variant.ErrPhoneRequired)
	}
	renderer, err := NewRenderer(opts.Backend, spec.Layout, opts)
	if err != nil {
		return nil, err
	}

	dataPath := filepath.Join(opts.DataDir, spec.DataFile)
	cv, err := content.LoadCV(dataPath)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded content record", zap.String("path", dataPath))
	emitProgress(opts.OnProgress, runID, StepLoad, CategoryInput,
		fmt.Sprintf("Loaded %s", dataPath), nil)

	for _, privacy := range variant.Privacies() {
		if err := ctx.Err(); err != nil {
			return manifest, err
		}

		resolved, err := variant.Select(cv, variant.Request{
			Length:  opts.Length,
			Privacy: privacy,
			Backend: opts.Backend,
		}, opts.Phone)
		if err != nil {
			return manifest, err
		}

		artifact, err := renderOne(ctx, renderer, resolved, opts, runID, log)
		manifest.Violations.Add(resolved.Filename, artifact.violations...)
		if err != nil {
			return manifest, err
		}
		manifest.Artifacts = append(manifest.Artifacts, artifact.Artifact)
		emitProgress(opts.OnProgress, runID, StepRender, CategoryOutput,
			fmt.Sprintf("Wrote %s", artifact.Path), artifact.Artifact)
	}

	manifest.Finish(time.Now())
	if err := manifest.Write(opts.OutDir); err != nil {
		return manifest, err
	}
	if manifest.Violations.HasErrors() {
		return manifest, ErrChecksFailed
	}
	return manifest, nil
}

func renderOne(ctx context.Context, renderer rendering.Renderer, resolved *variant.Resolved, opts DocumentOptions, runID uuid.UUID, log *zap.Logger) (renderedArtifact, error) {
	log = log.With(zap.String("privacy", string(resolved.Privacy)))
	in := rendering.InputFrom(resolved)
	out := renderedArtifact{Artifact: Artifact{
		Backend: string(opts.Backend),
		Length:  string(opts.Length),
		Privacy: string(resolved.Privacy),
	}}

	data, err := renderer.Render(in)
	if err != nil {
		return out, fmt.Errorf("failed to render %s: %w", resolved.Filename, err)
	}

	if resolved.Privacy == variant.Public {
		text, err := visibleText(renderer, in, data)
		if err != nil {
			return out, fmt.Errorf("failed to extract text of %s: %w", resolved.Filename, err)
		}
		if leaks := validation.CheckPhoneLeak(text, opts.Phone); len(leaks) > 0 {
			out.violations = leaks
			return out, fmt.Errorf("%s: %w", resolved.Filename, validation.ErrPhoneLeak)
		}
	}

	path := filepath.Join(opts.OutDir, resolved.Filename)
	if err := fsutil.WriteFile(path, data, 0644); err != nil {
		return out, err
	}
	out.Path = path
	out.Bytes = len(data)
	log.Info("wrote document", zap.String("path", path), zap.Int("bytes", len(data)))

	if opts.Compile && opts.Backend == variant.BackendLaTeX {
		emitProgress(opts.OnProgress, runID, StepCompile, CategoryCheck,
			fmt.Sprintf("Compiling %s", path), nil)
		result, err := validation.CheckDocument(ctx, opts.Toolchain, path, maxPages(opts.Length))
		if err != nil {
			return out, err
		}
		out.PDFPath = result.PDFPath
		out.Pages = result.Pages
		out.violations = result.Violations.Violations
		log.Info("compiled document", zap.String("pdf", result.PDFPath), zap.Int("pages", result.Pages))
	}
	return out, nil
}

type renderedArtifact struct {
	Artifact
	violations []types.Violation
}

// maxPages is the page budget enforced when compiling; zero is unlimited.
func maxPages(length variant.Length) int {
	if length == variant.LengthOnePage {
		return 1
	}
	return 0
}

// visibleText returns the reader-visible text of rendered output.
func visibleText(r rendering.Renderer, in rendering.Input, data []byte) (string, error) {
	if tr, ok := r.(rendering.TextRenderer); ok {
		return tr.RenderText(in)
	}
	return string(data), nil
}
