package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/cv-builder/internal/content"
	"github.com/jonathan/cv-builder/internal/preview"
)

// PreviewOptions configures a preview image run.
type PreviewOptions struct {
	PostsDir string
	OutDir   string
	Site     preview.Site
	Workers  int
	WriteSVG bool
	Fonts    preview.FontSources
	// Backend overrides the canvas renderer built from Fonts.
	Backend    preview.Backend
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// RenderPreviews generates one social preview image per post in
// opts.PostsDir. Skipped and failed posts are recorded in the manifest and
// counted in its tally; they do not fail the run.
func RenderPreviews(ctx context.Context, opts PreviewOptions) (*Manifest, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.New()
	manifest := NewManifest(runID, "previews", time.Now())
	log := logger.With(zap.String("run_id", runID.String()))

	excerpts, err := content.LoadExcerpts(opts.PostsDir)
	if err != nil {
		return nil, err
	}
	emitProgress(opts.OnProgress, runID, StepLoad, CategoryInput,
		fmt.Sprintf("Loaded %d posts from %s", len(excerpts), opts.PostsDir), nil)

	backend := opts.Backend
	if backend == nil {
		canvasRenderer := preview.NewCanvasRenderer(opts.Fonts)
		if fallback, reason := canvasRenderer.UsesFallbackFont(); fallback {
			log.Warn("preview fonts unavailable, using built-in fallback", zap.Error(reason))
		}
		backend = canvasRenderer
	}

	report, err := preview.Generate(ctx, excerpts, preview.Options{
		OutDir:   opts.OutDir,
		Site:     opts.Site,
		Workers:  opts.Workers,
		WriteSVG: opts.WriteSVG,
		Backend:  backend,
		Logger:   log,
	})
	if err != nil {
		return nil, err
	}
	manifest.AddPreviews(report)
	emitProgress(opts.OnProgress, runID, StepPreviews, CategoryOutput,
		fmt.Sprintf("Generated %d previews", report.Tally.Generated), report.Tally)

	manifest.Finish(time.Now())
	if err := manifest.Write(opts.OutDir); err != nil {
		return manifest, err
	}
	return manifest, nil
}
