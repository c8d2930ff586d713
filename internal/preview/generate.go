package preview

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-builder/internal/fsutil"
	"github.com/jonathan/cv-builder/internal/textutil"
	"github.com/jonathan/cv-builder/internal/types"
)

// Backend measures text for layout and encodes laid-out trees.
// CanvasRenderer is the production implementation.
type Backend interface {
	Measurer
	EncodePNG(w io.Writer, root *Node) error
	EncodeSVG(w io.Writer, root *Node) error
}

// Status is the outcome of one batch item.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// ItemResult records what happened to one excerpt.
type ItemResult struct {
	Slug    string `json:"slug"`
	Source  string `json:"source,omitempty"`
	Path    string `json:"path,omitempty"`
	SVGPath string `json:"svg_path,omitempty"`
	Status  Status `json:"status"`
	Err     error  `json:"-"`
}

// Tally counts batch outcomes.
type Tally struct {
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// NotGenerated is the number of items that produced no image.
func (t Tally) NotGenerated() int { return t.Skipped + t.Failed }

// Options configures a preview batch.
type Options struct {
	OutDir   string
	Site     Site
	Workers  int
	WriteSVG bool
	Backend  Backend
	Logger   *zap.Logger
}

// Report is the result of a batch. Items are in input order.
type Report struct {
	Items []ItemResult
	Tally Tally
}

// Generate renders one PNG per excerpt into opts.OutDir, named after the
// excerpt slug. Items run concurrently up to opts.Workers. Excerpts without
// a title are skipped; drawing or writing failures mark the item failed.
// Neither stops the batch. The returned error covers setup only.
func Generate(ctx context.Context, excerpts []types.Excerpt, opts Options) (*Report, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if opts.Backend == nil {
		opts.Backend = NewCanvasRenderer(FontSources{})
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]ItemResult, len(excerpts))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, ex := range excerpts {
		g.Go(func() error {
			results[i] = generateOne(ctx, ex, opts)
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{Items: results}
	for _, res := range results {
		switch res.Status {
		case StatusGenerated:
			report.Tally.Generated++
		case StatusSkipped:
			report.Tally.Skipped++
		default:
			report.Tally.Failed++
		}
	}
	opts.Logger.Info("preview batch finished",
		zap.Int("generated", report.Tally.Generated),
		zap.Int("skipped", report.Tally.Skipped),
		zap.Int("failed", report.Tally.Failed),
		zap.String("out_dir", opts.OutDir))
	return report, nil
}

func generateOne(ctx context.Context, ex types.Excerpt, opts Options) ItemResult {
	log := opts.Logger.With(zap.String("source", ex.Source))
	res := ItemResult{Slug: ex.Slug, Source: ex.Source}

	if err := ctx.Err(); err != nil {
		res.Status, res.Err = StatusFailed, err
		return res
	}

	if strings.TrimSpace(ex.Title) == "" {
		res.Status = StatusSkipped
		res.Err = fmt.Errorf("%w: no title", ErrMalformedExcerpt)
		log.Info("skipping excerpt without title")
		return res
	}
	if res.Slug == "" {
		res.Slug = textutil.Slugify(ex.Title)
	}
	if res.Slug == "" {
		res.Status = StatusSkipped
		res.Err = fmt.Errorf("%w: no slug", ErrMalformedExcerpt)
		log.Info("skipping excerpt without slug")
		return res
	}
	log = log.With(zap.String("slug", res.Slug))

	root := BuildLayout(ex, opts.Site)
	Layout(root, opts.Backend)

	path := filepath.Join(opts.OutDir, res.Slug+".png")
	if err := encodeTo(path, root, opts.Backend.EncodePNG); err != nil {
		res.Status, res.Err = StatusFailed, &RenderError{Slug: res.Slug, Message: "png", Cause: err}
		log.Error("failed to generate preview", zap.Error(err))
		return res
	}
	res.Path = path

	if opts.WriteSVG {
		svgPath := filepath.Join(opts.OutDir, res.Slug+".svg")
		if err := encodeTo(svgPath, root, opts.Backend.EncodeSVG); err != nil {
			res.Status, res.Err = StatusFailed, &RenderError{Slug: res.Slug, Message: "svg", Cause: err}
			log.Error("failed to generate preview svg", zap.Error(err))
			return res
		}
		res.SVGPath = svgPath
	}

	res.Status = StatusGenerated
	log.Debug("generated preview", zap.String("path", path))
	return res
}

func encodeTo(path string, root *Node, encode func(io.Writer, *Node) error) error {
	var buf bytes.Buffer
	if err := encode(&buf, root); err != nil {
		return err
	}
	return fsutil.WriteFile(path, buf.Bytes(), 0644)
}
