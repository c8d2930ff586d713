package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/pipeline"
	"github.com/jonathan/cv-builder/internal/preview"
)

var renderPreviewsCmd = &cobra.Command{
	Use:   "render-previews",
	Short: "Generate social preview images for blog posts",
	Long: "Generates a 1200x630 PNG preview image per blog post into <assets-dir>/img/og. " +
		"Posts without a title are skipped and counted; they do not fail the run.",
	RunE: runRenderPreviews,
}

var (
	renderPreviewsPosts   string
	renderPreviewsOut     string
	renderPreviewsWorkers int
	renderPreviewsSVG     bool
)

func init() {
	renderPreviewsCmd.Flags().StringVar(&renderPreviewsPosts, "posts", "", "Posts directory (default from config)")
	renderPreviewsCmd.Flags().StringVarP(&renderPreviewsOut, "out", "o", "", "Output directory (default <assets-dir>/img/og)")
	renderPreviewsCmd.Flags().IntVarP(&renderPreviewsWorkers, "workers", "w", 0, "Concurrent renders (0 uses config, then GOMAXPROCS)")
	renderPreviewsCmd.Flags().BoolVar(&renderPreviewsSVG, "svg", false, "Also write an SVG next to each PNG")

	rootCmd.AddCommand(renderPreviewsCmd)
}

func runRenderPreviews(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	posts := renderPreviewsPosts
	if posts == "" {
		posts = a.cfg.PostsDir
	}
	workers := renderPreviewsWorkers
	if workers <= 0 {
		workers = a.cfg.Preview.Workers
	}

	manifest, err := pipeline.RenderPreviews(cmd.Context(), pipeline.PreviewOptions{
		PostsDir: posts,
		OutDir:   outDir(renderPreviewsOut, a.cfg.AssetsDir, "img", "og"),
		Site: preview.Site{
			Name:   a.cfg.Site.Name,
			Author: a.cfg.Site.Author,
			URL:    a.cfg.Site.URL,
			Domain: a.cfg.SiteDomain(),
		},
		Workers:    workers,
		WriteSVG:   renderPreviewsSVG || a.cfg.Preview.WriteSVG,
		Fonts: preview.FontSources{
			RegularPath: a.cfg.Preview.FontRegular,
			BoldPath:    a.cfg.Preview.FontBold,
		},
		Logger:     a.logger,
		OnProgress: a.progress(),
	})
	if manifest != nil {
		a.printer.PrintManifest(manifest)
	}
	return err
}
