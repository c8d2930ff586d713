package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/pipeline"
	"github.com/jonathan/cv-builder/internal/variant"
)

var renderLaTeXCmd = &cobra.Command{
	Use:   "render-latex",
	Short: "Render the CV as LaTeX",
	Long: "Renders the public and private LaTeX variants of one length into <build-dir>/cv. " +
		"With --compile each file is compiled with pdflatex and the onepage length is checked to fit one page.",
	RunE: runRenderLaTeX,
}

var renderDOCXCmd = &cobra.Command{
	Use:   "render-docx",
	Short: "Render the CV as DOCX",
	Long:  "Renders the public and private DOCX variants of one length into <assets-dir>/cv.",
	RunE:  runRenderDOCX,
}

var (
	renderLaTeXLength  string
	renderLaTeXOut     string
	renderLaTeXCompile bool

	renderDOCXLength string
	renderDOCXOut    string
)

func init() {
	renderLaTeXCmd.Flags().StringVarP(&renderLaTeXLength, "length", "l", string(variant.LengthFull), "Length variant: full, concise or onepage")
	renderLaTeXCmd.Flags().StringVarP(&renderLaTeXOut, "out", "o", "", "Output directory (default <build-dir>/cv)")
	renderLaTeXCmd.Flags().BoolVar(&renderLaTeXCompile, "compile", false, "Compile with pdflatex and check the page budget")

	renderDOCXCmd.Flags().StringVarP(&renderDOCXLength, "length", "l", string(variant.LengthFull), "Length variant: full, concise or onepage")
	renderDOCXCmd.Flags().StringVarP(&renderDOCXOut, "out", "o", "", "Output directory (default <assets-dir>/cv)")

	rootCmd.AddCommand(renderLaTeXCmd)
	rootCmd.AddCommand(renderDOCXCmd)
}

func runRenderLaTeX(cmd *cobra.Command, _ []string) error {
	return renderDocuments(cmd, variant.BackendLaTeX, renderLaTeXLength, renderLaTeXOut, renderLaTeXCompile)
}

func runRenderDOCX(cmd *cobra.Command, _ []string) error {
	return renderDocuments(cmd, variant.BackendDOCX, renderDOCXLength, renderDOCXOut, false)
}

func renderDocuments(cmd *cobra.Command, backend variant.Backend, lengthFlag, out string, compile bool) error {
	length, err := variant.ParseLength(lengthFlag)
	if err != nil {
		return err
	}
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	root := a.cfg.BuildDir
	if backend == variant.BackendDOCX {
		root = a.cfg.AssetsDir
	}

	manifest, err := pipeline.RenderDocuments(cmd.Context(), pipeline.DocumentOptions{
		DataDir:    a.cfg.DataDir,
		OutDir:     outDir(out, root, "cv"),
		Length:     length,
		Backend:    backend,
		Phone:      a.cfg.Phone,
		SiteURL:    a.cfg.Site.URL,
		SiteLabel:  a.cfg.SiteDomain(),
		Now:        time.Now(),
		Compile:    compile,
		Logger:     a.logger,
		OnProgress: a.progress(),
	})
	if manifest != nil {
		a.printer.PrintManifest(manifest)
		if compile || len(manifest.Violations.Violations) > 0 {
			a.printer.PrintViolations(&manifest.Violations)
		}
	}
	return err
}
