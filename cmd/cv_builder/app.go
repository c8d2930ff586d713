package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/logging"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/pipeline"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print progress and debug logs")
}

// app is the per-invocation state shared by subcommands.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	printer *observability.Printer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if logFormat != "" {
		if logFormat != "console" && logFormat != "json" {
			return nil, fmt.Errorf("invalid --log-format %q (expected console or json)", logFormat)
		}
		cfg.Log.Format = logFormat
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS env,
	// in which case runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))

	return &app{
		cfg:     cfg,
		logger:  logger,
		printer: observability.NewPrinter(cmd.OutOrStdout()),
	}, nil
}

// progress returns a callback printing events in verbose mode.
func (a *app) progress() pipeline.ProgressCallback {
	if !verbose {
		return nil
	}
	return a.printer.PrintProgress
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// outDir returns flagValue or the default sub-directory of root.
func outDir(flagValue, root string, sub ...string) string {
	if flagValue != "" {
		return flagValue
	}
	return filepath.Join(append([]string{root}, sub...)...)
}
