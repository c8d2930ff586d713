package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-builder/internal/pipeline"
	"github.com/jonathan/cv-builder/internal/variant"
)

var validateDataCmd = &cobra.Command{
	Use:   "validate-data",
	Short: "Validate content records without rendering",
	Long:  "Loads the content record of a length and checks it against the CV schema. Use --length all to check every dataset, or --file to check a record outside the data directory.",
	RunE:  runValidateData,
}

var (
	validateDataLength string
	validateDataFile   string
)

func init() {
	validateDataCmd.Flags().StringVarP(&validateDataLength, "length", "l", "all", "Length variant: full, concise, onepage or all")
	validateDataCmd.Flags().StringVarP(&validateDataFile, "file", "f", "", "Validate this YAML or JSON record instead of the data directory")

	rootCmd.AddCommand(validateDataCmd)
}

func runValidateData(cmd *cobra.Command, _ []string) error {
	if validateDataFile != "" {
		return runValidateFile(cmd)
	}

	lengths := variant.Lengths()
	if validateDataLength != "all" {
		length, err := variant.ParseLength(validateDataLength)
		if err != nil {
			return err
		}
		lengths = []variant.Length{length}
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	var failed int
	for _, length := range lengths {
		summary, err := pipeline.ValidateData(a.cfg.DataDir, length)
		if err != nil {
			if len(lengths) == 1 {
				return err
			}
			failed++
			a.logger.Error("invalid content record", zap.String("length", string(length)), zap.Error(err))
			continue
		}
		a.printer.PrintDataSummary(summary)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d content records failed validation", failed, len(lengths))
	}
	return nil
}

func runValidateFile(cmd *cobra.Command) error {
	if cmd.Flags().Changed("length") {
		return fmt.Errorf("--file and --length are mutually exclusive")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	summary, err := pipeline.ValidateFile(validateDataFile)
	if err != nil {
		return err
	}
	a.printer.PrintDataSummary(summary)
	return nil
}
