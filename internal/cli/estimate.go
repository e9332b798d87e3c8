package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/internal/estimate"
	"github.com/minerehab/closure-forecast/pkg/constants"
	"github.com/minerehab/closure-forecast/pkg/output"
	"github.com/minerehab/closure-forecast/pkg/validation"
)

var (
	outputFormat     string
	skipSensitivity  bool
	variationPercent float64
	csvItems         bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Compute the closure cost estimate",
	Long: `Loads the input document, validates it, runs the full estimate
pipeline, and renders the results in the selected output format.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "output", "o", "",
		"output format: pretty, csv, or json (overrides the config output block)")
	estimateCmd.Flags().BoolVar(&skipSensitivity, "skip-sensitivity", false,
		"skip the sensitivity analysis pass")
	estimateCmd.Flags().Float64Var(&variationPercent, "variation", constants.DefaultSensitivityVariationPercent,
		"sensitivity perturbation in percent")
	estimateCmd.Flags().BoolVar(&csvItems, "items", false,
		"with csv output, emit the itemized costs instead of the annual cashflow")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	conf, err := config.LoadConfiguration(inputFile)
	if err != nil {
		return fmt.Errorf("failed to load input %s: %w", inputFile, err)
	}

	logger, err := initializeLogger(conf.Logging, logLevelOverride)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	format := outputFormat
	if format == "" {
		format = conf.Output.Format
	}
	if format == "" {
		format = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}

	warnings, err := validation.CheckInput(&conf.Input)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	results, err := estimate.RunWithOptions(logger, &conf.Input, estimate.Options{
		SkipSensitivity:             skipSensitivity,
		SensitivityVariationPercent: variationPercent,
	})
	if err != nil {
		return err
	}

	switch format {
	case constants.OutputFormatCSV:
		if csvItems {
			fmt.Print(output.ItemsCsvString(results))
			return nil
		}
		output.CsvFormat(results)
	case constants.OutputFormatJSON:
		return output.JSONFormat(results)
	default:
		output.PrettyFormat(results)
	}
	return nil
}
