package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/internal/estimate"
	"github.com/minerehab/closure-forecast/pkg/constants"
	"github.com/minerehab/closure-forecast/pkg/validation"
)

var sensitivityVariation float64

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Rank cost drivers by estimate impact",
	Long: `Runs the full pipeline with one-at-a-time driver perturbation and
prints the resulting tornado table, largest cost impact first.`,
	RunE: runSensitivity,
}

func init() {
	sensitivityCmd.Flags().Float64Var(&sensitivityVariation, "variation", constants.DefaultSensitivityVariationPercent,
		"driver perturbation in percent")
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	conf, err := config.LoadConfiguration(inputFile)
	if err != nil {
		return fmt.Errorf("failed to load input %s: %w", inputFile, err)
	}

	logger, err := initializeLogger(conf.Logging, logLevelOverride)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if _, err := validation.CheckInput(&conf.Input); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	results, err := estimate.RunWithOptions(logger, &conf.Input, estimate.Options{
		SensitivityVariationPercent: sensitivityVariation,
	})
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	fmt.Printf("--- Sensitivity at +/-%.1f%% ---\n", sensitivityVariation)
	fmt.Printf("Driver                    | Base       | Low total       | High total      | Cost delta\n")
	fmt.Printf("______                    | ____       | _________       | __________      | __________\n")
	for _, s := range results.Sensitivity {
		_, _ = p.Printf("%-25s | %.2f %-4s | $%.2f | $%.2f | $%.2f\n",
			s.Driver, s.BaseValue, s.Unit, s.LowTotalCost, s.HighTotalCost, s.TotalCostDelta)
	}
	return nil
}
