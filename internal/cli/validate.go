package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/pkg/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an input document without running the estimate",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	conf, err := config.LoadConfiguration(inputFile)
	if err != nil {
		return fmt.Errorf("failed to load input %s: %w", inputFile, err)
	}

	warnings, err := validation.CheckInput(&conf.Input)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	fmt.Printf("%s is valid (%d warning(s))\n", inputFile, len(warnings))
	return nil
}
