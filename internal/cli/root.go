// Package cli wires the closure-forecast commands: estimate, sensitivity,
// validate, snapshot, serve, and version.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/minerehab/closure-forecast/pkg/constants"
)

var (
	inputFile        string
	logLevelOverride string
)

var rootCmd = &cobra.Command{
	Use:   "closure-forecast",
	Short: "Mine closure and rehabilitation cost forecasting",
	Long: `Closure-forecast estimates the lifecycle cost, time-phased cashflow,
and net present value of closing and rehabilitating a mine site from a
YAML input document of physical and financial parameters.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", constants.DefaultInputFile,
		"path to the input YAML document")
	rootCmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "",
		"override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
