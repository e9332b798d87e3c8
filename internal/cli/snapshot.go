package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minerehab/closure-forecast/internal/config"
)

var snapshotOut string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write a normalized copy of the input with defaults filled in",
	Long: `Loads the input document, merges it over the built-in defaults, and
writes the fully populated result back out as YAML. Useful for turning a
sparse input file into a complete, reviewable record.`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "write", "w", "",
		"destination path (defaults to stdout)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	conf, err := config.LoadConfiguration(inputFile)
	if err != nil {
		return fmt.Errorf("failed to load input %s: %w", inputFile, err)
	}

	logger, err := initializeLogger(conf.Logging, logLevelOverride)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	snapshotID := uuid.NewString()
	logger.Debug("writing input snapshot",
		zap.String("op", "cli.runSnapshot"),
		zap.String("snapshotId", snapshotID),
		zap.String("source", inputFile),
	)

	if snapshotOut == "" {
		data, err := conf.SnapshotYAML()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	if err := conf.SaveSnapshot(snapshotOut); err != nil {
		return err
	}
	fmt.Printf("snapshot %s written to %s\n", snapshotID, snapshotOut)
	return nil
}
