package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minerehab/closure-forecast/internal/server"
	"github.com/minerehab/closure-forecast/pkg/constants"
)

var serveConfigFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the estimate HTTP API",
	Long: `Starts an HTTP server that accepts YAML input documents on
POST /api/estimate and returns the computed estimate as JSON.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigFile, "config", constants.DefaultServerConfigFile,
		"path to the server configuration file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig(serveConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	logger, err := initializeLogger(cfg.Logging, logLevelOverride)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	handler := server.NewHandler(logger, cfg.BodySizeBytes(), Version)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting estimate server",
		zap.String("op", "cli.runServe"),
		zap.String("address", cfg.Address),
		zap.Int64("maxBodyBytes", cfg.BodySizeBytes()),
	)

	return srv.ListenAndServe()
}
