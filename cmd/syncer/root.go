package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"tour_sync/internal/config"
	"tour_sync/internal/metrics"
)

// app carries what every subcommand needs once config is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "syncer",
		Short:         "Tour acquisition and ranking engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "config.yaml", "path to config file")

	root.AddCommand(
		newBatchCmd(a),
		newServeCmd(a),
		newRankCmd(a),
		newMigrateCmd(a),
	)
	return root
}

func (a *app) init() error {
	logger := setupLogger("info", "json")

	cfg, err := config.Load(a.configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return err
	}

	a.cfg = cfg
	a.logger = setupLogger(cfg.LogLevel, cfg.LogFormat)
	a.metrics = metrics.New()
	return nil
}
