package main

import (
	"github.com/spf13/cobra"

	"tour_sync/internal/storage/postgres"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.RunMigrations(a.cfg.Database.URL(), a.logger)
		},
	}
}
