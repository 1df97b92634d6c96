package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"tour_sync/internal/service"
	"tour_sync/internal/storage/postgres"
)

func newRankCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank SITE_ID",
		Short: "Print the ranked tours for a site as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if limit <= 0 {
				limit = a.cfg.Ranking.TopN
			}

			tours := service.NewTourService(
				postgres.NewSiteStore(db),
				postgres.NewOfferStore(db),
				a.newEngine(),
				a.cfg.Ranking,
				a.metrics,
				a.logger,
			)
			offers, err := tours.RankedTours(ctx, args[0], limit)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(offers)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of tours (default ranking.top_n)")
	return cmd
}
