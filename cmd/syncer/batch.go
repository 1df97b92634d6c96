package main

import (
	"github.com/spf13/cobra"

	"tour_sync/internal/domain"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		siteIDs []string
		query   string
		limit   int
		drain   bool
		maxRuns int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run one sync batch and print the per-site outcomes",
		Example: `  syncer batch --site-id giza --site-id petra
  syncer batch --query pyramid --limit 5
  syncer batch --drain --max-runs 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c, err := a.wire(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			runner := timeoutRunner{runner: c.sync, timeout: a.cfg.Sync.RunTimeout}
			out := cmd.OutOrStdout()

			if drain {
				if limit <= 0 {
					limit = a.cfg.Sync.BatchLimit
				}
				var printErr error
				runs, err := drainBatches(ctx, runner, limit, maxRuns, func(r *domain.BatchReport) {
					if printErr == nil {
						printErr = printReport(out, r)
					}
				})
				a.logger.Info("drain finished", "runs", runs)
				if err != nil {
					return err
				}
				return printErr
			}

			report, err := runner.RunBatch(ctx, domain.BatchRequest{
				SiteIDs:     siteIDs,
				SearchQuery: query,
				Limit:       limit,
			})
			if err != nil {
				a.logger.Error("batch failed", "error", err)
				return err
			}
			return printReport(out, report)
		},
	}

	cmd.Flags().StringSliceVar(&siteIDs, "site-id", nil, "sync exactly these site ids (repeatable)")
	cmd.Flags().StringVar(&query, "query", "", "sync sites whose name contains this text")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum sites per batch (default sync.batch_limit)")
	cmd.Flags().BoolVar(&drain, "drain", false, "repeat default batches until every site has been visited")
	cmd.Flags().IntVar(&maxRuns, "max-runs", 0, "cap on batches in --drain mode (0 means no cap)")
	cmd.MarkFlagsMutuallyExclusive("drain", "site-id")
	cmd.MarkFlagsMutuallyExclusive("drain", "query")

	return cmd
}
