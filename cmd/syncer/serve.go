package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tour_sync/internal/api"
	"tour_sync/internal/publisher"
	"tour_sync/internal/scheduler"
	"tour_sync/internal/storage/postgres"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		migrate     bool
		noScheduler bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the operational API and run scheduled batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if migrate {
				if err := postgres.RunMigrations(a.cfg.Database.URL(), a.logger); err != nil {
					return err
				}
			}

			c, err := a.wire(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			handler := api.NewHandler(c.sync, c.tours, c.db, api.HandlerConfig{
				DefaultTopN:  a.cfg.Ranking.TopN,
				BatchTimeout: a.cfg.Sync.RunTimeout,
			}, a.logger)

			srv := &http.Server{
				Addr:         a.cfg.HTTP.Addr,
				Handler:      api.NewRouter(handler, a.metrics.Handler(), a.logger),
				ReadTimeout:  a.cfg.HTTP.ReadTimeout,
				WriteTimeout: a.cfg.HTTP.WriteTimeout,
			}

			// batches run by other processes invalidate this process's ranked cache
			sub, err := a.newSubscriber()
			if err != nil {
				return err
			}
			if sub != nil {
				defer sub.Close()
			}

			g, gctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				a.logger.Info("http server listening", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})

			g.Go(func() error {
				<-gctx.Done()
				a.logger.Info("shutting down http server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			if sub != nil {
				g.Go(func() error {
					err := sub.Run(gctx, func(msg publisher.SiteToursMessage) {
						c.tours.Invalidate(msg.SiteID)
					})
					if err != nil {
						a.logger.Warn("site tour events stopped, ranked cache relies on ttl", "error", err)
					}
					return nil
				})
			}

			if !noScheduler {
				sched := scheduler.NewScheduler(c.sync, a.cfg.Sync.Interval, a.cfg.Sync.RunTimeout, a.logger)
				g.Go(func() error {
					if err := sched.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
						return err
					}
					return nil
				})
			}

			return g.Wait()
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply migrations before starting")
	cmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "serve the API without periodic batches")
	return cmd
}
