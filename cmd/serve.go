package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"cardforge/internal/api"
	"cardforge/internal/api/handler/v1handler"
	"cardforge/internal/cards"
	"cardforge/internal/config"
	"cardforge/pkg/logger"
	"cardforge/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runServer serves the API until ctx is done, then shuts down gracefully.
func runServer(ctx context.Context, cfg *config.Config) error {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		return err //nolint: wrapcheck
	}

	svc, err := cards.New(cards.Deps{MeterProvider: mp}, cards.NewOptions(cfg))
	if err != nil {
		return fmt.Errorf("could not create cards service: %w", err)
	}

	server := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Cards: svc},
	}, api.NewOptions(cfg))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not start webserver: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		// wait for interrupt
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
		defer cancel()

		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
		if err := mp.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
		}

		return nil
	})

	return g.Wait() //nolint: wrapcheck
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}

	return cmd
}
