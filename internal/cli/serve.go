package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cupcake-api/internal/handler"
	"cupcake-api/internal/middleware"
	"cupcake-api/internal/router"
	"cupcake-api/internal/seed"
	"cupcake-api/internal/service"
	"cupcake-api/internal/web"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  "Starts the JSON API and home page, seeding from SEED_FILE first when it is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, opts, false)
	if err != nil {
		return err
	}
	defer a.close()

	cfg, logger := a.cfg, a.logger
	logger.Info().Str("driver", cfg.Database.Driver).Msg("starting cupcake API server")

	cupcakeService := service.NewCupcakeService(a.repo, logger)

	if cfg.Seed.File != "" {
		seeder := seed.NewSeeder(newSeedLoader(ctx, cfg, logger), cupcakeService, a.repo, logger)
		if _, err := seeder.Run(ctx, cfg.Seed.File, false); err != nil {
			logger.Warn().Err(err).Str("file", cfg.Seed.File).Msg("startup seeding failed")
		}
	}

	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mux := router.New(
		router.Handlers{
			Cupcake: handler.NewCupcakeHandler(cupcakeService, logger),
			Home:    handler.NewHomeHandler(tmpl, logger),
			Health:  handler.NewHealthHandler(a.repo, logger),
		},
		router.Options{
			APIKey:   cfg.Auth.APIKey,
			Limiter:  middleware.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
			Registry: registry,
			Static:   web.Static(),
		},
		logger,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
		return nil
	})

	return g.Wait()
}
