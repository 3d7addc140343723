package cli

import (
	"context"
	"fmt"

	"cupcake-api/internal/config"
	"cupcake-api/internal/database"
	"cupcake-api/internal/repository"
	"cupcake-api/internal/seed"

	"github.com/rs/zerolog"
)

// app is the configuration and store shared by the commands.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	repo   repository.CupcakeRepository
	close  func()
}

// newApp loads configuration and opens the configured store. The cupcakes
// table is created if missing when forceMigrate or DB_AUTO_MIGRATE is set.
func newApp(ctx context.Context, opts *rootOptions, forceMigrate bool) (*app, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	repo, closeFn, err := openStore(ctx, cfg.Database, forceMigrate || cfg.Database.AutoMigrate, logger)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
		close:  closeFn,
	}, nil
}

// openStore connects to the database selected by cfg.Driver and returns the
// matching repository with its release func.
func openStore(ctx context.Context, cfg config.DatabaseConfig, migrate bool, logger zerolog.Logger) (repository.CupcakeRepository, func(), error) {
	if cfg.Driver == config.DriverPostgres {
		pool, err := database.NewPool(ctx, cfg, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		if migrate {
			if err := database.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}

		return repository.NewCupcakeRepository(pool, logger), pool.Close, nil
	}

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	closeFn := func() {
		if err := database.CloseGorm(db); err != nil {
			logger.Error().Err(err).Msg("failed to close database")
		}
	}

	if migrate {
		if err := database.MigrateGorm(ctx, db, logger); err != nil {
			closeFn()
			return nil, nil, err
		}
	}

	return repository.NewGormCupcakeRepository(db, logger), closeFn, nil
}

// newSeedLoader reads seed files from S3 when enabled, falling back to disk.
func newSeedLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) seed.Loader {
	fileLoader := seed.NewFileLoader(logger)
	if !cfg.S3.Enabled {
		return fileLoader
	}

	s3Loader, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)
}
