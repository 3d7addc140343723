package database

import (
	"context"
	"fmt"

	"cupcake-api/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CupcakesSchema creates the cupcakes table. It is idempotent.
const CupcakesSchema = `
	CREATE TABLE IF NOT EXISTS cupcakes (
		id BIGSERIAL PRIMARY KEY,
		flavor TEXT NOT NULL,
		size TEXT NOT NULL,
		rating DOUBLE PRECISION NOT NULL,
		image TEXT NOT NULL DEFAULT 'https://tinyurl.com/demo-cupcake'
	)
`

// Migrate creates the schema on a pgx pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, CupcakesSchema); err != nil {
		logger.Error().Err(err).Msg("failed to create cupcakes table")
		return fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info().Str("table", "cupcakes").Msg("schema is up to date")
	return nil
}

// MigrateGorm creates the schema through gorm's AutoMigrate.
func MigrateGorm(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.Cupcake{}); err != nil {
		logger.Error().Err(err).Msg("failed to auto-migrate cupcakes table")
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}

	logger.Info().Str("table", model.Cupcake{}.TableName()).Msg("schema is up to date")
	return nil
}
