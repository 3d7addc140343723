package repository

import (
	"context"
	"errors"
	"fmt"

	"cupcake-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cupcakeRepository implements the CupcakeRepository interface using PostgreSQL.
type cupcakeRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCupcakeRepository creates a new PostgreSQL-backed cupcake repository.
func NewCupcakeRepository(pool *pgxpool.Pool, logger zerolog.Logger) CupcakeRepository {
	return &cupcakeRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cupcake").Logger(),
	}
}

// GetAll retrieves every cupcake ordered by ID.
func (r *cupcakeRepository) GetAll(ctx context.Context) ([]model.Cupcake, error) {
	query := `
		SELECT id, flavor, size, rating, image
		FROM cupcakes
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query cupcakes")
		return nil, fmt.Errorf("failed to query cupcakes: %w", err)
	}
	defer rows.Close()

	cupcakes := []model.Cupcake{}
	for rows.Next() {
		var c model.Cupcake
		if err := rows.Scan(&c.ID, &c.Flavor, &c.Size, &c.Rating, &c.Image); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cupcake row")
			return nil, fmt.Errorf("failed to scan cupcake: %w", err)
		}
		cupcakes = append(cupcakes, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cupcake rows")
		return nil, fmt.Errorf("error iterating cupcakes: %w", err)
	}

	return cupcakes, nil
}

// GetByID retrieves a single cupcake by its ID.
func (r *cupcakeRepository) GetByID(ctx context.Context, id int64) (*model.Cupcake, error) {
	query := `
		SELECT id, flavor, size, rating, image
		FROM cupcakes
		WHERE id = $1
	`

	var c model.Cupcake
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Flavor, &c.Size, &c.Rating, &c.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("cupcake_id", id).Msg("cupcake not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("cupcake_id", id).Msg("failed to query cupcake")
		return nil, fmt.Errorf("failed to query cupcake: %w", err)
	}

	return &c, nil
}

// Create inserts a cupcake and sets its ID from the store.
func (r *cupcakeRepository) Create(ctx context.Context, cupcake *model.Cupcake) error {
	query := `
		INSERT INTO cupcakes (flavor, size, rating, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, cupcake.Flavor, cupcake.Size, cupcake.Rating, cupcake.Image).
		Scan(&cupcake.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("flavor", cupcake.Flavor).Msg("failed to create cupcake")
		return fmt.Errorf("failed to create cupcake: %w", err)
	}

	r.logger.Debug().Int64("cupcake_id", cupcake.ID).Msg("cupcake created successfully")

	return nil
}

// Update overwrites all mutable fields of an existing cupcake.
func (r *cupcakeRepository) Update(ctx context.Context, cupcake *model.Cupcake) error {
	query := `
		UPDATE cupcakes
		SET flavor = $2, size = $3, rating = $4, image = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, cupcake.ID, cupcake.Flavor, cupcake.Size, cupcake.Rating, cupcake.Image)
	if err != nil {
		r.logger.Error().Err(err).Int64("cupcake_id", cupcake.ID).Msg("failed to update cupcake")
		return fmt.Errorf("failed to update cupcake: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrCupcakeNotFound
	}

	r.logger.Debug().Int64("cupcake_id", cupcake.ID).Msg("cupcake updated successfully")

	return nil
}

// Delete removes a cupcake permanently.
func (r *cupcakeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cupcakes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("cupcake_id", id).Msg("failed to delete cupcake")
		return fmt.Errorf("failed to delete cupcake: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrCupcakeNotFound
	}

	r.logger.Debug().Int64("cupcake_id", id).Msg("cupcake deleted successfully")

	return nil
}

// Count returns the number of stored cupcakes.
func (r *cupcakeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cupcakes`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count cupcakes")
		return 0, fmt.Errorf("failed to count cupcakes: %w", err)
	}
	return count, nil
}

func (r *cupcakeRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
