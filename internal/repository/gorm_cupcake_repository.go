package repository

import (
	"context"
	"errors"
	"fmt"

	"cupcake-api/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// gormCupcakeRepository implements CupcakeRepository on top of gorm, so the
// service can run against any dialect gorm supports.
type gormCupcakeRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewGormCupcakeRepository creates a new gorm-backed cupcake repository.
func NewGormCupcakeRepository(db *gorm.DB, logger zerolog.Logger) CupcakeRepository {
	return &gormCupcakeRepository{
		db:     db,
		logger: logger.With().Str("repository", "cupcake").Str("backend", "gorm").Logger(),
	}
}

func (r *gormCupcakeRepository) GetAll(ctx context.Context) ([]model.Cupcake, error) {
	cupcakes := []model.Cupcake{}
	if err := r.db.WithContext(ctx).Order("id").Find(&cupcakes).Error; err != nil {
		r.logger.Error().Err(err).Msg("failed to query cupcakes")
		return nil, fmt.Errorf("failed to query cupcakes: %w", err)
	}
	return cupcakes, nil
}

func (r *gormCupcakeRepository) GetByID(ctx context.Context, id int64) (*model.Cupcake, error) {
	var c model.Cupcake
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug().Int64("cupcake_id", id).Msg("cupcake not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("cupcake_id", id).Msg("failed to query cupcake")
		return nil, fmt.Errorf("failed to query cupcake: %w", err)
	}
	return &c, nil
}

func (r *gormCupcakeRepository) Create(ctx context.Context, cupcake *model.Cupcake) error {
	cupcake.ID = 0
	if err := r.db.WithContext(ctx).Create(cupcake).Error; err != nil {
		r.logger.Error().Err(err).Str("flavor", cupcake.Flavor).Msg("failed to create cupcake")
		return fmt.Errorf("failed to create cupcake: %w", err)
	}

	r.logger.Debug().Int64("cupcake_id", cupcake.ID).Msg("cupcake created successfully")
	return nil
}

func (r *gormCupcakeRepository) Update(ctx context.Context, cupcake *model.Cupcake) error {
	// Select lists the columns explicitly so empty strings are written too.
	result := r.db.WithContext(ctx).
		Model(&model.Cupcake{}).
		Where("id = ?", cupcake.ID).
		Select("flavor", "size", "rating", "image").
		Updates(map[string]interface{}{
			"flavor": cupcake.Flavor,
			"size":   cupcake.Size,
			"rating": cupcake.Rating,
			"image":  cupcake.Image,
		})
	if result.Error != nil {
		r.logger.Error().Err(result.Error).Int64("cupcake_id", cupcake.ID).Msg("failed to update cupcake")
		return fmt.Errorf("failed to update cupcake: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return model.ErrCupcakeNotFound
	}

	r.logger.Debug().Int64("cupcake_id", cupcake.ID).Msg("cupcake updated successfully")
	return nil
}

func (r *gormCupcakeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Cupcake{}, id)
	if result.Error != nil {
		r.logger.Error().Err(result.Error).Int64("cupcake_id", id).Msg("failed to delete cupcake")
		return fmt.Errorf("failed to delete cupcake: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return model.ErrCupcakeNotFound
	}

	r.logger.Debug().Int64("cupcake_id", id).Msg("cupcake deleted successfully")
	return nil
}

func (r *gormCupcakeRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Cupcake{}).Count(&count).Error; err != nil {
		r.logger.Error().Err(err).Msg("failed to count cupcakes")
		return 0, fmt.Errorf("failed to count cupcakes: %w", err)
	}
	return int(count), nil
}

func (r *gormCupcakeRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
