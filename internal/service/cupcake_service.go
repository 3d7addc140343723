package service

import (
	"context"
	"errors"
	"fmt"

	"cupcake-api/internal/model"
	"cupcake-api/internal/repository"

	"github.com/rs/zerolog"
)

// cupcakeService implements CupcakeService.
type cupcakeService struct {
	repo   repository.CupcakeRepository
	logger zerolog.Logger
}

// NewCupcakeService creates a new cupcake service.
func NewCupcakeService(repo repository.CupcakeRepository, logger zerolog.Logger) CupcakeService {
	return &cupcakeService{
		repo:   repo,
		logger: logger.With().Str("service", "cupcake").Logger(),
	}
}

// List retrieves every cupcake in store order.
func (s *cupcakeService) List(ctx context.Context) ([]model.Cupcake, error) {
	cupcakes, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list cupcakes")
		return nil, fmt.Errorf("failed to list cupcakes: %w", err)
	}

	if cupcakes == nil {
		cupcakes = []model.Cupcake{}
	}

	s.logger.Debug().Int("count", len(cupcakes)).Msg("retrieved cupcakes")

	return cupcakes, nil
}

// Get retrieves a single cupcake by ID.
func (s *cupcakeService) Get(ctx context.Context, id int64) (*model.Cupcake, error) {
	if id < 1 {
		s.logger.Debug().Int64("cupcake_id", id).Msg("invalid cupcake ID")
		return nil, model.ErrCupcakeNotFound
	}

	cupcake, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("cupcake_id", id).Msg("failed to get cupcake by ID")
		return nil, fmt.Errorf("failed to get cupcake: %w", err)
	}

	if cupcake == nil {
		s.logger.Debug().Int64("cupcake_id", id).Msg("cupcake not found")
		return nil, model.ErrCupcakeNotFound
	}

	return cupcake, nil
}

// Create validates and stores a new cupcake.
func (s *cupcakeService) Create(ctx context.Context, req *model.NewCupcake) (*model.Cupcake, error) {
	if err := req.Validate(); err != nil {
		s.logger.Debug().Err(err).Msg("rejected cupcake payload")
		return nil, err
	}

	cupcake := &model.Cupcake{
		Flavor: *req.Flavor,
		Size:   *req.Size,
		Rating: float64(*req.Rating),
		Image:  model.DefaultImageURL,
	}
	if req.Image != nil {
		cupcake.Image = *req.Image
	}

	if err := s.repo.Create(ctx, cupcake); err != nil {
		s.logger.Error().Err(err).Msg("failed to create cupcake")
		return nil, fmt.Errorf("failed to create cupcake: %w", err)
	}

	s.logger.Info().
		Int64("cupcake_id", cupcake.ID).
		Str("flavor", cupcake.Flavor).
		Msg("cupcake created")

	return cupcake, nil
}

// Update applies a partial update and returns the merged cupcake.
func (s *cupcakeService) Update(ctx context.Context, id int64, patch *model.CupcakePatch) (*model.Cupcake, error) {
	cupcake, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := patch.Validate(); err != nil {
		s.logger.Debug().Err(err).Int64("cupcake_id", id).Msg("rejected cupcake patch")
		return nil, err
	}

	if patch.IsEmpty() {
		return cupcake, nil
	}

	patch.Apply(cupcake)

	if err := s.repo.Update(ctx, cupcake); err != nil {
		if errors.Is(err, model.ErrCupcakeNotFound) {
			// deleted between the read and the write
			return nil, err
		}
		s.logger.Error().Err(err).Int64("cupcake_id", id).Msg("failed to update cupcake")
		return nil, fmt.Errorf("failed to update cupcake: %w", err)
	}

	s.logger.Info().Int64("cupcake_id", id).Msg("cupcake updated")

	return cupcake, nil
}

// Delete removes a cupcake.
func (s *cupcakeService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return model.ErrCupcakeNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrCupcakeNotFound) {
			s.logger.Debug().Int64("cupcake_id", id).Msg("cupcake not found")
			return err
		}
		s.logger.Error().Err(err).Int64("cupcake_id", id).Msg("failed to delete cupcake")
		return fmt.Errorf("failed to delete cupcake: %w", err)
	}

	s.logger.Info().Int64("cupcake_id", id).Msg("cupcake deleted")

	return nil
}
