package seed

import (
	"context"
	"fmt"

	"cupcake-api/internal/service"

	"github.com/rs/zerolog"
)

// Counter reports how many cupcakes are stored.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Seeder writes seed file contents through the cupcake service.
type Seeder struct {
	loader  Loader
	service service.CupcakeService
	counter Counter
	logger  zerolog.Logger
}

// NewSeeder creates a new seeder.
func NewSeeder(loader Loader, svc service.CupcakeService, counter Counter, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader:  loader,
		service: svc,
		counter: counter,
		logger:  logger.With().Str("component", "seeder").Logger(),
	}
}

// Run loads path and creates each cupcake in it. Unless force is set, nothing
// is written when the store already holds cupcakes. Every record is validated
// before the first write, so a bad file leaves the store untouched. It returns
// the number of cupcakes created.
func (s *Seeder) Run(ctx context.Context, path string, force bool) (int, error) {
	if !force {
		n, err := s.counter.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count cupcakes: %w", err)
		}
		if n > 0 {
			s.logger.Info().Int("existing", n).Msg("store already seeded, skipping")
			return 0, nil
		}
	}

	cupcakes, err := s.loader.Load(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed file: %w", err)
	}

	for i := range cupcakes {
		if err := cupcakes[i].Validate(); err != nil {
			return 0, fmt.Errorf("invalid seed cupcake %d: %w", i, err)
		}
	}

	created := 0
	for i := range cupcakes {
		if _, err := s.service.Create(ctx, &cupcakes[i]); err != nil {
			return created, fmt.Errorf("failed to seed cupcake %d: %w", i, err)
		}
		created++
	}

	s.logger.Info().
		Str("file", path).
		Int("created", created).
		Msg("seeding completed")

	return created, nil
}
