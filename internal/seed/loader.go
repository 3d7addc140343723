package seed

import (
	"context"
	"fmt"
	"os"

	"cupcake-api/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for seed files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a local seed file.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.NewCupcake, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	cupcakes, err := Decode(file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode seed file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("cupcakes_loaded", len(cupcakes)).
		Msg("seed file loaded successfully")

	return cupcakes, nil
}
