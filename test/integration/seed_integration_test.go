package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cupcake-api/internal/model"
	"cupcake-api/internal/repository"
	"cupcake-api/internal/seed"
	"cupcake-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `cupcakes:
  - flavor: cherry
    size: large
    rating: 5
    image: https://tinyurl.com/demo-cupcake
  - flavor: chocolate
    size: small
    rating: 9
    image: https://www.bakedbyrachel.com/wp-content/uploads/2018/01/chocolatecupcakesccfrosting1_bakedbyrachel.jpg
`

func TestSeeder_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	CleanupDB(t, testDB.Pool)

	logger := zerolog.Nop()
	ctx := context.Background()

	seedFile := filepath.Join(t.TempDir(), "cupcakes.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte(seedYAML), 0o600))

	repo := repository.NewCupcakeRepository(testDB.Pool, logger)
	seeder := seed.NewSeeder(seed.NewFileLoader(logger), service.NewCupcakeService(repo, logger), repo, logger)

	created, err := seeder.Run(ctx, seedFile, false)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	cupcakes, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, cupcakes, 2)
	assert.Equal(t, "cherry", cupcakes[0].Flavor)
	assert.Equal(t, model.DefaultImageURL, cupcakes[0].Image)
	assert.Equal(t, "chocolate", cupcakes[1].Flavor)

	created, err = seeder.Run(ctx, seedFile, false)
	require.NoError(t, err)
	assert.Zero(t, created)
}
