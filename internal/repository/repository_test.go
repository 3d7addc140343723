package repository

import (
	"context"
	"testing"

	"cupcake-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCupcakes is the fixture set shared by both repository implementations.
func testCupcakes() []model.Cupcake {
	return []model.Cupcake{
		{Flavor: "cherry", Size: "large", Rating: 5, Image: "http://test.com/cherry.jpg"},
		{Flavor: "chocolate", Size: "small", Rating: 9, Image: "http://test.com/chocolate.jpg"},
		{Flavor: "lemon", Size: "medium", Rating: 7.5, Image: model.DefaultImageURL},
	}
}

// runRepositoryContract exercises the CupcakeRepository behaviour every
// implementation must share. newRepo must return a repository over an empty table.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) CupcakeRepository) {
	t.Run("GetAll on empty table returns empty slice", func(t *testing.T) {
		repo := newRepo(t)

		cupcakes, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, cupcakes)
		assert.Empty(t, cupcakes)
	})

	t.Run("Create assigns increasing IDs", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		var lastID int64
		for _, c := range testCupcakes() {
			c := c
			require.NoError(t, repo.Create(ctx, &c))
			assert.Greater(t, c.ID, lastID)
			lastID = c.ID
		}

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("GetAll returns records in insertion order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created := make([]model.Cupcake, 0, 3)
		for _, c := range testCupcakes() {
			c := c
			require.NoError(t, repo.Create(ctx, &c))
			created = append(created, c)
		}

		cupcakes, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, created, cupcakes)
	})

	t.Run("GetByID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		c := testCupcakes()[0]
		require.NoError(t, repo.Create(ctx, &c))

		found, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, c, *found)

		missing, err := repo.GetByID(ctx, c.ID+1000)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Update overwrites fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		c := testCupcakes()[0]
		require.NoError(t, repo.Create(ctx, &c))

		c.Flavor = "UpdatedFlavor"
		c.Size = "UpdatedSize"
		c.Rating = 10
		c.Image = ""
		require.NoError(t, repo.Update(ctx, &c))

		found, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, c, *found)
	})

	t.Run("Update unknown ID returns not found", func(t *testing.T) {
		repo := newRepo(t)

		c := testCupcakes()[0]
		c.ID = 999
		err := repo.Update(context.Background(), &c)
		assert.ErrorIs(t, err, model.ErrCupcakeNotFound)
	})

	t.Run("Delete removes the record", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		c := testCupcakes()[0]
		require.NoError(t, repo.Create(ctx, &c))

		require.NoError(t, repo.Delete(ctx, c.ID))

		found, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, found)

		assert.ErrorIs(t, repo.Delete(ctx, c.ID), model.ErrCupcakeNotFound)
	})

	t.Run("Ping", func(t *testing.T) {
		repo := newRepo(t)
		assert.NoError(t, repo.Ping(context.Background()))
	})
}
