package service

import (
	"context"

	"cupcake-api/internal/model"
)

// CupcakeService defines operations for cupcake management.
type CupcakeService interface {
	// List retrieves every cupcake in store order.
	List(ctx context.Context) ([]model.Cupcake, error)

	// Get retrieves a single cupcake by ID.
	Get(ctx context.Context, id int64) (*model.Cupcake, error)

	// Create validates and stores a new cupcake.
	Create(ctx context.Context, req *model.NewCupcake) (*model.Cupcake, error)

	// Update applies a partial update and returns the merged cupcake.
	Update(ctx context.Context, id int64, patch *model.CupcakePatch) (*model.Cupcake, error)

	// Delete removes a cupcake.
	Delete(ctx context.Context, id int64) error
}
