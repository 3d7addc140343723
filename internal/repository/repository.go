package repository

import (
	"context"

	"cupcake-api/internal/model"
)

// CupcakeRepository defines the interface for cupcake data access operations.
type CupcakeRepository interface {
	// GetAll retrieves every cupcake ordered by ID.
	GetAll(ctx context.Context) ([]model.Cupcake, error)

	// GetByID retrieves a single cupcake by its ID.
	// It returns nil without an error when no row matches.
	GetByID(ctx context.Context, id int64) (*model.Cupcake, error)

	// Create inserts a cupcake and sets its ID from the store.
	Create(ctx context.Context, cupcake *model.Cupcake) error

	// Update overwrites all mutable fields of an existing cupcake.
	// Returns model.ErrCupcakeNotFound if the ID does not exist.
	Update(ctx context.Context, cupcake *model.Cupcake) error

	// Delete removes a cupcake permanently.
	// Returns model.ErrCupcakeNotFound if the ID does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored cupcakes.
	Count(ctx context.Context) (int, error)

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
