package repository

import (
	"context"

	"favkart/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves every product, owners unexpanded.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByCategory retrieves the products whose category matches exactly.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns nil, nil when no product has that ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDWithOwner is GetByID with the owner reference expanded.
	GetByIDWithOwner(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create inserts a product and fills in its timestamps.
	Create(ctx context.Context, product *model.Product) error

	// Update applies a partial update. An empty patch is a no-op.
	Update(ctx context.Context, id uuid.UUID, patch model.ProductPatch) error

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error
}

// FavoriteRepository defines the interface for favorite data access operations.
type FavoriteRepository interface {
	// GetAll retrieves every favorite with its product and owner expanded.
	GetAll(ctx context.Context) ([]model.Favorite, error)

	// GetByID retrieves a single favorite by its ID, references unexpanded.
	// Returns nil, nil when no favorite has that ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Favorite, error)

	// Create inserts a favorite and fills in its creation time.
	Create(ctx context.Context, favorite *model.Favorite) error

	// Delete removes a favorite.
	Delete(ctx context.Context, id uuid.UUID) error
}
