package service

import (
	"context"

	"favkart/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves all products.
	List(ctx context.Context) ([]model.Product, error)

	// ListByCategory retrieves the products of one category.
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)

	// Get retrieves one product with its owner expanded.
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create stores a product owned by requester.
	Create(ctx context.Context, requester uuid.UUID, input model.ProductInput) (*model.Product, error)

	// Update applies a patch to a product owned by requester. decode fills in
	// the patch and is only called once the requester is known to own the
	// product, so a non-owner is refused whatever the body holds.
	Update(ctx context.Context, requester, id uuid.UUID, decode PatchDecoder) error

	// Delete removes a product owned by requester.
	Delete(ctx context.Context, requester, id uuid.UUID) error
}

// PatchDecoder reads a product patch from the request.
type PatchDecoder func(patch *model.ProductPatch) error

// FavoriteService defines operations for favorite management.
type FavoriteService interface {
	// List retrieves all favorites with product and owner expanded.
	List(ctx context.Context) ([]model.Favorite, error)

	// Create stores a favorite owned by requester.
	Create(ctx context.Context, requester uuid.UUID, input model.FavoriteInput) (*model.Favorite, error)

	// Delete removes a favorite owned by requester.
	Delete(ctx context.Context, requester, id uuid.UUID) error
}
