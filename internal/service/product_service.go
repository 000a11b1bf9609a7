package service

import (
	"context"
	"fmt"

	"favkart/internal/model"
	"favkart/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		validate:    newValidator(),
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// ListByCategory retrieves the products of one category.
func (s *productService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.productRepo.GetByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Str("category", category).
		Int("count", len(products)).
		Msg("retrieved products by category")

	return products, nil
}

// Get retrieves one product with its owner expanded.
func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByIDWithOwner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return RequireFound(product, "product", id)
}

// Create stores a product owned by requester.
func (s *productService) Create(ctx context.Context, requester uuid.UUID, input model.ProductInput) (*model.Product, error) {
	if err := validateInput(s.validate, input); err != nil {
		s.logger.Debug().Err(err).Msg("rejected product payload")
		return nil, err
	}

	product := &model.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Owner:       model.NewRef[model.User](requester),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("owner_id", requester.String()).
		Msg("product created")

	return product, nil
}

// Update applies a decoded patch to a product owned by requester.
func (s *productService) Update(ctx context.Context, requester, id uuid.UUID, decode PatchDecoder) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	product, err = RequireFound(product, "product", id)
	if err != nil {
		return err
	}

	if err := RequireOwner(requester, product.Owner); err != nil {
		s.logger.Warn().
			Str("product_id", id.String()).
			Str("requester_id", requester.String()).
			Msg("update refused: requester is not the owner")
		return err
	}

	var patch model.ProductPatch
	if err := decode(&patch); err != nil {
		return err
	}

	if err := validateInput(s.validate, patch); err != nil {
		return err
	}

	if err := s.productRepo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// Delete removes a product owned by requester.
func (s *productService) Delete(ctx context.Context, requester, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	product, err = RequireFound(product, "product", id)
	if err != nil {
		return err
	}

	if err := RequireOwner(requester, product.Owner); err != nil {
		s.logger.Warn().
			Str("product_id", id.String()).
			Str("requester_id", requester.String()).
			Msg("delete refused: requester is not the owner")
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return nil
}
