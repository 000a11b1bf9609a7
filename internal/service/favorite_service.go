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

// favoriteService implements FavoriteService.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	validate     *validator.Validate
	logger       zerolog.Logger
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, logger zerolog.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		validate:     newValidator(),
		logger:       logger.With().Str("service", "favorite").Logger(),
	}
}

// List retrieves all favorites with product and owner expanded.
func (s *favoriteService) List(ctx context.Context) ([]model.Favorite, error) {
	favorites, err := s.favoriteRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	s.logger.Debug().Int("count", len(favorites)).Msg("retrieved favorites")

	return favorites, nil
}

// Create stores a favorite owned by requester.
func (s *favoriteService) Create(ctx context.Context, requester uuid.UUID, input model.FavoriteInput) (*model.Favorite, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	productID := input.Product.ID
	if productID == uuid.Nil {
		return nil, model.NewValidationError("product is required")
	}

	favorite := &model.Favorite{
		ID:      uuid.New(),
		Product: model.NewRef[model.Product](productID),
		Owner:   model.NewRef[model.User](requester),
	}

	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	s.logger.Info().
		Str("favorite_id", favorite.ID.String()).
		Str("product_id", productID.String()).
		Str("owner_id", requester.String()).
		Msg("favorite created")

	return favorite, nil
}

// Delete removes a favorite owned by requester.
func (s *favoriteService) Delete(ctx context.Context, requester, id uuid.UUID) error {
	favorite, err := s.favoriteRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get favorite: %w", err)
	}

	favorite, err = RequireFound(favorite, "favorite", id)
	if err != nil {
		return err
	}

	if err := RequireOwner(requester, favorite.Owner); err != nil {
		s.logger.Warn().
			Str("favorite_id", id.String()).
			Str("requester_id", requester.String()).
			Msg("delete refused: requester is not the owner")
		return err
	}

	if err := s.favoriteRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}
