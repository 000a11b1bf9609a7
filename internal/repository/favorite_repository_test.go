package repository

import (
	"context"
	"errors"
	"testing"

	"favkart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_CreateGetDelete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	products := NewProductRepository(pool, zerolog.Nop())
	repo := NewFavoriteRepository(pool, zerolog.Nop())

	owner := seedUser(t, pool, "grace@example.com", "Grace")
	product := newProduct("Hammer", "tools", uuid.New())
	require.NoError(t, products.Create(ctx, product))

	favorite := &model.Favorite{
		ID:      uuid.New(),
		Product: model.NewRef[model.Product](product.ID),
		Owner:   model.NewRef[model.User](owner),
	}
	require.NoError(t, repo.Create(ctx, favorite))
	assert.False(t, favorite.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, favorite.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, product.ID, got.Product.ID)
	assert.Equal(t, owner, got.Owner.ID)
	assert.False(t, got.Product.Expanded())

	require.NoError(t, repo.Delete(ctx, favorite.ID))

	got, err = repo.GetByID(ctx, favorite.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = repo.Delete(ctx, favorite.ID)
	var domainErr *model.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, model.ErrCodeNotFound, domainErr.Code)
}

func TestFavoriteRepository_Create_UnknownProduct(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewFavoriteRepository(pool, zerolog.Nop())

	err := repo.Create(context.Background(), &model.Favorite{
		ID:      uuid.New(),
		Product: model.NewRef[model.Product](uuid.New()),
		Owner:   model.NewRef[model.User](uuid.New()),
	})

	var domainErr *model.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, model.ErrCodeValidation, domainErr.Code)
}

func TestFavoriteRepository_GetAll_ExpandsReferences(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	products := NewProductRepository(pool, zerolog.Nop())
	repo := NewFavoriteRepository(pool, zerolog.Nop())

	owner := seedUser(t, pool, "grace@example.com", "Grace")
	product := newProduct("Hammer", "tools", uuid.New())
	require.NoError(t, products.Create(ctx, product))

	anonymous := uuid.New()
	for _, who := range []uuid.UUID{owner, anonymous} {
		require.NoError(t, repo.Create(ctx, &model.Favorite{
			ID:      uuid.New(),
			Product: model.NewRef[model.Product](product.ID),
			Owner:   model.NewRef[model.User](who),
		}))
	}

	favorites, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 2)

	for _, f := range favorites {
		require.True(t, f.Product.Expanded())
		assert.Equal(t, "Hammer", f.Product.Doc.Name)
		assert.Equal(t, product.ID, f.Product.ID)

		switch f.Owner.ID {
		case owner:
			require.True(t, f.Owner.Expanded())
			assert.Equal(t, "grace@example.com", f.Owner.Doc.Email)
		case anonymous:
			assert.False(t, f.Owner.Expanded())
		default:
			t.Fatalf("unexpected owner %s", f.Owner.ID)
		}
	}

	t.Run("Deleting the product removes its favorites", func(t *testing.T) {
		require.NoError(t, products.Delete(ctx, product.ID))

		favorites, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, favorites)
	})
}
