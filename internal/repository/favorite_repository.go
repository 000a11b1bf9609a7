package repository

import (
	"context"
	"errors"
	"fmt"

	"favkart/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// favoriteRepository implements the FavoriteRepository interface using PostgreSQL.
type favoriteRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFavoriteRepository creates a new PostgreSQL-backed favorite repository.
func NewFavoriteRepository(pool *pgxpool.Pool, logger zerolog.Logger) FavoriteRepository {
	return &favoriteRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "favorite").Logger(),
	}
}

// GetAll retrieves every favorite with the product and the owner joined in.
func (r *favoriteRepository) GetAll(ctx context.Context) ([]model.Favorite, error) {
	query, args, err := psql.Select("f.id", "f.owner_id", "f.created_at").
		Columns(productColumns...).
		Columns("u.id", "u.email", "u.name").
		From("favorites f").
		Join("products p ON p.id = f.product_id").
		LeftJoin("users u ON u.id = f.owner_id").
		OrderBy("f.created_at", "f.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build favorites query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query favorites")
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]model.Favorite, 0)
	for rows.Next() {
		var (
			f       model.Favorite
			product model.Product
			owner   nullableUser
		)

		dest := []any{&f.ID, &f.Owner.ID, &f.CreatedAt}
		dest = append(dest, productFields(&product)...)
		dest = append(dest, owner.fields()...)

		if err := rows.Scan(dest...); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan favorite row")
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}

		f.Product = model.Ref[model.Product]{ID: product.ID, Doc: &product}
		f.Owner.Doc = owner.user()
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating favorite rows")
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}

	return favorites, nil
}

// GetByID retrieves a single favorite by its ID.
func (r *favoriteRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Favorite, error) {
	query, args, err := psql.Select("id", "product_id", "owner_id", "created_at").
		From("favorites").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build favorite query: %w", err)
	}

	var f model.Favorite
	err = r.pool.QueryRow(ctx, query, args...).Scan(&f.ID, &f.Product.ID, &f.Owner.ID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("favorite_id", id.String()).Msg("favorite not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("favorite_id", id.String()).Msg("failed to query favorite")
		return nil, fmt.Errorf("failed to query favorite: %w", err)
	}

	return &f, nil
}

// Create inserts a new favorite. A product reference that does not exist is
// rejected by the foreign key and reported as a validation error.
func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	query, args, err := psql.Insert("favorites").
		Columns("id", "product_id", "owner_id").
		Values(favorite.ID, favorite.Product.ID, favorite.Owner.ID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build favorite insert: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&favorite.CreatedAt); err != nil {
		r.logger.Error().
			Err(err).
			Str("favorite_id", favorite.ID.String()).
			Str("product_id", favorite.Product.ID.String()).
			Msg("failed to create favorite")
		return fmt.Errorf("failed to create favorite: %w", translateError(err))
	}

	r.logger.Debug().
		Str("favorite_id", favorite.ID.String()).
		Str("owner_id", favorite.Owner.ID.String()).
		Msg("favorite created successfully")

	return nil
}

// Delete removes a favorite.
func (r *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM favorites WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("favorite_id", id.String()).Msg("failed to delete favorite")
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.NewNotFoundError("favorite", id.String())
	}

	return nil
}
