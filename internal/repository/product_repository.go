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

var productColumns = []string{
	"p.id", "p.name", "p.description", "p.price", "p.category",
	"p.image_url", "p.owner_id", "p.created_at", "p.updated_at",
}

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves every product, oldest first.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx, psql.Select(productColumns...).
		From("products p").
		OrderBy("p.created_at", "p.id"))
}

// GetByCategory retrieves the products in one category, oldest first.
func (r *productRepository) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return r.list(ctx, psql.Select(productColumns...).
		From("products p").
		Where(sq.Eq{"p.category": category}).
		OrderBy("p.created_at", "p.id"))
}

func (r *productRepository) list(ctx context.Context, builder sq.SelectBuilder) ([]model.Product, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build products query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query, args, err := psql.Select(productColumns...).
		From("products p").
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product query: %w", err)
	}

	var p model.Product
	err = scanProduct(r.pool.QueryRow(ctx, query, args...), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetByIDWithOwner retrieves a product and joins in its owner. A product whose
// owner is unknown to the users table keeps an unexpanded reference.
func (r *productRepository) GetByIDWithOwner(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query, args, err := psql.Select(productColumns...).
		Columns("u.id", "u.email", "u.name").
		From("products p").
		LeftJoin("users u ON u.id = p.owner_id").
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product query: %w", err)
	}

	var (
		p     model.Product
		owner nullableUser
	)
	err = r.pool.QueryRow(ctx, query, args...).Scan(append(productFields(&p), owner.fields()...)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product with owner")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	p.Owner.Doc = owner.user()

	return &p, nil
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query, args, err := psql.Insert("products").
		Columns("id", "name", "description", "price", "category", "image_url", "owner_id").
		Values(product.ID, product.Name, product.Description, product.Price,
			product.Category, product.ImageURL, product.Owner.ID).
		Suffix("RETURNING price, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build product insert: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&product.Price, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", translateError(err))
	}

	r.logger.Debug().
		Str("product_id", product.ID.String()).
		Str("owner_id", product.Owner.ID.String()).
		Msg("product created successfully")

	return nil
}

// Update applies the non-nil fields of patch to the product.
func (r *productRepository) Update(ctx context.Context, id uuid.UUID, patch model.ProductPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	query, args, err := psql.Update("products").
		SetMap(patch.Columns()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build product update: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", translateError(err))
	}

	if tag.RowsAffected() == 0 {
		return model.NewNotFoundError("product", id.String())
	}

	return nil
}

// Delete removes a product. Favorites pointing at it go with it.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.NewNotFoundError("product", id.String())
	}

	return nil
}

// productFields returns scan destinations in productColumns order.
func productFields(p *model.Product) []any {
	return []any{
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.ImageURL, &p.Owner.ID, &p.CreatedAt, &p.UpdatedAt,
	}
}

func scanProduct(row rowScanner, p *model.Product) error {
	return row.Scan(productFields(p)...)
}

// nullableUser receives the columns of a LEFT JOINed users row.
type nullableUser struct {
	id    *uuid.UUID
	email *string
	name  *string
}

func (u *nullableUser) fields() []any {
	return []any{&u.id, &u.email, &u.name}
}

// user returns nil when the join found no row.
func (u *nullableUser) user() *model.User {
	if u.id == nil {
		return nil
	}

	user := &model.User{ID: *u.id}
	if u.email != nil {
		user.Email = *u.email
	}
	if u.name != nil {
		user.Name = *u.name
	}
	return user
}
