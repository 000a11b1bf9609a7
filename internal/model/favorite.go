package model

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a user's bookmark of a product.
type Favorite struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	Product   Ref[Product] `json:"product" db:"product_id"`
	Owner     Ref[User]    `json:"owner" db:"owner_id"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
}

// FavoriteInput is the client-supplied payload for creating a favorite.
// Product may be sent as a bare id or as an object carrying an "id".
type FavoriteInput struct {
	Product Ref[Product] `json:"product" validate:"required"`
}
