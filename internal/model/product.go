package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an item listed in the catalogue by one of its users.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	ImageURL    string    `json:"imageUrl,omitempty" db:"image_url"`
	Owner       Ref[User] `json:"owner" db:"owner_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductInput is the client-supplied payload for creating a product.
// It has no owner field: the owner always comes from the bearer token.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=4000"`
	Price       float64 `json:"price" validate:"gte=0,lt=10000000000"`
	Category    string  `json:"category" validate:"required,max=100"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
}

// ProductPatch is a partial update. Nil fields are left unchanged.
type ProductPatch struct {
	Name        *string  `json:"name" validate:"omitnil,min=1,max=255"`
	Description *string  `json:"description" validate:"omitnil,max=4000"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0,lt=10000000000"`
	Category    *string  `json:"category" validate:"omitnil,min=1,max=100"`
	ImageURL    *string  `json:"imageUrl" validate:"omitnil,url"`
}

// Columns returns the column/value pairs set by the patch.
func (p ProductPatch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.ImageURL != nil {
		cols["image_url"] = *p.ImageURL
	}
	return cols
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}
