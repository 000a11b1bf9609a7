package service

import (
	"favkart/internal/model"

	"github.com/google/uuid"
)

// RequireFound passes v through, or returns a NotFound error naming the
// resource and id when the lookup came back empty.
func RequireFound[T any](v *T, resource string, id uuid.UUID) (*T, error) {
	if v == nil {
		return nil, model.NewNotFoundError(resource, id.String())
	}
	return v, nil
}

// RequireOwner returns model.ErrForbidden unless requester is the owner.
func RequireOwner(requester uuid.UUID, owner model.Ref[model.User]) error {
	if owner.ID != requester {
		return model.ErrForbidden
	}
	return nil
}
