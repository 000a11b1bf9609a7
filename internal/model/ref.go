package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Ref points at another record by id. It is written as the bare id unless
// Doc has been populated by the repository, in which case the whole
// referenced record is written in its place.
type Ref[T any] struct {
	ID  uuid.UUID
	Doc *T
}

// NewRef creates an unexpanded reference.
func NewRef[T any](id uuid.UUID) Ref[T] {
	return Ref[T]{ID: id}
}

// Expanded reports whether the referenced record is attached.
func (r Ref[T]) Expanded() bool {
	return r.Doc != nil
}

// MarshalJSON implements json.Marshaler.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Doc != nil {
		return json.Marshal(r.Doc)
	}
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts either an id string or an object carrying an "id" field.
func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err == nil {
		*r = Ref[T]{ID: id}
		return nil
	}

	var obj struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("reference must be an id or an object with an id: %w", err)
	}

	*r = Ref[T]{ID: obj.ID}
	return nil
}
