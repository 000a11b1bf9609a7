package model

import "github.com/google/uuid"

// User is the public view of an account owned by the identity service.
// This module only reads users to expand owner references.
type User struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Email string    `json:"email" db:"email"`
	Name  string    `json:"name,omitempty" db:"name"`
}
