package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_MarshalJSON(t *testing.T) {
	id := uuid.MustParse("6f1c7d4e-6a55-4b43-9a0e-2f0f5a3e0c11")

	tests := []struct {
		name     string
		ref      Ref[User]
		expected string
	}{
		{
			name:     "Bare id",
			ref:      NewRef[User](id),
			expected: `"6f1c7d4e-6a55-4b43-9a0e-2f0f5a3e0c11"`,
		},
		{
			name:     "Expanded document",
			ref:      Ref[User]{ID: id, Doc: &User{ID: id, Email: "ada@example.com"}},
			expected: `{"id":"6f1c7d4e-6a55-4b43-9a0e-2f0f5a3e0c11","email":"ada@example.com"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ref)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestRef_UnmarshalJSON(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "Id string", input: `"` + id.String() + `"`},
		{name: "Object with id", input: `{"id":"` + id.String() + `","email":"ada@example.com"}`},
		{name: "Number", input: `42`, expectError: true},
		{name: "Malformed id", input: `"not-an-id"`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref Ref[User]
			err := json.Unmarshal([]byte(tt.input), &ref)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, ref.ID)
			assert.False(t, ref.Expanded())
		})
	}
}

func TestProduct_OwnerSerialisation(t *testing.T) {
	owner := uuid.New()
	product := Product{ID: uuid.New(), Name: "Hammer", Category: "tools", Owner: NewRef[User](owner)}

	data, err := json.Marshal(product)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, owner.String(), decoded["owner"])

	product.Owner.Doc = &User{ID: owner, Email: "ada@example.com"}
	data, err = json.Marshal(product)
	require.NoError(t, err)

	decoded = nil
	require.NoError(t, json.Unmarshal(data, &decoded))
	expanded, ok := decoded["owner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", expanded["email"])
}

func TestProductPatch_Columns(t *testing.T) {
	name := "Mallet"
	price := 12.5

	patch := ProductPatch{Name: &name, Price: &price}

	assert.Equal(t, map[string]any{"name": "Mallet", "price": 12.5}, patch.Columns())
	assert.False(t, patch.IsEmpty())
	assert.True(t, ProductPatch{}.IsEmpty())
}
