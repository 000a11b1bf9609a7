package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"favkart/internal/auth"
	"favkart/internal/model"
	"favkart/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, requester uuid.UUID, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, requester, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// Update decodes the patch the way the real service does once ownership
// has passed, so expectations can match on the decoded value.
func (m *MockProductService) Update(ctx context.Context, requester, id uuid.UUID, decode service.PatchDecoder) error {
	var patch model.ProductPatch
	if err := decode(&patch); err != nil {
		return err
	}
	args := m.Called(ctx, requester, id, patch)
	return args.Error(0)
}

func (m *MockProductService) Delete(ctx context.Context, requester, id uuid.UUID) error {
	args := m.Called(ctx, requester, id)
	return args.Error(0)
}

// MockFavoriteService is a mock implementation of FavoriteService.
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) List(ctx context.Context) ([]model.Favorite, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Create(ctx context.Context, requester uuid.UUID, input model.FavoriteInput) (*model.Favorite, error) {
	args := m.Called(ctx, requester, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Delete(ctx context.Context, requester, id uuid.UUID) error {
	args := m.Called(ctx, requester, id)
	return args.Error(0)
}

// serve routes a single request through a chi router so path parameters are
// populated. A non-nil user is attached as the authenticated requester.
func serve(method, pattern, target, body string, user *uuid.UUID, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if user != nil {
		req = req.WithContext(auth.WithUserID(req.Context(), *user))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
