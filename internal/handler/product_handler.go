package handler

import (
	"net/http"

	"favkart/internal/model"
	"favkart/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// createProductRequest is the body of POST /products. The owner is never
// read from it.
type createProductRequest struct {
	Product model.ProductInput `json:"product"`
}

// updateProductRequest is the body of PATCH /products/{id}. Fields missing
// from model.ProductPatch, such as id, owner, createdAt and updatedAt, are
// dropped while decoding.
type updateProductRequest struct {
	Product model.ProductPatch `json:"product"`
}

// List handles GET /products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, render.M{"products": products})
}

// ListByCategory handles GET /products/category/{category} requests.
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, render.M{"products": products})
}

// Get handles GET /products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "product")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, render.M{"product": product})
}

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := requester(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var req createProductRequest
	if err := decodeEnvelope(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), userID, req.Product)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusCreated, render.M{"product": product})
}

// Update handles PATCH /products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := requester(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	id, err := pathID(r, "product")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	// The body is decoded only after ownership has been established.
	decode := func(patch *model.ProductPatch) error {
		var req updateProductRequest
		if err := decodeEnvelope(w, r, &req); err != nil {
			return err
		}
		*patch = req.Product
		return nil
	}

	if err := h.service.Update(r.Context(), userID, id, decode); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	render.NoContent(w, r)
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := requester(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	id, err := pathID(r, "product")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	render.NoContent(w, r)
}
