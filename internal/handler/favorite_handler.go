package handler

import (
	"net/http"

	"favkart/internal/model"
	"favkart/internal/service"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"
)

// FavoriteHandler handles favorite-related HTTP requests.
type FavoriteHandler struct {
	service service.FavoriteService
	logger  zerolog.Logger
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(service service.FavoriteService, logger zerolog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		logger:  logger.With().Str("handler", "favorite").Logger(),
	}
}

type createFavoriteRequest struct {
	Favorite model.FavoriteInput `json:"favorite"`
}

// List handles GET /favorites requests.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, render.M{"favorites": favorites})
}

// Create handles POST /favorites requests.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := requester(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var req createFavoriteRequest
	if err := decodeEnvelope(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	favorite, err := h.service.Create(r.Context(), userID, req.Favorite)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusCreated, render.M{"favorite": favorite})
}

// Delete handles DELETE /favorites/{id} requests.
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := requester(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	id, err := pathID(r, "favorite")
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
