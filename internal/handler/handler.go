// Package handler translates HTTP requests into service calls and service
// results into JSON responses.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"favkart/internal/auth"
	"favkart/internal/middleware"
	"favkart/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// statusByCode maps domain error codes to HTTP statuses.
var statusByCode = map[string]int{
	model.ErrCodeInvalidJSON:  http.StatusBadRequest,
	model.ErrCodeValidation:   http.StatusUnprocessableEntity,
	model.ErrCodeNotFound:     http.StatusNotFound,
	model.ErrCodeUnauthorised: http.StatusUnauthorized,
	model.ErrCodeForbidden:    http.StatusForbidden,

	model.ErrCodeMethodNotAllowed: http.StatusMethodNotAllowed,
	model.ErrCodePayloadTooLarge:  http.StatusRequestEntityTooLarge,
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, model.NewDomainError(model.ErrCodeNotFound, "route not found"), zerolog.Nop())
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, model.NewDomainError(model.ErrCodeMethodNotAllowed,
		fmt.Sprintf("method %s not allowed", r.Method)), zerolog.Nop())
}

// Health handles GET /health requests.
func Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, render.M{"status": "healthy"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	render.Status(r, status)
	render.JSON(w, r, data)
}

// writeError is the single place failures become responses. Domain errors
// keep their code and message; anything else is logged and reported as 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	log := middleware.LoggerFromContext(r.Context(), logger)

	resp := model.ErrorResponse{CorrelationID: middleware.TraceIDFromContext(r.Context())}
	status := http.StatusInternalServerError

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		if s, ok := statusByCode[domainErr.Code]; ok {
			status = s
			resp.Error = domainErr.Code
			resp.Message = domainErr.Message
		}
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		resp.Error = model.ErrCodeInternalError
		resp.Message = "internal server error"
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, r, status, resp)
}

// decodeEnvelope decodes a JSON request body of at most
// middleware.MaxBodyBytes into v.
func decodeEnvelope(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes)
	if err := render.DecodeJSON(r.Body, v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.ErrPayloadTooLarge
		}
		return model.ErrInvalidJSON
	}
	return nil
}

// requester returns the authenticated user id set by the auth middleware.
func requester(r *http.Request) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, model.NewUnauthorisedError(auth.ErrMissingToken.Error())
	}
	return userID, nil
}

// pathID parses the {id} path parameter. A value that is not a UUID cannot
// name any stored record, so it is reported as not found.
func pathID(r *http.Request, resource string) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewNotFoundError(resource, raw)
	}
	return id, nil
}
