package router

import (
	"net/http"

	"favkart/internal/auth"
	"favkart/internal/handler"
	"favkart/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	favoriteHandler *handler.FavoriteHandler,
	verifier auth.Verifier,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// TraceID -> Logging -> Recovery -> CORS, so a recovered panic is still
	// logged and answered with the request's trace id.
	r.Use(middleware.TraceID(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS)

	// Set before the sub-routers below are mounted so they inherit them.
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Get("/category/{category}", productHandler.ListByCategory)
		r.Get("/{id}", productHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(verifier, logger))

			r.Post("/", productHandler.Create)
			r.With(middleware.StripBlankFields("product")).Patch("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})
	})

	r.Route("/favorites", func(r chi.Router) {
		r.Get("/", favoriteHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(verifier, logger))

			r.Post("/", favoriteHandler.Create)
			r.Delete("/{id}", favoriteHandler.Delete)
		})
	})

	return r
}
