package wire

import (
	"movie-browser/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/", movieHandler.Home)
	r.Get("/movies/search", movieHandler.Search)
	r.Get("/movies/{type}", movieHandler.List)
	r.Get("/movies/{movieId}/details", movieHandler.Details)

	// Posting a comment re-renders the detail page, so it lives here.
	r.Post("/movies/{movieId}/details", movieHandler.Details)
}
