package wire

import (
	"movie-browser/internal/adaptor"
	"movie-browser/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFavourite(
	r chi.Router,
	favouriteHandler *adaptor.FavouriteHandler,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.RequireAuth(log)).Get("/movies/like/{movieId}", favouriteHandler.Toggle)
}
