package wire

import (
	"movie-browser/internal/adaptor"
	"movie-browser/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.RequireAuth(log)).Get("/profile", profileHandler.Profile)
}
