package wire

import (
	"movie-browser/internal/adaptor"
	"movie-browser/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireComment(
	r chi.Router,
	commentHandler *adaptor.CommentHandler,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.RequireAuth(log)).Get("/comments/{commentId}/delete", commentHandler.Delete)
}
