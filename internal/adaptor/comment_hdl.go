package adaptor

import (
	"net/http"
	"strings"

	"movie-browser/internal/usecase"
	"movie-browser/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// Delete handles GET /comments/{commentId}/delete (protected)
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, "/login")
		return
	}

	commentID := chi.URLParam(r, "commentId")

	if err := h.service.Delete(r.Context(), commentID, userID); err != nil {
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "not found"):
			utils.ResponsePlainError(w, http.StatusBadRequest, "Comment not found. Try again!")
		case strings.Contains(errMsg, "not allowed"):
			utils.ResponsePlainError(w, http.StatusForbidden, "You can only delete your own comments")
		default:
			h.log.Error("Failed to delete comment", zap.Error(err), zap.String("comment_id", commentID))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.RedirectBack(w, r, "/")
}
