package adaptor

import (
	"net/http"

	"movie-browser/internal/usecase"
	"movie-browser/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavouriteHandler struct {
	service usecase.FavouriteService
	log     *zap.Logger
}

func NewFavouriteHandler(service usecase.FavouriteService, log *zap.Logger) *FavouriteHandler {
	return &FavouriteHandler{
		service: service,
		log:     log.With(zap.String("handler", "favourite")),
	}
}

// Toggle handles GET /movies/like/{movieId} (protected)
func (h *FavouriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, "/login")
		return
	}

	movieID, valid := utils.ParseMovieID(chi.URLParam(r, "movieId"))
	if !valid {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	if _, err := h.service.Toggle(r.Context(), userID, movieID); err != nil {
		h.log.Error("Failed to toggle favourite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.RedirectBack(w, r, "/")
}
