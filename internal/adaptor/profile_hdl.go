package adaptor

import (
	"net/http"

	"movie-browser/internal/usecase"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// Profile handles GET /profile (protected)
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, "/login")
		return
	}

	view, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		utils.ResponseBadGateway(w, "Failed to load favourite movies")
		return
	}

	utils.RenderView(w, "profile", view)
}
