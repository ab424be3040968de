package adaptor

import (
	"net/http"

	"movie-browser/internal/dto/request"
	"movie-browser/internal/dto/response"
	"movie-browser/internal/usecase"
	"movie-browser/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieHandler struct {
	movies   usecase.MovieService
	comments usecase.CommentService
	log      *zap.Logger
}

func NewMovieHandler(movies usecase.MovieService, comments usecase.CommentService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		movies:   movies,
		comments: comments,
		log:      log.With(zap.String("handler", "movie")),
	}
}

// Home handles GET /
func (h *MovieHandler) Home(w http.ResponseWriter, r *http.Request) {
	view, err := h.movies.Home(r.Context(), currentUserID(r))
	if err != nil {
		h.log.Error("Failed to build home view", zap.Error(err))
		utils.ResponseBadGateway(w, "Movie listings are unavailable right now")
		return
	}

	utils.RenderView(w, "index", view)
}

// List handles GET /movies/{type}
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	listType := chi.URLParam(r, "type")
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	view, err := h.movies.List(r.Context(), listType, page, currentUserID(r))
	if err != nil {
		h.log.Error("Failed to build listing view",
			zap.Error(err),
			zap.String("list_type", listType),
			zap.Int("page", page),
		)
		utils.ResponseBadGateway(w, "Movie listings are unavailable right now")
		return
	}

	utils.RenderView(w, "movies_list", view)
}

// Details handles GET and POST /movies/{movieId}/details. A POST first
// stores the submitted comment for the current user, then renders the
// same view a GET would.
func (h *MovieHandler) Details(w http.ResponseWriter, r *http.Request) {
	movieID, ok := utils.ParseMovieID(chi.URLParam(r, "movieId"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	if r.Method == http.MethodPost {
		// Commenting needs an account; anonymous posters go to login
		// instead of faulting on a missing user.
		userID, authed := utils.GetUserIDFromContext(r.Context())
		if !authed {
			utils.Redirect(w, r, "/login")
			return
		}

		req := request.CreateCommentRequest{Content: r.PostFormValue("content")}
		if err := h.comments.Create(r.Context(), userID, movieID, &req); err != nil {
			h.log.Warn("Comment rejected", zap.Error(err), zap.Int64("movie_id", movieID))
			utils.RenderViewError(w, "details", err.Error())
			return
		}
	}

	view, err := h.movies.Details(r.Context(), movieID)
	if err != nil {
		h.log.Error("Failed to build details view", zap.Error(err), zap.Int64("movie_id", movieID))
		utils.ResponseBadGateway(w, "Movie details are unavailable right now")
		return
	}

	utils.RenderView(w, "details", view)
}

// Search handles GET /movies/search
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	if query == "" {
		utils.RenderView(w, "movies_list", &response.MovieListView{ListType: "search"})
		return
	}

	view, err := h.movies.Search(r.Context(), query, page)
	if err != nil {
		h.log.Error("Failed to search movies", zap.Error(err), zap.String("query", query))
		utils.ResponseBadGateway(w, "Movie search is unavailable right now")
		return
	}

	utils.RenderView(w, "movies_list", view)
}

// currentUserID returns the authenticated user's id or nil for anonymous
// requests.
func currentUserID(r *http.Request) *uuid.UUID {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return &userID
	}
	return nil
}
