package adaptor

import (
	"movie-browser/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Movie     *MovieHandler
	Comment   *CommentHandler
	Favourite *FavouriteHandler
	Profile   *ProfileHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Movie:     NewMovieHandler(service.Movie, service.Comment, log),
		Comment:   NewCommentHandler(service.Comment, log),
		Favourite: NewFavouriteHandler(service.Favourite, log),
		Profile:   NewProfileHandler(service.Profile, log),
	}
}
