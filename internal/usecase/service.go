package usecase

import (
	"movie-browser/internal/data/repository"
	"movie-browser/internal/gateway"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Movie     MovieService
	Comment   CommentService
	Favourite FavouriteService
	Profile   ProfileService
}

func NewService(repo *repository.Repository, gw gateway.MovieGateway, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Movie:     NewMovieService(repo, gw, log),
		Comment:   NewCommentService(repo, log),
		Favourite: NewFavouriteService(repo, log),
		Profile:   NewProfileService(repo, gw, log),
	}
}
