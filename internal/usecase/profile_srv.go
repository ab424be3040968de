package usecase

import (
	"context"
	"fmt"

	"movie-browser/internal/data/repository"
	"movie-browser/internal/dto/response"
	"movie-browser/internal/gateway"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService interface {
	Profile(ctx context.Context, userID uuid.UUID) (*response.ProfileView, error)
}

type profileService struct {
	repo    *repository.Repository
	gateway gateway.MovieGateway
	log     *zap.Logger
}

func NewProfileService(repo *repository.Repository, gw gateway.MovieGateway, log *zap.Logger) ProfileService {
	return &profileService{
		repo:    repo,
		gateway: gw,
		log:     log.With(zap.String("service", "profile")),
	}
}

// Profile fetches full details for each favourited movie, in the order
// they were liked. One gateway call per favourite; the gateway cache
// keeps repeat views cheap.
func (s *profileService) Profile(ctx context.Context, userID uuid.UUID) (*response.ProfileView, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID.String())
	}

	movieIDs, err := s.repo.Favourite.FindMovieIDsByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load favourites", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("load favourites: %w", err)
	}

	favouriteMovies := make([]*gateway.MovieDetail, 0, len(movieIDs))
	for _, movieID := range movieIDs {
		detail, err := s.gateway.Details(ctx, movieID)
		if err != nil {
			s.log.Error("Failed to fetch favourite details",
				zap.Error(err),
				zap.Int64("movie_id", movieID),
			)
			return nil, fmt.Errorf("fetch details for movie %d: %w", movieID, err)
		}
		favouriteMovies = append(favouriteMovies, detail)
	}

	return &response.ProfileView{
		Username:        user.Username,
		FavouriteMovies: favouriteMovies,
	}, nil
}
