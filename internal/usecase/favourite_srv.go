package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-browser/internal/data/entity"
	"movie-browser/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FavouriteService interface {
	// Toggle flips the favourite state of (user, movie) and reports the
	// resulting state: true when the movie is now favourited.
	Toggle(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error)
}

type favouriteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFavouriteService(repo *repository.Repository, log *zap.Logger) FavouriteService {
	return &favouriteService{
		repo: repo,
		log:  log.With(zap.String("service", "favourite")),
	}
}

func (s *favouriteService) Toggle(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error) {
	existing, err := s.repo.Favourite.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		s.log.Error("Failed to check favourite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return false, fmt.Errorf("check favourite: %w", err)
	}

	if existing != nil {
		if err := s.repo.Favourite.Delete(ctx, existing.ID); err != nil {
			s.log.Error("Failed to remove favourite",
				zap.Error(err),
				zap.String("favourite_id", existing.ID.String()),
			)
			return false, fmt.Errorf("remove favourite: %w", err)
		}

		s.log.Info("Favourite removed",
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return false, nil
	}

	fav := &entity.FavouriteMovie{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		MovieID: movieID,
		UserID:  userID,
	}

	if err := s.repo.Favourite.Create(ctx, fav); err != nil {
		// A concurrent request won the insert; the movie is favourited
		// either way, so the toggle succeeded.
		if errors.Is(err, repository.ErrDuplicateFavourite) {
			return true, nil
		}
		s.log.Error("Failed to add favourite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return false, fmt.Errorf("add favourite: %w", err)
	}

	s.log.Info("Favourite added",
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", movieID),
	)
	return true, nil
}
