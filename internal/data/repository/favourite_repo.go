package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-browser/internal/data/entity"
	"movie-browser/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateFavourite means another request favourited the same movie
// first. The unique constraint on (user_id, movie_id) turns the toggle
// race into this error instead of a duplicate row.
var ErrDuplicateFavourite = errors.New("favourite already exists")

type FavouriteRepository interface {
	Create(ctx context.Context, fav *entity.FavouriteMovie) error
	FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int64) (*entity.FavouriteMovie, error)
	FindMovieIDsByUser(ctx context.Context, userID uuid.UUID) ([]int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type favouriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavouriteRepository(db database.PgxIface, log *zap.Logger) FavouriteRepository {
	return &favouriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favourite")),
	}
}

func (r *favouriteRepository) Create(ctx context.Context, fav *entity.FavouriteMovie) error {
	query := `
		INSERT INTO favourite_movies (id, movie_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		fav.ID,
		fav.MovieID,
		fav.UserID,
		fav.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateFavourite
		}
		r.log.Error("Failed to create favourite",
			zap.Error(err),
			zap.Int64("movie_id", fav.MovieID),
			zap.String("user_id", fav.UserID.String()),
		)
		return fmt.Errorf("create favourite: %w", err)
	}

	return nil
}

func (r *favouriteRepository) FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int64) (*entity.FavouriteMovie, error) {
	query := `
		SELECT id, movie_id, user_id, created_at
		FROM favourite_movies
		WHERE user_id = $1 AND movie_id = $2
	`

	var fav entity.FavouriteMovie
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&fav.ID,
		&fav.MovieID,
		&fav.UserID,
		&fav.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find favourite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find favourite: %w", err)
	}

	return &fav, nil
}

// FindMovieIDsByUser returns the movie ids a user has favourited, oldest
// first. The listing views use this to mark liked movies and the profile
// view to fetch details per id.
func (r *favouriteRepository) FindMovieIDsByUser(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	query := `
		SELECT movie_id
		FROM favourite_movies
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get user favourites",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find favourites for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var movieIDs []int64
	for rows.Next() {
		var movieID int64
		if err := rows.Scan(&movieID); err != nil {
			r.log.Error("Failed to scan favourite row", zap.Error(err))
			return nil, fmt.Errorf("scan favourite row: %w", err)
		}
		movieIDs = append(movieIDs, movieID)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate favourite rows: %w", err)
	}

	return movieIDs, nil
}

func (r *favouriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM favourite_movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete favourite",
			zap.Error(err),
			zap.String("favourite_id", id.String()),
		)
		return fmt.Errorf("delete favourite %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("favourite %s not found", id.String())
	}

	return nil
}
