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

const (
	ListTypePopular  = "popular"
	ListTypeTopRated = "toprated"
)

type MovieService interface {
	Home(ctx context.Context, userID *uuid.UUID) (*response.HomeView, error)
	List(ctx context.Context, listType string, page int, userID *uuid.UUID) (*response.MovieListView, error)
	Details(ctx context.Context, movieID int64) (*response.MovieDetailView, error)
	Search(ctx context.Context, query string, page int) (*response.MovieListView, error)
}

type movieService struct {
	repo    *repository.Repository
	gateway gateway.MovieGateway
	log     *zap.Logger
}

func NewMovieService(repo *repository.Repository, gw gateway.MovieGateway, log *zap.Logger) MovieService {
	return &movieService{
		repo:    repo,
		gateway: gw,
		log:     log.With(zap.String("service", "movie")),
	}
}

// Home assembles the index view: first page of popular and top rated,
// with the caller's favourites marked when authenticated.
func (s *movieService) Home(ctx context.Context, userID *uuid.UUID) (*response.HomeView, error) {
	popular, err := s.gateway.Popular(ctx, 1)
	if err != nil {
		s.log.Error("Failed to fetch popular movies", zap.Error(err))
		return nil, fmt.Errorf("fetch popular movies: %w", err)
	}

	topRated, err := s.gateway.TopRated(ctx, 1)
	if err != nil {
		s.log.Error("Failed to fetch top rated movies", zap.Error(err))
		return nil, fmt.Errorf("fetch top rated movies: %w", err)
	}

	favourites, err := s.favouriteSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &response.HomeView{
		Popular:  response.PageToSummaries(popular, favourites),
		TopRated: response.PageToSummaries(topRated, favourites),
	}, nil
}

// List assembles the movies_list view for one listing page. Unknown list
// types fall back to popular.
func (s *movieService) List(ctx context.Context, listType string, page int, userID *uuid.UUID) (*response.MovieListView, error) {
	if page < 1 {
		page = 1
	}

	var (
		moviePage *gateway.MoviePage
		err       error
	)

	switch listType {
	case ListTypeTopRated:
		moviePage, err = s.gateway.TopRated(ctx, page)
	case ListTypePopular:
		moviePage, err = s.gateway.Popular(ctx, page)
	default:
		listType = ListTypePopular
		moviePage, err = s.gateway.Popular(ctx, page)
	}

	if err != nil {
		s.log.Error("Failed to fetch movie listing",
			zap.Error(err),
			zap.String("list_type", listType),
			zap.Int("page", page),
		)
		return nil, fmt.Errorf("fetch %s movies page %d: %w", listType, page, err)
	}

	favourites, err := s.favouriteSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &response.MovieListView{
		ListType:   listType,
		Page:       moviePage.Page,
		TotalPages: moviePage.TotalPages,
		Movies:     response.PageToSummaries(moviePage, favourites),
	}, nil
}

// Details assembles the details view: movie data, featured trailer,
// recommendations, images and every comment on the movie.
func (s *movieService) Details(ctx context.Context, movieID int64) (*response.MovieDetailView, error) {
	detail, err := s.gateway.Details(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to fetch movie details", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("fetch details for movie %d: %w", movieID, err)
	}

	videos, err := s.gateway.Videos(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to fetch movie videos", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("fetch videos for movie %d: %w", movieID, err)
	}

	recommendations, err := s.gateway.Recommendations(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to fetch recommendations", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("fetch recommendations for movie %d: %w", movieID, err)
	}

	images, err := s.gateway.Images(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to fetch movie images", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("fetch images for movie %d: %w", movieID, err)
	}

	comments, err := s.movieComments(ctx, movieID)
	if err != nil {
		return nil, err
	}

	return &response.MovieDetailView{
		Movie:           detail,
		VideoKey:        featuredTrailer(videos),
		Recommendations: response.PageToSummaries(recommendations, nil),
		Images:          images,
		Comments:        comments,
	}, nil
}

// Search assembles a movies_list view from a search query.
func (s *movieService) Search(ctx context.Context, query string, page int) (*response.MovieListView, error) {
	if page < 1 {
		page = 1
	}

	moviePage, err := s.gateway.Search(ctx, query, page)
	if err != nil {
		s.log.Error("Failed to search movies", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("search movies %q: %w", query, err)
	}

	return &response.MovieListView{
		ListType:   "search",
		Page:       moviePage.Page,
		TotalPages: moviePage.TotalPages,
		Movies:     response.PageToSummaries(moviePage, nil),
	}, nil
}

// ==================== HELPER METHODS ====================

// featuredTrailer picks the first official trailer. An empty key means
// the view shows its "no trailer" state instead of an embedded video.
func featuredTrailer(videos []gateway.Video) string {
	for _, video := range videos {
		if video.Type == "Trailer" && video.Official {
			return video.Key
		}
	}
	return ""
}

// favouriteSet returns the movie ids the user has favourited as a set, or
// nil for anonymous callers.
func (s *movieService) favouriteSet(ctx context.Context, userID *uuid.UUID) (map[int64]bool, error) {
	if userID == nil {
		return nil, nil
	}

	movieIDs, err := s.repo.Favourite.FindMovieIDsByUser(ctx, *userID)
	if err != nil {
		s.log.Error("Failed to load favourites", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("load favourites: %w", err)
	}

	favourites := make(map[int64]bool, len(movieIDs))
	for _, id := range movieIDs {
		favourites[id] = true
	}
	return favourites, nil
}

// movieComments loads all comments on a movie with their authors' names.
func (s *movieService) movieComments(ctx context.Context, movieID int64) ([]response.CommentResponse, error) {
	comments, err := s.repo.Comment.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to load comments", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("load comments for movie %d: %w", movieID, err)
	}

	commentResponses := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		commentResponses[i] = response.CommentToResponse(&comment.Comment, comment.Username)
	}

	return commentResponses, nil
}
