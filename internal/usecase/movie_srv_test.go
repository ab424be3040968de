package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-browser/internal/data/entity"
	"movie-browser/internal/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMovieService(gw *mockGateway, comment *mockCommentRepo, fav *mockFavouriteRepo, user *mockUserRepo) MovieService {
	return NewMovieService(testRepository(user, nil, comment, fav), gw, testLogger())
}

func listingPage(ids ...int64) *gateway.MoviePage {
	page := &gateway.MoviePage{Page: 1, TotalPages: 1}
	for _, id := range ids {
		page.Results = append(page.Results, gateway.Movie{ID: id, Title: "movie"})
	}
	return page
}

func TestHomeMarksFavourites(t *testing.T) {
	userID := uuid.New()
	gw := &mockGateway{
		PopularFunc: func(ctx context.Context, page int) (*gateway.MoviePage, error) {
			return listingPage(1, 2), nil
		},
		TopRatedFunc: func(ctx context.Context, page int) (*gateway.MoviePage, error) {
			return listingPage(2, 3), nil
		},
	}
	fav := &mockFavouriteRepo{
		FindMovieIDsByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]int64, error) {
			return []int64{2}, nil
		},
	}

	svc := newMovieService(gw, nil, fav, nil)
	view, err := svc.Home(context.Background(), &userID)

	require.NoError(t, err)
	require.Len(t, view.Popular, 2)
	require.Len(t, view.TopRated, 2)
	assert.False(t, view.Popular[0].Favourited)
	assert.True(t, view.Popular[1].Favourited)
	assert.True(t, view.TopRated[0].Favourited)
	assert.False(t, view.TopRated[1].Favourited)
}

func TestHomeAnonymousSkipsFavourites(t *testing.T) {
	favouritesQueried := false
	gw := &mockGateway{}
	fav := &mockFavouriteRepo{
		FindMovieIDsByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]int64, error) {
			favouritesQueried = true
			return nil, nil
		},
	}

	svc := newMovieService(gw, nil, fav, nil)
	_, err := svc.Home(context.Background(), nil)

	require.NoError(t, err)
	assert.False(t, favouritesQueried)
}

func TestList(t *testing.T) {
	tests := []struct {
		name         string
		listType     string
		wantListType string
		wantPopular  bool
	}{
		{name: "popular", listType: "popular", wantListType: "popular", wantPopular: true},
		{name: "toprated", listType: "toprated", wantListType: "toprated", wantPopular: false},
		{name: "unknown falls back to popular", listType: "bogus", wantListType: "popular", wantPopular: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			popularCalled := false
			topRatedCalled := false
			gw := &mockGateway{
				PopularFunc: func(ctx context.Context, page int) (*gateway.MoviePage, error) {
					popularCalled = true
					return listingPage(1), nil
				},
				TopRatedFunc: func(ctx context.Context, page int) (*gateway.MoviePage, error) {
					topRatedCalled = true
					return listingPage(1), nil
				},
			}

			svc := newMovieService(gw, nil, &mockFavouriteRepo{}, nil)
			view, err := svc.List(context.Background(), tt.listType, 1, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.wantListType, view.ListType)
			assert.Equal(t, tt.wantPopular, popularCalled)
			assert.Equal(t, !tt.wantPopular, topRatedCalled)
		})
	}
}

func TestListGatewayFailure(t *testing.T) {
	gw := &mockGateway{
		PopularFunc: func(ctx context.Context, page int) (*gateway.MoviePage, error) {
			return nil, errors.New("upstream down")
		},
	}

	svc := newMovieService(gw, nil, &mockFavouriteRepo{}, nil)
	view, err := svc.List(context.Background(), "popular", 1, nil)

	require.Error(t, err)
	assert.Nil(t, view)
}

func TestDetailsTrailerSelection(t *testing.T) {
	tests := []struct {
		name    string
		videos  []gateway.Video
		wantKey string
	}{
		{
			name: "first official trailer wins",
			videos: []gateway.Video{
				{Key: "teaser1", Type: "Teaser", Official: true},
				{Key: "fanmade", Type: "Trailer", Official: false},
				{Key: "official1", Type: "Trailer", Official: true},
				{Key: "official2", Type: "Trailer", Official: true},
			},
			wantKey: "official1",
		},
		{
			name:    "no videos at all",
			videos:  nil,
			wantKey: "",
		},
		{
			name: "no official trailer",
			videos: []gateway.Video{
				{Key: "fanmade", Type: "Trailer", Official: false},
				{Key: "clip", Type: "Clip", Official: true},
			},
			wantKey: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &mockGateway{
				VideosFunc: func(ctx context.Context, movieID int64) ([]gateway.Video, error) {
					return tt.videos, nil
				},
			}

			svc := newMovieService(gw, &mockCommentRepo{}, nil, &mockUserRepo{})
			view, err := svc.Details(context.Background(), 42)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, view.VideoKey)
		})
	}
}

func TestDetailsIncludesComments(t *testing.T) {
	comments := []*entity.CommentWithAuthor{
		{
			Comment: entity.Comment{
				BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
				Content:    "great movie",
				MovieID:    42,
				UserID:     uuid.New(),
			},
			Username: "alice",
		},
	}

	gw := &mockGateway{}
	commentRepo := &mockCommentRepo{
		FindByMovieIDFunc: func(ctx context.Context, movieID int64) ([]*entity.CommentWithAuthor, error) {
			return comments, nil
		},
	}

	svc := newMovieService(gw, commentRepo, nil, nil)
	view, err := svc.Details(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "great movie", view.Comments[0].Content)
	assert.Equal(t, "alice", view.Comments[0].Username)
}

func TestSearch(t *testing.T) {
	var gotQuery string
	gw := &mockGateway{
		SearchFunc: func(ctx context.Context, query string, page int) (*gateway.MoviePage, error) {
			gotQuery = query
			return listingPage(7), nil
		},
	}

	svc := newMovieService(gw, nil, nil, nil)
	view, err := svc.Search(context.Background(), "alien", 1)

	require.NoError(t, err)
	assert.Equal(t, "alien", gotQuery)
	assert.Equal(t, "search", view.ListType)
	require.Len(t, view.Movies, 1)
	assert.Equal(t, int64(7), view.Movies[0].ID)
}
