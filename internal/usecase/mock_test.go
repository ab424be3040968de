package usecase

import (
	"context"

	"movie-browser/internal/data/entity"
	"movie-browser/internal/data/repository"
	"movie-browser/internal/gateway"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hand-rolled mocks with overridable function fields. Tests set only the
// calls they expect; anything else returns zero values.

type mockUserRepo struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

type mockSessionRepo struct {
	CreateFunc           func(ctx context.Context, session *entity.Session) error
	FindValidSessionFunc func(ctx context.Context, token string) (*entity.Session, error)
	RevokeFunc           func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if m.FindValidSessionFunc != nil {
		return m.FindValidSessionFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token)
	}
	return nil
}

type mockCommentRepo struct {
	CreateFunc        func(ctx context.Context, comment *entity.Comment) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	FindByMovieIDFunc func(ctx context.Context, movieID int64) ([]*entity.CommentWithAuthor, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepo) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.CommentWithAuthor, error) {
	if m.FindByMovieIDFunc != nil {
		return m.FindByMovieIDFunc(ctx, movieID)
	}
	return nil, nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockFavouriteRepo struct {
	CreateFunc             func(ctx context.Context, fav *entity.FavouriteMovie) error
	FindByUserAndMovieFunc func(ctx context.Context, userID uuid.UUID, movieID int64) (*entity.FavouriteMovie, error)
	FindMovieIDsByUserFunc func(ctx context.Context, userID uuid.UUID) ([]int64, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
}

func (m *mockFavouriteRepo) Create(ctx context.Context, fav *entity.FavouriteMovie) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fav)
	}
	return nil
}

func (m *mockFavouriteRepo) FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int64) (*entity.FavouriteMovie, error) {
	if m.FindByUserAndMovieFunc != nil {
		return m.FindByUserAndMovieFunc(ctx, userID, movieID)
	}
	return nil, nil
}

func (m *mockFavouriteRepo) FindMovieIDsByUser(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	if m.FindMovieIDsByUserFunc != nil {
		return m.FindMovieIDsByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockFavouriteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockGateway struct {
	PopularFunc         func(ctx context.Context, page int) (*gateway.MoviePage, error)
	TopRatedFunc        func(ctx context.Context, page int) (*gateway.MoviePage, error)
	DetailsFunc         func(ctx context.Context, movieID int64) (*gateway.MovieDetail, error)
	VideosFunc          func(ctx context.Context, movieID int64) ([]gateway.Video, error)
	RecommendationsFunc func(ctx context.Context, movieID int64) (*gateway.MoviePage, error)
	ImagesFunc          func(ctx context.Context, movieID int64) (*gateway.ImageSet, error)
	SearchFunc          func(ctx context.Context, query string, page int) (*gateway.MoviePage, error)
}

func (m *mockGateway) Popular(ctx context.Context, page int) (*gateway.MoviePage, error) {
	if m.PopularFunc != nil {
		return m.PopularFunc(ctx, page)
	}
	return &gateway.MoviePage{Page: page}, nil
}

func (m *mockGateway) TopRated(ctx context.Context, page int) (*gateway.MoviePage, error) {
	if m.TopRatedFunc != nil {
		return m.TopRatedFunc(ctx, page)
	}
	return &gateway.MoviePage{Page: page}, nil
}

func (m *mockGateway) Details(ctx context.Context, movieID int64) (*gateway.MovieDetail, error) {
	if m.DetailsFunc != nil {
		return m.DetailsFunc(ctx, movieID)
	}
	return &gateway.MovieDetail{Movie: gateway.Movie{ID: movieID}}, nil
}

func (m *mockGateway) Videos(ctx context.Context, movieID int64) ([]gateway.Video, error) {
	if m.VideosFunc != nil {
		return m.VideosFunc(ctx, movieID)
	}
	return nil, nil
}

func (m *mockGateway) Recommendations(ctx context.Context, movieID int64) (*gateway.MoviePage, error) {
	if m.RecommendationsFunc != nil {
		return m.RecommendationsFunc(ctx, movieID)
	}
	return &gateway.MoviePage{}, nil
}

func (m *mockGateway) Images(ctx context.Context, movieID int64) (*gateway.ImageSet, error) {
	if m.ImagesFunc != nil {
		return m.ImagesFunc(ctx, movieID)
	}
	return &gateway.ImageSet{}, nil
}

func (m *mockGateway) Search(ctx context.Context, query string, page int) (*gateway.MoviePage, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, page)
	}
	return &gateway.MoviePage{Page: page}, nil
}

// testRepository bundles the mocks into the Repository struct the
// services take.
func testRepository(user *mockUserRepo, session *mockSessionRepo, comment *mockCommentRepo, favourite *mockFavouriteRepo) *repository.Repository {
	if user == nil {
		user = &mockUserRepo{}
	}
	if session == nil {
		session = &mockSessionRepo{}
	}
	if comment == nil {
		comment = &mockCommentRepo{}
	}
	if favourite == nil {
		favourite = &mockFavouriteRepo{}
	}
	return &repository.Repository{
		User:      user,
		Session:   session,
		Comment:   comment,
		Favourite: favourite,
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
