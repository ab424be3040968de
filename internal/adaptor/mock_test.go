package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"

	"movie-browser/internal/dto/request"
	"movie-browser/internal/dto/response"
	"movie-browser/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service mocks with overridable function fields, same shape as the
// repository mocks in the usecase tests.

type mockAuthService struct {
	RegisterFunc func(ctx context.Context, req *request.RegisterRequest) error
	LoginFunc    func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	LogoutFunc   func(ctx context.Context, token string) error
}

func (m *mockAuthService) Register(ctx context.Context, req *request.RegisterRequest) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &response.AuthResponse{}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

type mockMovieService struct {
	HomeFunc    func(ctx context.Context, userID *uuid.UUID) (*response.HomeView, error)
	ListFunc    func(ctx context.Context, listType string, page int, userID *uuid.UUID) (*response.MovieListView, error)
	DetailsFunc func(ctx context.Context, movieID int64) (*response.MovieDetailView, error)
	SearchFunc  func(ctx context.Context, query string, page int) (*response.MovieListView, error)
}

func (m *mockMovieService) Home(ctx context.Context, userID *uuid.UUID) (*response.HomeView, error) {
	if m.HomeFunc != nil {
		return m.HomeFunc(ctx, userID)
	}
	return &response.HomeView{}, nil
}

func (m *mockMovieService) List(ctx context.Context, listType string, page int, userID *uuid.UUID) (*response.MovieListView, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, listType, page, userID)
	}
	return &response.MovieListView{}, nil
}

func (m *mockMovieService) Details(ctx context.Context, movieID int64) (*response.MovieDetailView, error) {
	if m.DetailsFunc != nil {
		return m.DetailsFunc(ctx, movieID)
	}
	return &response.MovieDetailView{}, nil
}

func (m *mockMovieService) Search(ctx context.Context, query string, page int) (*response.MovieListView, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, page)
	}
	return &response.MovieListView{}, nil
}

type mockCommentService struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, movieID int64, req *request.CreateCommentRequest) error
	DeleteFunc func(ctx context.Context, commentID string, userID uuid.UUID) error
}

func (m *mockCommentService) Create(ctx context.Context, userID uuid.UUID, movieID int64, req *request.CreateCommentRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, movieID, req)
	}
	return nil
}

func (m *mockCommentService) Delete(ctx context.Context, commentID string, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID, userID)
	}
	return nil
}

type mockFavouriteService struct {
	ToggleFunc func(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error)
}

func (m *mockFavouriteService) Toggle(ctx context.Context, userID uuid.UUID, movieID int64) (bool, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, userID, movieID)
	}
	return true, nil
}

type mockProfileService struct {
	ProfileFunc func(ctx context.Context, userID uuid.UUID) (*response.ProfileView, error)
}

func (m *mockProfileService) Profile(ctx context.Context, userID uuid.UUID) (*response.ProfileView, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return &response.ProfileView{}, nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// asUser attaches an authenticated user to the request context, the way
// the session middleware would.
func asUser(r *http.Request, userID uuid.UUID, username string) *http.Request {
	return r.WithContext(utils.SetUserContext(r.Context(), userID, username))
}

// serve runs one request through a chi router and returns the recorder.
func serve(handler http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}
