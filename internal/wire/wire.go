// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-browser/internal/adaptor"
	"movie-browser/internal/data/repository"
	"movie-browser/internal/gateway"
	"movie-browser/internal/usecase"
	"movie-browser/pkg/middleware"
	"movie-browser/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies.
func Wiring(repo *repository.Repository, gw gateway.MovieGateway, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, gw, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router.
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware. CurrentUser runs first so the request
	// logger can attach the resolved username.
	r.Use(middleware.CurrentUser(repo.Session, repo.User, logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireAuth(r, handler.Auth, logger)
	wireMovie(r, handler.Movie, logger)
	wireComment(r, handler.Comment, logger)
	wireFavourite(r, handler.Favourite, logger)
	wireProfile(r, handler.Profile, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
