// main.go
package main

import (
	"context"
	"log"

	"movie-browser/cmd"
	"movie-browser/internal/data/repository"
	"movie-browser/internal/gateway"
	"movie-browser/internal/wire"
	"movie-browser/pkg/database"
	"movie-browser/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Create tables if they are not there yet
	if err := database.Bootstrap(context.Background(), db); err != nil {
		logger.Fatal("Failed to bootstrap schema", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Movie metadata gateway, optionally wrapped with a Redis cache
	var gw gateway.MovieGateway = gateway.NewClient(config.TMDB, logger)
	if config.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("Redis unreachable, gateway cache disabled", zap.Error(err))
		} else {
			gw = gateway.NewCachingGateway(gw, rdb, config.Redis.CacheTTL(), logger)
			logger.Info("Gateway cache enabled", zap.String("addr", config.Redis.Addr))
		}
	}

	// Wire all dependencies
	app := wire.Wiring(repos, gw, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
