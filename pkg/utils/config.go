package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	TMDB     TMDBConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type TMDBConfig struct {
	APIKey  string
	BaseURL string
	RPS     int
}

type RedisConfig struct {
	Addr           string
	Password       string
	CacheTTLMinute int
}

func (r RedisConfig) CacheTTL() time.Duration {
	if r.CacheTTLMinute <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(r.CacheTTLMinute) * time.Minute
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("GATEWAY_RPS", 10)
	viper.SetDefault("CACHE_TTL_MINUTES", 5)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		TMDB: TMDBConfig{
			APIKey:  viper.GetString("TMDB_API_KEY"),
			BaseURL: viper.GetString("TMDB_BASE_URL"),
			RPS:     viper.GetInt("GATEWAY_RPS"),
		},
		Redis: RedisConfig{
			Addr:           viper.GetString("REDIS_ADDR"),
			Password:       viper.GetString("REDIS_PASSWORD"),
			CacheTTLMinute: viper.GetInt("CACHE_TTL_MINUTES"),
		},
	}

	return config, nil
}
