package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	App   App
	DB    DB
	Redis Redis
	Auth  Auth
	Vote  Vote
}

type App struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Port        string `env:"PORT" envDefault:"8080"`
	LokiURL     string `env:"LOKI_URL"`
	AppName     string `env:"APP_NAME" envDefault:"breadit-api"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}

type DB struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"breadit"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN returns the keyword/value connection string understood by pgx.
func (c DB) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type Redis struct {
	URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET,notEmpty"`
}

type Vote struct {
	// CacheAfterUpvotes is the net score at which a post snapshot is written to Redis.
	CacheAfterUpvotes int           `env:"CACHE_AFTER_UPVOTES" envDefault:"1"`
	StoreTimeout      time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	RateLimit         float64       `env:"VOTE_RATE_LIMIT" envDefault:"5"`
	RateBurst         int           `env:"VOTE_RATE_BURST" envDefault:"10"`
}

func Load() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
