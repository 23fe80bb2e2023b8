package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is built once at startup and passed by reference into each service.
// JWT_SECRET and the DATABASE_* group are required; a missing value is a
// fatal configuration error.
type Config struct {
	Port      string        `env:"PORT,       default=3000"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	User       string `env:"DATABASE_USER,        required"`
	Password   string `env:"DATABASE_PASSWORD,    required"`
	Host       string `env:"DATABASE_HOST,        required"`
	Port       int    `env:"DATABASE_PORT,        required"`
	Name       string `env:"DATABASE_NAME,        required"`
	AuthSource string `env:"DATABASE_AUTH_SOURCE, default=admin"`
}

// URI assembles the MongoDB connection string from the individual parts.
func (d DatabaseConfig) URI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%d/%s?authSource=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.AuthSource)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
