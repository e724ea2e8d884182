package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DevJWTSecret is substituted for a missing JWT_SECRET outside production.
// Load refuses to start a production process without an explicit secret.
const DevJWTSecret = "insecure-dev-secret"

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=8h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// BootstrapRequired makes a failed default-admin bootstrap fatal to
	// startup instead of a logged warning.
	BootstrapRequired bool `env:"BOOTSTRAP_REQUIRED, default=false"`

	Mongo      MongoConfig
	Redis      RedisConfig
	LoginLimit LoginLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pricing"`
}

// RedisConfig is optional: an empty addr disables the login rate limiter.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type LoginLimitConfig struct {
	Attempts int           `env:"LOGIN_RATE_LIMIT,  default=5"`
	Window   time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
}

// IsProduction reports whether the process runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesDevSecret reports whether the development fallback secret is active.
func (c *Config) UsesDevSecret() bool {
	return c.JWTSecret == DevJWTSecret
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT_SECRET is a hard error in production; elsewhere the
// well-known dev secret is substituted so local setups keep working.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = DevJWTSecret
	}

	return &cfg, nil
}
