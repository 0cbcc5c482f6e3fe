package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	DraftTTL  time.Duration `env:"DRAFT_TTL, default=1h"`

	Admin AdminConfig
	Redis RedisConfig
}

// AdminConfig holds the single configured administrator credential used to
// issue session tokens.
type AdminConfig struct {
	Email        string `env:"ADMIN_EMAIL"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(log zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		panic(err)
	}
	return &cfg
}
