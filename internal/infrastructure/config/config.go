package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL is the lifetime of issued bearer tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=168h"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Throttle ThrottleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=field_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ThrottleConfig controls the Redis-backed login failure throttle.
type ThrottleConfig struct {
	MaxFailures int64         `env:"LOGIN_MAX_FAILURES,     default=10"`
	Window      time.Duration `env:"LOGIN_FAILURE_WINDOW,   default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
