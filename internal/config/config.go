// Package config loads process configuration from the environment and an optional .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"profile_backend/internal/platform/db"
	"profile_backend/internal/platform/logger"
	"profile_backend/internal/platform/redis"
)

type Config struct {
	HTTP  HTTP
	DB    db.Config     `envPrefix:"DB_"`
	Redis redis.Config  `envPrefix:"REDIS_"`
	Log   logger.Config `envPrefix:"LOG_"`
	Cache Cache
	Auth  Auth
}

type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	CORSEnabled     bool          `env:"CORS_ENABLED" envDefault:"false"`
	CORSOrigins     []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Cache struct {
	TTL       time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	Namespace string        `env:"CACHE_NAMESPACE" envDefault:"profile"`
}

// Auth は書き込みルートのJWTガード設定です。JWTSecretが空の場合ガードは無効です。
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

func (a Auth) Enabled() bool {
	return a.JWTSecret != ""
}

// Load は.envを読み込んだ後（存在しなければ無視）、環境変数をパースします。
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse は環境変数のみからConfigを組み立てます。
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	return cfg, nil
}
