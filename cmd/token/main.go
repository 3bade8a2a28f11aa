package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"profile_backend/internal/config"
	jwtmw "profile_backend/internal/platform/jwt"
	"profile_backend/internal/platform/logger"
)

// JWT_SECRETで署名したBearerトークンを発行する開発用コマンド
func main() {
	subject := flag.String("sub", "analyst", "token subject")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	token, err := jwtmw.NewGenerator(cfg.Auth.JWTSecret, *ttl).GenerateToken(*subject)
	if err != nil {
		slog.Error("failed to generate token", logger.Err(err))
		os.Exit(1)
	}
	fmt.Println(token)
}
