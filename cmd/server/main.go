package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"profile_backend/internal/app/router"
	"profile_backend/internal/config"
	profileadapters "profile_backend/internal/feature/profile/adapters"
	profilehandler "profile_backend/internal/feature/profile/transport/handler"
	profileusecase "profile_backend/internal/feature/profile/usecase"
	"profile_backend/internal/platform/cache"
	infradb "profile_backend/internal/platform/db"
	"profile_backend/internal/platform/http/handler"
	"profile_backend/internal/platform/logger"
	"profile_backend/internal/platform/metrics"
	infraredis "profile_backend/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", logger.Err(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(os.Stdout, cfg.Log)
	slog.SetDefault(log)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.OpenDB(cfg.DB)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() {
			if err := sqlDB.Close(); err != nil {
				log.Error("failed to close database", logger.Err(err))
			}
		}()
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
		log.Warn("Redis unavailable. Running without cache.", logger.Err(err))
	} else if tmp != nil {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("failed to close Redis client", logger.Err(err))
			}
		}()
	}

	// Repository / Usecase / Handler
	var profileCache profileusecase.ProfileCache
	if rdb != nil {
		profileCache = cache.NewProfileCache(rdb, cfg.Cache.TTL, cfg.Cache.Namespace)
	}
	svc := profileusecase.NewRecordService(
		profileadapters.NewRepositories(db),
		profileadapters.NewUnitOfWork(db),
		profileCache,
	)
	recordH := profilehandler.NewRecordHandler(svc)

	// ルータ生成
	opts := router.Options{
		Logger:    log,
		Metrics:   metrics.New(),
		Ready:     handler.PingerFunc(func(ctx context.Context) error { return infradb.Ping(ctx, db) }),
		JWTSecret: cfg.Auth.JWTSecret,
	}
	if cfg.HTTP.CORSEnabled {
		opts.CORSOrigins = cfg.HTTP.CORSOrigins
	}
	engine := router.NewRouter(recordH, opts)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.HTTP.Addr, "db_driver", cfg.DB.Driver, "cache", rdb != nil, "auth", cfg.Auth.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
