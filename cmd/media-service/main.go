package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/princekumarofficial/media-service/internal/config"
	"github.com/princekumarofficial/media-service/internal/events"
	"github.com/princekumarofficial/media-service/internal/generator"
	"github.com/princekumarofficial/media-service/internal/http/middleware"
	"github.com/princekumarofficial/media-service/internal/http/server"
	"github.com/princekumarofficial/media-service/internal/ratelimit"
	"github.com/princekumarofficial/media-service/internal/storage"
	"github.com/princekumarofficial/media-service/internal/storage/memory"
	"github.com/princekumarofficial/media-service/internal/storage/mongo"
	"github.com/princekumarofficial/media-service/internal/websocket"
)

const (
	envLocal = "local"
	envDev   = "dev"
)

// @title Media Service API
// @version 1.0
// @description Track movies and shows: CRUD over a MongoDB collection plus random demo data.
// @BasePath /api
func main() {
	// load config
	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)
	slog.SetDefault(logger)

	startTime := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// storage setup
	store, closeStore, err := setupStorage(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage: ", err)
	}
	defer closeStore()

	// rate limiting
	rateLimit, redisClient, err := setupRateLimit(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize rate limiter: ", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// websocket hub
	hub := websocket.NewHub()
	go hub.Run(ctx)

	srv := server.New(cfg, &server.State{
		Storage:   store,
		StartTime: startTime,
		Hub:       hub,
		Publisher: events.NewEventPublisher(hub),
		Generator: generator.New(),
		RateLimit: rateLimit,
		Logger:    logger,
	})

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", slog.String("address", "http://"+cfg.HTTPServer.Address), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		slog.Error("Server failed to start", slog.String("error", err.Error()))
		closeStore()
		os.Exit(1)
	case <-done:
	}

	slog.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
		return
	}

	slog.Info("Server stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

func setupStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func(), error) {
	if cfg.Storage.Driver == "memory" {
		slog.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewMemory(), func() {}, nil
	}

	db, err := mongo.NewMongo(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			slog.Error("Failed to disconnect from MongoDB", slog.String("error", err.Error()))
		}
	}

	return db, closeFn, nil
}

// setupRateLimit returns a nil *RateLimit, which disables limiting, when no
// Redis address is configured.
func setupRateLimit(ctx context.Context, cfg *config.Config) (*middleware.RateLimit, *redis.Client, error) {
	if cfg.Redis.Address == "" {
		slog.Info("Redis address not set, rate limiting disabled")
		return nil, nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}
	slog.Info("Connected to Redis", slog.String("address", cfg.Redis.Address))

	return middleware.NewRateLimit(map[string]middleware.Limiter{
		"create":   ratelimit.NewTokenBucket(client, cfg.RateLimit.CreatePerMinute, cfg.RateLimit.CreatePerMinute),
		"generate": ratelimit.NewTokenBucket(client, cfg.RateLimit.GeneratePerMinute, cfg.RateLimit.GeneratePerMinute),
	}), client, nil
}
