package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/princekumarofficial/media-service/internal/config"
	"github.com/princekumarofficial/media-service/internal/generator"
	"github.com/princekumarofficial/media-service/internal/storage"
	"github.com/princekumarofficial/media-service/internal/storage/mongo"
)

// Seeder writes batches of random media straight to storage
type Seeder struct {
	storage   storage.Storage
	generator *generator.Generator
	logger    *slog.Logger
}

func NewSeeder(storage storage.Storage, gen *generator.Generator, logger *slog.Logger) *Seeder {
	return &Seeder{
		storage:   storage,
		generator: gen,
		logger:    logger,
	}
}

// Seed inserts count random media one at a time and returns how many were written
func (s *Seeder) Seed(ctx context.Context, count int) (int, error) {
	startTime := time.Now()

	for i := 0; i < count; i++ {
		item := s.generator.Media()
		if err := s.storage.CreateMedia(ctx, &item); err != nil {
			s.logger.Error("Failed to seed media",
				"error", err.Error(),
				"written", i,
				"duration_ms", time.Since(startTime).Milliseconds())
			return i, fmt.Errorf("seeding item %d: %w", i+1, err)
		}
		s.logger.Debug("Seeded media", "media_id", item.ID.Hex(), "title", item.Title)
	}

	duration := time.Since(startTime)
	s.logger.Info("Completed seeding",
		"media_created", count,
		"duration_ms", duration.Milliseconds(),
		"duration", duration.String())

	return count, nil
}

// Run seeds once, then again every interval until ctx is cancelled. A zero
// interval seeds once and returns.
func (s *Seeder) Run(ctx context.Context, count int, interval time.Duration) error {
	if _, err := s.Seed(ctx, count); err != nil {
		return err
	}
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("Seeder running", "interval", interval.String(), "count", count)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Seeder shutting down")
			return nil
		case <-ticker.C:
			if _, err := s.Seed(ctx, count); err != nil {
				return err
			}
		}
	}
}

func main() {
	count := flag.Int("count", 10, "Number of random media to create per run")
	interval := flag.Duration("interval", 0, "Repeat seeding at this interval (0 runs once)")

	// Load config
	cfg := config.MustLoad()
	if !flag.Parsed() {
		flag.Parse()
	}

	if *count < 1 {
		log.Fatal("count must be a positive integer")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := mongo.NewMongo(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer db.Close(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("Received shutdown signal")
		cancel()
	}()

	seeder := NewSeeder(db, generator.New(), logger)
	if err := seeder.Run(ctx, *count, *interval); err != nil {
		slog.Error("Seeder failed", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("Seeder stopped")
}
