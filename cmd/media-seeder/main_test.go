package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/princekumarofficial/media-service/internal/generator"
	"github.com/princekumarofficial/media-service/internal/storage/memory"
)

func TestSeeder_Seed(t *testing.T) {
	store := memory.NewMemory()
	seeder := NewSeeder(store, generator.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	written, err := seeder.Seed(context.Background(), 7)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if written != 7 {
		t.Fatalf("Expected 7 written, got %d", written)
	}
	if store.Len() != 7 {
		t.Fatalf("Expected 7 stored, got %d", store.Len())
	}
}

func TestSeeder_RunOnceWithoutInterval(t *testing.T) {
	store := memory.NewMemory()
	seeder := NewSeeder(store, generator.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := seeder.Run(context.Background(), 3, 0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.Len() != 3 {
		t.Fatalf("Expected 3 stored, got %d", store.Len())
	}
}

func TestSeeder_StopsOnCancelledContext(t *testing.T) {
	store := memory.NewMemory()
	seeder := NewSeeder(store, generator.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	written, err := seeder.Seed(ctx, 5)
	if err == nil {
		t.Fatal("Expected an error for a cancelled context")
	}
	if written != 0 || store.Len() != 0 {
		t.Fatalf("Expected nothing written, got %d (stored %d)", written, store.Len())
	}
}
