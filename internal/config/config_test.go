package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`env: "local"
http_server:
  address: "0.0.0.0:9000"
storage:
  driver: "memory"
mongo:
  database: "media_test"
  timeout: 3s
cors:
  allowed_origins:
    - "http://localhost:3000"
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Env != "local" || cfg.HTTPServer.Address != "0.0.0.0:9000" || cfg.Storage.Driver != "memory" {
		t.Fatalf("Unexpected config %+v", cfg)
	}
	if cfg.Mongo.Database != "media_test" || cfg.Mongo.Timeout != 3*time.Second {
		t.Fatalf("Unexpected mongo config %+v", cfg.Mongo)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("Unexpected origins %v", cfg.CORS.AllowedOrigins)
	}

	// Defaults fill the rest
	if cfg.Mongo.Collection != "media" || cfg.Mongo.URI() != "mongodb://localhost:27017" {
		t.Fatalf("Unexpected mongo defaults %+v", cfg.Mongo)
	}
	if cfg.Generate.MaxCount != 100 || cfg.RateLimit.CreatePerMinute != 20 {
		t.Fatalf("Unexpected defaults %+v %+v", cfg.Generate, cfg.RateLimit)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("GENERATE_MAX_COUNT", "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Storage.Driver != "memory" || cfg.Generate.MaxCount != 7 {
		t.Fatalf("Unexpected config %+v", cfg)
	}
	if cfg.HTTPServer.Address != "127.0.0.1:8001" {
		t.Fatalf("Expected default address, got %q", cfg.HTTPServer.Address)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("Expected default origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
