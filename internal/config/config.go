package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"production"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Mongo      Mongo      `yaml:"mongo"`
	Redis      Redis      `yaml:"redis"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
	CORS       CORS       `yaml:"cors"`
	Generate   Generate   `yaml:"generate"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"127.0.0.1:8001"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Storage selects the backing store: "mongo" or "memory"
type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo"`
}

type Mongo struct {
	Host       string        `yaml:"host" env:"MONGO_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
	Database   string        `yaml:"database" env:"MONGO_DATABASE" env-default:"media_api"`
	Collection string        `yaml:"collection" env:"MONGO_COLLECTION" env-default:"media"`
	Timeout    time.Duration `yaml:"timeout" env:"MONGO_TIMEOUT" env-default:"10s"`
}

// URI returns the connection string for the configured host and port
func (m Mongo) URI() string {
	return fmt.Sprintf("mongodb://%s:%s", m.Host, m.Port)
}

// Redis backs the rate limiter. An empty address disables rate limiting.
type Redis struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// RateLimit holds per-client token bucket sizes, refilled every minute
type RateLimit struct {
	CreatePerMinute   int64 `yaml:"create_per_minute" env:"RATE_LIMIT_CREATE" env-default:"20"`
	GeneratePerMinute int64 `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE" env-default:"5"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:8000"`
}

type Generate struct {
	MaxCount int `yaml:"max_count" env:"GENERATE_MAX_COUNT" env-default:"100"`
}

// Load reads the YAML file at configPath, or only the environment when
// configPath is empty.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist at path: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to config file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	return cfg
}
