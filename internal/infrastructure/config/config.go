package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Token store backends.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API   APIConfig
	Token TokenConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type APIConfig struct {
	URL     string        `env:"API_URL,     default=http://localhost:5000/api"`
	Timeout time.Duration `env:"API_TIMEOUT, default=15s"`
}

type TokenConfig struct {
	Store string `env:"TOKEN_STORE, default=file"`
	// File defaults to ~/.jobportal/token.
	File    string `env:"TOKEN_FILE"`
	SealKey string `env:"TOKEN_SEAL_KEY"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=jobportal"`
}

type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR,       default=localhost:6379"`
	DB        int    `env:"REDIS_DB,         default=0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX, default=jobportal:"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.Token.Store = strings.ToLower(strings.TrimSpace(cfg.Token.Store))
	switch cfg.Token.Store {
	case StoreFile, StoreRedis, StoreMongo, StoreMemory:
	default:
		return nil, fmt.Errorf("load config: unknown TOKEN_STORE %q", cfg.Token.Store)
	}

	if cfg.Token.File == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("load config: token file: %w", err)
		}
		cfg.Token.File = filepath.Join(home, ".jobportal", "token")
	}
	return &cfg, nil
}

// Pretty reports whether logs should go to a console writer.
func (c *Config) Pretty() bool {
	return c.Env == "development"
}
