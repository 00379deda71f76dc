// Package config loads server configuration from defaults, an optional YAML
// file and environment overrides, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kdfca/academy/internal/validation"
)

// Environment variables read by Load
const (
	EnvConfigPath          = "ACADEMY_CONFIG"
	EnvStorageType         = "STORAGE_TYPE"
	EnvRedisURL            = "REDIS_URL"
	EnvSQLitePath          = "SQLITE_PATH"
	EnvPort                = "PORT"
	EnvMinPasswordStrength = "MIN_PASSWORD_STRENGTH"
	EnvLogLevel            = "LOG_LEVEL"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config is the full server configuration
type Config struct {
	LogLevel    string            `yaml:"log_level"`
	Server      ServerConfig      `yaml:"server"`
	Storage     StorageConfig     `yaml:"storage"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Validation  ValidationConfig  `yaml:"validation"`
	Account     AccountConfig     `yaml:"account"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Type   string       `yaml:"type"`
	Redis  RedisConfig  `yaml:"redis"`
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig configures the Redis backend
type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	KeyPrefix    string        `yaml:"key_prefix"`
	SnapshotTTL  time.Duration `yaml:"snapshot_ttl"`
}

// SQLiteConfig configures the SQLite backend
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// PersistenceConfig tunes background snapshot writes
type PersistenceConfig struct {
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// ValidationConfig holds the form validation policy
type ValidationConfig struct {
	MinPasswordStrength int `yaml:"min_password_strength"`
	MinAge              int `yaml:"min_age"`
	MaxAge              int `yaml:"max_age"`
}

// AccountConfig tunes the sign-up flow
type AccountConfig struct {
	BcryptCost  int           `yaml:"bcrypt_cost"`
	SubmitDelay time.Duration `yaml:"submit_delay"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		LogLevel: "info",
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			MaxBodyBytes:    64 << 10,
		},
		Storage: StorageConfig{
			Type: StorageMemory,
			Redis: RedisConfig{
				URL:          "redis://localhost:6379",
				PoolSize:     10,
				MinIdleConns: 2,
				KeyPrefix:    "kdfca",
			},
			SQLite: SQLiteConfig{Path: "data/academy.db"},
		},
		Persistence: PersistenceConfig{WriteTimeout: 5 * time.Second},
		Account:     AccountConfig{BcryptCost: 10},
	}
}

// Load builds the configuration. The YAML file named by ACADEMY_CONFIG, if
// set, is applied over the defaults, then individual environment variables.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv(EnvConfigPath); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults without consulting the environment
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decodeYAML(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvStorageType); v != "" {
		cfg.Storage.Type = strings.ToLower(v)
	}
	if v := getenv(EnvRedisURL); v != "" {
		cfg.Storage.Redis.URL = v
	}
	if v := getenv(EnvSQLitePath); v != "" {
		cfg.Storage.SQLite.Path = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		cfg.Server.Port = port
	}
	if v := getenv(EnvMinPasswordStrength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMinPasswordStrength, err)
		}
		cfg.Validation.MinPasswordStrength = n
	}
	return nil
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	switch c.Storage.Type {
	case StorageMemory, StorageSQLite:
	case StorageRedis:
		if c.Storage.Redis.URL == "" {
			return errors.New("storage.redis.url is required when storage type is redis")
		}
	default:
		return fmt.Errorf("storage type %q: must be memory, redis or sqlite", c.Storage.Type)
	}
	if c.Storage.Type == StorageSQLite && c.Storage.SQLite.Path == "" {
		return errors.New("storage.sqlite.path is required when storage type is sqlite")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if s := c.Validation.MinPasswordStrength; s < 0 || s > validation.MaxPasswordStrength {
		return fmt.Errorf("validation.min_password_strength %d: must be between 0 and %d", s, validation.MaxPasswordStrength)
	}
	if c.Validation.MaxAge > 0 && c.Validation.MinAge > c.Validation.MaxAge {
		return fmt.Errorf("validation.min_age %d exceeds max_age %d", c.Validation.MinAge, c.Validation.MaxAge)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Policy returns the validation policy
func (c Config) Policy() validation.Policy {
	return validation.Policy{
		MinPasswordStrength: c.Validation.MinPasswordStrength,
		MinAge:              c.Validation.MinAge,
		MaxAge:              c.Validation.MaxAge,
	}
}
