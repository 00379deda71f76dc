package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kdfca/academy/internal/config"
	"github.com/kdfca/academy/internal/dependencies/clock"
	"github.com/kdfca/academy/internal/services/account"
	"github.com/kdfca/academy/internal/services/registration"
	"github.com/kdfca/academy/internal/storage"
	"github.com/kdfca/academy/internal/storage/memory"
	redisstorage "github.com/kdfca/academy/internal/storage/redis"
	sqlitestorage "github.com/kdfca/academy/internal/storage/sqlite"
	"github.com/kdfca/academy/internal/store"
	"github.com/kdfca/academy/internal/validation"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageMemory
	StorageTypeRedis  = config.StorageRedis
	StorageTypeSQLite = config.StorageSQLite
)

// App contains all wired application components
type App struct {
	// Persistence gateway backing the store
	Storage storage.Gateway

	// External dependencies
	Clock clock.Clock

	Store     *store.Store
	Validator *validation.Validator

	// Services
	RegistrationService *registration.Service
	AccountService      *account.Service

	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the persistence backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds the database location (required if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
	// StoreConfig tunes background persistence. Zero value uses store.DefaultConfig().
	StoreConfig store.Config
	// Policy is the validation policy
	Policy validation.Policy
	// AccountConfig tunes the sign-up flow. Zero value uses account.DefaultConfig().
	AccountConfig account.Config
}

// FromConfig maps loaded server configuration onto factory configuration
func FromConfig(c config.Config, logger *slog.Logger) Config {
	redisCfg := redisstorage.Config{
		URL:          c.Storage.Redis.URL,
		PoolSize:     c.Storage.Redis.PoolSize,
		MinIdleConns: c.Storage.Redis.MinIdleConns,
		KeyPrefix:    c.Storage.Redis.KeyPrefix,
		SnapshotTTL:  c.Storage.Redis.SnapshotTTL,
	}
	sqliteCfg := sqlitestorage.Config{Path: c.Storage.SQLite.Path}

	return Config{
		Logger:        logger,
		StorageType:   c.Storage.Type,
		RedisConfig:   &redisCfg,
		SQLiteConfig:  &sqliteCfg,
		StoreConfig:   store.Config{WriteTimeout: c.Persistence.WriteTimeout},
		Policy:        c.Policy(),
		AccountConfig: account.Config{BcryptCost: c.Account.BcryptCost, SubmitDelay: c.Account.SubmitDelay},
	}
}

// New creates a new application with all dependencies wired.
// The store is rehydrated from the selected backend before New returns.
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	gateway, err := newGateway(cfg)
	if err != nil {
		return nil, err
	}

	storeCfg := cfg.StoreConfig
	if storeCfg == (store.Config{}) {
		storeCfg = store.DefaultConfig()
	}

	app, err := newWithDependencies(ctx, gateway, clock.New(), storeCfg, cfg.Policy, cfg.AccountConfig, logger)
	if err != nil {
		_ = gateway.Close()
		return nil, err
	}
	return app, nil
}

func newGateway(cfg Config) (storage.Gateway, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLiteConfig == nil {
			return nil, errors.New("SQLiteConfig required when StorageType is sqlite")
		}
		return sqlitestorage.New(*cfg.SQLiteConfig)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	ctx context.Context,
	gateway storage.Gateway,
	clk clock.Clock,
	storeCfg store.Config,
	policy validation.Policy,
	accountCfg account.Config,
	logger *slog.Logger,
) (*App, error) {
	st, err := store.New(ctx, gateway, clk, storeCfg, logger)
	if err != nil {
		return nil, err
	}

	v := validation.New(policy)

	return &App{
		Storage:             gateway,
		Clock:               clk,
		Store:               st,
		Validator:           v,
		RegistrationService: registration.New(st, v, logger),
		AccountService:      account.New(st, v, accountCfg, logger),
		logger:              logger,
	}, nil
}

// Close flushes the store and releases the persistence backend
func (a *App) Close(ctx context.Context) error {
	err := a.Store.Close(ctx)
	if err != nil {
		a.logger.Warn("final flush incomplete", "error", err)
	} else {
		a.logger.Info("store flushed")
	}
	return errors.Join(err, a.Storage.Close())
}
