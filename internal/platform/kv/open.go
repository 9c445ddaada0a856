package kv

import (
	"context"
	"fmt"

	"mihrab/internal/platform/config"
)

const redisPrefix = "mihrab:"

// Open builds the store selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite, "":
		return NewSQLiteStore(cfg.DBPath)
	case config.BackendFile:
		return NewFileStore(cfg.StateDir), nil
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendRedis:
		r := cfg.Storage.Redis
		store, err := NewRedisStore(ctx, r.Addr, r.Username, r.Password, r.DB)
		if err != nil {
			return nil, err
		}
		return Scoped(store, redisPrefix), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
