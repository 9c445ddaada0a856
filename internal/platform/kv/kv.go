package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// Store is a flat string-keyed byte store. Values written through Save are
// JSON documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Lookup decodes the value stored under key. ok is false when the key is
// absent, unreadable or does not decode into T; the caller never sees the
// underlying failure, it is only logged through the context logger.
func Lookup[T any](ctx context.Context, store Store, key string) (T, bool) {
	var zero T
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("kv read failed, using default")
		return zero, false
	}
	if !found {
		return zero, false
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("key", key).Msg("kv value malformed, using default")
		return zero, false
	}
	return value, true
}

func Load[T any](ctx context.Context, store Store, key string) T {
	value, _ := Lookup[T](ctx, store, key)
	return value
}

func LoadOr[T any](ctx context.Context, store Store, key string, def T) T {
	if value, ok := Lookup[T](ctx, store, key); ok {
		return value
	}
	return def
}

func Save[T any](ctx context.Context, store Store, key string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := store.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

type scoped struct {
	inner  Store
	prefix string
}

// Scoped prefixes every key with prefix before it reaches inner.
func Scoped(inner Store, prefix string) Store {
	if prefix == "" {
		return inner
	}
	return &scoped{inner: inner, prefix: prefix}
}

func (s *scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

func (s *scoped) Close() error {
	return s.inner.Close()
}
