package out

import (
	"context"

	"mihrab/internal/modules/tasbih/domain"
	tasbihout "mihrab/internal/modules/tasbih/port/out"
	"mihrab/internal/platform/kv"
)

// KVCounterStore keeps one JSON counter per phrase, keyed by the phrase name.
type KVCounterStore struct {
	store kv.Store
}

func NewKVCounterStore(store kv.Store) tasbihout.CounterStore {
	return &KVCounterStore{store: store}
}

func (s *KVCounterStore) Load(ctx context.Context, phrase domain.Phrase) domain.Counter {
	return kv.LoadOr(ctx, s.store, string(phrase), domain.Counter{})
}

func (s *KVCounterStore) Save(ctx context.Context, phrase domain.Phrase, counter domain.Counter) error {
	return kv.Save(ctx, s.store, string(phrase), counter)
}
