package out

import (
	"context"

	"mihrab/internal/modules/dhikr/domain"
	dhikrout "mihrab/internal/modules/dhikr/port/out"
	"mihrab/internal/platform/kv"
)

const (
	morningKey    = "morningDhikr"
	eveningKey    = "eveningDhikr"
	activeTabKey  = "activeTab"
	cursorKey     = "currentIndex"
	repetitionKey = "currentRepetition"
)

type KVProgressStore struct {
	store kv.Store
}

func NewKVProgressStore(store kv.Store) dhikrout.ProgressStore {
	return &KVProgressStore{store: store}
}

func (s *KVProgressStore) Load(ctx context.Context) domain.Snapshot {
	return domain.Snapshot{
		Morning:    kv.Load[[]domain.Item](ctx, s.store, morningKey),
		Evening:    kv.Load[[]domain.Item](ctx, s.store, eveningKey),
		ActiveTab:  domain.Tab(kv.Load[string](ctx, s.store, activeTabKey)),
		Cursor:     kv.Load[int](ctx, s.store, cursorKey),
		Repetition: kv.LoadOr(ctx, s.store, repetitionKey, 1),
	}
}

func (s *KVProgressStore) Save(ctx context.Context, p domain.Progress) error {
	writes := []struct {
		key   string
		value any
	}{
		{morningKey, p.Morning},
		{eveningKey, p.Evening},
		{activeTabKey, string(p.ActiveTab)},
		{cursorKey, p.Cursor},
		{repetitionKey, p.Repetition},
	}
	for _, w := range writes {
		if err := kv.Save(ctx, s.store, w.key, w.value); err != nil {
			return err
		}
	}
	return nil
}
