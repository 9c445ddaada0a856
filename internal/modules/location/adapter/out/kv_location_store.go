package out

import (
	"context"

	"mihrab/internal/modules/location/domain"
	locationout "mihrab/internal/modules/location/port/out"
	"mihrab/internal/platform/kv"
)

const savedLocationKey = "savedLocation"

type KVLocationStore struct {
	store kv.Store
}

func NewKVLocationStore(store kv.Store) locationout.LocationStore {
	return &KVLocationStore{store: store}
}

func (s *KVLocationStore) Load(ctx context.Context) (domain.Location, bool) {
	return kv.Lookup[domain.Location](ctx, s.store, savedLocationKey)
}

func (s *KVLocationStore) Save(ctx context.Context, location domain.Location) error {
	return kv.Save(ctx, s.store, savedLocationKey, location)
}

func (s *KVLocationStore) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, savedLocationKey)
}
