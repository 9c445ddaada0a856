package out

import (
	"context"

	"mihrab/internal/modules/settings/domain"
	settingsout "mihrab/internal/modules/settings/port/out"
	"mihrab/internal/platform/kv"
)

const (
	languageKey      = "language"
	methodKey        = "calculationMethod"
	notificationsKey = "notificationsEnabled"
	adhanSoundKey    = "adhanSound"
)

type KVSettingsStore struct {
	store kv.Store
}

func NewKVSettingsStore(store kv.Store) settingsout.SettingsStore {
	return &KVSettingsStore{store: store}
}

func (s *KVSettingsStore) Load(ctx context.Context) domain.Settings {
	def := domain.Defaults()
	return domain.Settings{
		Language:             kv.LoadOr(ctx, s.store, languageKey, def.Language),
		CalculationMethod:    kv.LoadOr(ctx, s.store, methodKey, def.CalculationMethod),
		NotificationsEnabled: kv.LoadOr(ctx, s.store, notificationsKey, def.NotificationsEnabled),
		AdhanSoundID:         kv.LoadOr(ctx, s.store, adhanSoundKey, def.AdhanSoundID),
	}
}

func (s *KVSettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	if err := kv.Save(ctx, s.store, languageKey, settings.Language); err != nil {
		return err
	}
	if err := kv.Save(ctx, s.store, methodKey, settings.CalculationMethod); err != nil {
		return err
	}
	if err := kv.Save(ctx, s.store, notificationsKey, settings.NotificationsEnabled); err != nil {
		return err
	}
	return kv.Save(ctx, s.store, adhanSoundKey, settings.AdhanSoundID)
}
