package service

import (
	"context"

	"github.com/rs/zerolog"

	"mihrab/internal/modules/settings/domain"
	settingsout "mihrab/internal/modules/settings/port/out"
)

type SettingsService struct {
	store settingsout.SettingsStore
	log   zerolog.Logger
}

func NewSettingsService(store settingsout.SettingsStore, log zerolog.Logger) *SettingsService {
	return &SettingsService{store: store, log: log}
}

func (s *SettingsService) Get(ctx context.Context) domain.Settings {
	return s.store.Load(ctx).Sanitize()
}

func (s *SettingsService) Update(ctx context.Context, patch domain.Patch) (domain.Settings, error) {
	next, err := s.Get(ctx).Apply(patch)
	if err != nil {
		return domain.Settings{}, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Settings{}, err
	}
	s.log.Debug().Str("language", next.Language).Int("method", next.CalculationMethod).Msg("settings saved")
	return next, nil
}
