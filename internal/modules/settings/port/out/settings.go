package out

import (
	"context"

	"mihrab/internal/modules/settings/domain"
)

type SettingsStore interface {
	Load(ctx context.Context) domain.Settings
	Save(ctx context.Context, settings domain.Settings) error
}
