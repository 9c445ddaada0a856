package out

import (
	"context"

	prayerout "mihrab/internal/modules/prayer/port/out"
	settingsin "mihrab/internal/modules/settings/port/in"
)

type SettingsMethodAdapter struct {
	settings settingsin.Usecase
}

func NewSettingsMethodAdapter(settings settingsin.Usecase) prayerout.MethodPreference {
	return &SettingsMethodAdapter{settings: settings}
}

func (a *SettingsMethodAdapter) CalculationMethod(ctx context.Context) (int, error) {
	s, err := a.settings.Get(ctx)
	if err != nil {
		return 0, err
	}
	return s.CalculationMethod, nil
}
