package out

import (
	"context"

	quranout "mihrab/internal/modules/quran/port/out"
	settingsin "mihrab/internal/modules/settings/port/in"
)

type SettingsLanguageAdapter struct {
	settings settingsin.Usecase
}

func NewSettingsLanguageAdapter(settings settingsin.Usecase) quranout.LanguagePreference {
	return &SettingsLanguageAdapter{settings: settings}
}

func (a *SettingsLanguageAdapter) Language(ctx context.Context) (string, error) {
	s, err := a.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	return s.Language, nil
}
