package usecase

import (
	"context"

	"mihrab/internal/modules/settings/domain"
	settingsdto "mihrab/internal/modules/settings/dto"
	settingsin "mihrab/internal/modules/settings/port/in"
	"mihrab/internal/modules/settings/service"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return toOutput(i.svc.Get(ctx)), nil
}

func (i *Interactor) Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	s, err := i.svc.Update(ctx, domain.Patch{
		Language:             input.Language,
		CalculationMethod:    input.CalculationMethod,
		NotificationsEnabled: input.NotificationsEnabled,
		AdhanSoundID:         input.AdhanSoundID,
	})
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return toOutput(s), nil
}

func toOutput(s domain.Settings) settingsdto.SettingsOutput {
	return settingsdto.SettingsOutput{
		Language:             s.Language,
		CalculationMethod:    s.CalculationMethod,
		NotificationsEnabled: s.NotificationsEnabled,
		AdhanSoundID:         s.AdhanSoundID,
	}
}
