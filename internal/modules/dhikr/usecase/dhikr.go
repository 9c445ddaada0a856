package usecase

import (
	"context"

	"mihrab/internal/modules/dhikr/domain"
	dhikrdto "mihrab/internal/modules/dhikr/dto"
	dhikrin "mihrab/internal/modules/dhikr/port/in"
	"mihrab/internal/modules/dhikr/service"
)

type Interactor struct {
	svc *service.DhikrService
}

func NewInteractor(svc *service.DhikrService) dhikrin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) State(ctx context.Context) (dhikrdto.StateOutput, error) {
	p, err := i.svc.Load(ctx)
	if err != nil {
		return dhikrdto.StateOutput{}, err
	}
	return toOutput(p), nil
}

func (i *Interactor) SwitchTab(ctx context.Context, raw string) (dhikrdto.StateOutput, error) {
	tab, err := domain.ParseTab(raw)
	if err != nil {
		return dhikrdto.StateOutput{}, err
	}
	return i.apply(ctx, func(p domain.Progress) (domain.Progress, error) {
		return p.SwitchTab(tab)
	})
}

func (i *Interactor) Next(ctx context.Context) (dhikrdto.StateOutput, error) {
	return i.apply(ctx, func(p domain.Progress) (domain.Progress, error) {
		return p.Next(), nil
	})
}

func (i *Interactor) Previous(ctx context.Context) (dhikrdto.StateOutput, error) {
	return i.apply(ctx, func(p domain.Progress) (domain.Progress, error) {
		return p.Previous(), nil
	})
}

func (i *Interactor) Advance(ctx context.Context) (dhikrdto.StateOutput, error) {
	return i.apply(ctx, domain.Progress.Advance)
}

func (i *Interactor) ResetAll(ctx context.Context) (dhikrdto.StateOutput, error) {
	return i.apply(ctx, func(p domain.Progress) (domain.Progress, error) {
		return p.ResetAll(), nil
	})
}

func (i *Interactor) apply(ctx context.Context, transition func(domain.Progress) (domain.Progress, error)) (dhikrdto.StateOutput, error) {
	p, err := i.svc.Apply(ctx, transition)
	if err != nil {
		return dhikrdto.StateOutput{}, err
	}
	return toOutput(p), nil
}

func toOutput(p domain.Progress) dhikrdto.StateOutput {
	active := p.Active()
	items := make([]dhikrdto.ItemOutput, 0, len(active))
	for _, item := range active {
		items = append(items, toItem(item))
	}
	current := p.Current()
	return dhikrdto.StateOutput{
		ActiveTab:  string(p.ActiveTab),
		Position:   p.Cursor + 1,
		Total:      len(active),
		Repetition: p.Repetition,
		Required:   current.Repetitions,
		Current:    toItem(current),
		Items:      items,
		Morning:    dhikrdto.ListSummary{Completed: p.CompletedCount(domain.Morning), Total: len(p.Morning)},
		Evening:    dhikrdto.ListSummary{Completed: p.CompletedCount(domain.Evening), Total: len(p.Evening)},
	}
}

func toItem(item domain.Item) dhikrdto.ItemOutput {
	return dhikrdto.ItemOutput{
		ID:              item.ID,
		Arabic:          item.Arabic,
		Translation:     item.Translation,
		Transliteration: item.Transliteration,
		Repetitions:     item.Repetitions,
		Completed:       item.Completed,
	}
}
