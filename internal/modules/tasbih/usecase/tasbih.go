package usecase

import (
	"context"

	"mihrab/internal/modules/tasbih/domain"
	tasbihdto "mihrab/internal/modules/tasbih/dto"
	tasbihin "mihrab/internal/modules/tasbih/port/in"
	"mihrab/internal/modules/tasbih/service"
)

type Interactor struct {
	svc *service.TasbihService
}

func NewInteractor(svc *service.TasbihService) tasbihin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) State(ctx context.Context) (tasbihdto.StateOutput, error) {
	return toState(i.svc.Load(ctx)), nil
}

func (i *Interactor) Increment(ctx context.Context, raw string) (tasbihdto.IncrementOutput, error) {
	phrase, err := domain.ParsePhrase(raw)
	if err != nil {
		return tasbihdto.IncrementOutput{}, err
	}
	set, changed, err := i.svc.Increment(ctx, phrase)
	if err != nil {
		return tasbihdto.IncrementOutput{}, err
	}
	return tasbihdto.IncrementOutput{
		Counter: toCounter(phrase, set.Get(phrase)),
		Changed: changed,
		State:   toState(set),
	}, nil
}

func (i *Interactor) ResetAll(ctx context.Context) (tasbihdto.StateOutput, error) {
	set, err := i.svc.ResetAll(ctx)
	if err != nil {
		return tasbihdto.StateOutput{}, err
	}
	return toState(set), nil
}

func toState(set domain.Set) tasbihdto.StateOutput {
	counters := make([]tasbihdto.CounterOutput, 0, len(domain.Phrases))
	for _, phrase := range domain.Phrases {
		counters = append(counters, toCounter(phrase, set.Get(phrase)))
	}
	return tasbihdto.StateOutput{Counters: counters, AllCompleted: set.AllCompleted()}
}

func toCounter(phrase domain.Phrase, c domain.Counter) tasbihdto.CounterOutput {
	info := phrase.Info()
	return tasbihdto.CounterOutput{
		Phrase:    string(phrase),
		Title:     info.Title,
		Arabic:    info.Arabic,
		Meaning:   info.Meaning,
		Count:     c.Count,
		Target:    domain.Target,
		Completed: c.Completed,
	}
}
