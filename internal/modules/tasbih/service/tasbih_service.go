package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"mihrab/internal/modules/tasbih/domain"
	tasbihout "mihrab/internal/modules/tasbih/port/out"
)

// TasbihService serializes transitions so concurrent callers in one
// process never lose an increment between load and save.
type TasbihService struct {
	store tasbihout.CounterStore
	log   zerolog.Logger

	mu sync.Mutex
}

func NewTasbihService(store tasbihout.CounterStore, log zerolog.Logger) *TasbihService {
	return &TasbihService{store: store, log: log}
}

// Load rehydrates all three counters from the store.
func (s *TasbihService) Load(ctx context.Context) domain.Set {
	return domain.NewSet(
		s.store.Load(ctx, domain.SubhanAllah),
		s.store.Load(ctx, domain.Alhamdulillah),
		s.store.Load(ctx, domain.AllahuAkbar),
	)
}

func (s *TasbihService) Increment(ctx context.Context, phrase domain.Phrase) (domain.Set, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, changed, err := s.Load(ctx).Increment(phrase)
	if err != nil {
		return domain.Set{}, false, err
	}
	if !changed {
		return set, false, nil
	}
	counter := set.Get(phrase)
	if err := s.store.Save(ctx, phrase, counter); err != nil {
		return domain.Set{}, false, fmt.Errorf("save %s counter: %w", phrase, err)
	}
	if counter.Completed {
		s.log.Info().Str("phrase", string(phrase)).Msg("tasbih phrase completed")
	}
	return set, true, nil
}

func (s *TasbihService) ResetAll(ctx context.Context) (domain.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.Load(ctx).ResetAll()
	for _, phrase := range domain.Phrases {
		if err := s.store.Save(ctx, phrase, set.Get(phrase)); err != nil {
			return domain.Set{}, fmt.Errorf("reset %s counter: %w", phrase, err)
		}
	}
	return set, nil
}
