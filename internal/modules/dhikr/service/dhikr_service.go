package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"mihrab/internal/modules/dhikr/domain"
	dhikrout "mihrab/internal/modules/dhikr/port/out"
)

type DhikrService struct {
	catalog dhikrout.CatalogSource
	store   dhikrout.ProgressStore
	log     zerolog.Logger

	mu sync.Mutex
}

func NewDhikrService(catalog dhikrout.CatalogSource, store dhikrout.ProgressStore, log zerolog.Logger) *DhikrService {
	return &DhikrService{catalog: catalog, store: store, log: log}
}

func (s *DhikrService) Load(ctx context.Context) (domain.Progress, error) {
	catalog, err := s.catalog.Catalog()
	if err != nil {
		return domain.Progress{}, err
	}
	return domain.Restore(catalog, s.store.Load(ctx)), nil
}

// Apply runs one transition against freshly loaded progress and writes the
// result through before returning it. Rejected transitions are not saved.
// Transitions are serialized across load and save.
func (s *DhikrService) Apply(ctx context.Context, transition func(domain.Progress) (domain.Progress, error)) (domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.Load(ctx)
	if err != nil {
		return domain.Progress{}, err
	}
	next, err := transition(current)
	if err != nil {
		return current, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Progress{}, fmt.Errorf("save dhikr progress: %w", err)
	}
	s.log.Debug().
		Str("tab", string(next.ActiveTab)).
		Int("cursor", next.Cursor).
		Int("repetition", next.Repetition).
		Msg("dhikr progress saved")
	return next, nil
}
