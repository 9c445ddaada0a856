package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	dhikrout "mihrab/internal/modules/dhikr/adapter/out"
	"mihrab/internal/modules/dhikr/domain"
	dhikrin "mihrab/internal/modules/dhikr/port/in"
	"mihrab/internal/modules/dhikr/service"
	"mihrab/internal/modules/dhikr/usecase"
	apperrors "mihrab/internal/platform/errors"
	"mihrab/internal/platform/kv"
)

func newUsecase(store kv.Store) dhikrin.Usecase {
	svc := service.NewDhikrService(dhikrout.NewEmbeddedCatalog(), dhikrout.NewKVProgressStore(store), zerolog.Nop())
	return usecase.NewInteractor(svc)
}

func TestFreshState(t *testing.T) {
	t.Parallel()
	state, err := newUsecase(kv.NewMemoryStore()).State(context.Background())
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.ActiveTab != "morning" || state.Position != 1 || state.Total != 5 || state.Repetition != 1 || state.Required != 1 {
		t.Fatalf("unexpected fresh state: %+v", state)
	}
	if state.Morning.Completed != 0 || state.Evening.Total != 5 {
		t.Fatalf("unexpected summaries: %+v %+v", state.Morning, state.Evening)
	}
}

func TestAdvanceWritesThroughAndRehydrates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	uc := newUsecase(store)

	state, err := uc.Advance(ctx)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if state.Position != 2 || state.Repetition != 1 || state.Required != 3 || state.Morning.Completed != 1 {
		t.Fatalf("unexpected state after completing item 1: %+v", state)
	}
	if state, err = uc.Advance(ctx); err != nil || state.Repetition != 2 {
		t.Fatalf("expected repetition 2, got %+v err=%v", state, err)
	}

	if got := kv.Load[int](ctx, store, "currentIndex"); got != 1 {
		t.Fatalf("stored cursor = %d", got)
	}
	if got := kv.Load[int](ctx, store, "currentRepetition"); got != 2 {
		t.Fatalf("stored repetition = %d", got)
	}
	if items := kv.Load[[]domain.Item](ctx, store, "morningDhikr"); len(items) != 5 || !items[0].Completed {
		t.Fatalf("stored morning list wrong: %+v", items)
	}

	again, err := newUsecase(store).State(ctx)
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if again.Position != 2 || again.Repetition != 2 || !again.Items[0].Completed {
		t.Fatalf("rehydrated state differs: %+v", again)
	}
}

func TestCompletedItemRejectsAdvance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	uc := newUsecase(store)
	if _, err := uc.Advance(ctx); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := uc.Previous(ctx); err != nil {
		t.Fatalf("previous: %v", err)
	}
	_, err := uc.Advance(ctx)
	if !errors.Is(err, apperrors.ErrItemCompleted) {
		t.Fatalf("expected item completed, got %v", err)
	}
	state, _ := uc.State(ctx)
	if state.Position != 1 || state.Morning.Completed != 1 {
		t.Fatalf("rejected advance changed state: %+v", state)
	}
}

func TestSwitchTabAndResetAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(kv.NewMemoryStore())
	if _, err := uc.Advance(ctx); err != nil {
		t.Fatalf("advance: %v", err)
	}
	state, err := uc.SwitchTab(ctx, "evening")
	if err != nil {
		t.Fatalf("switch: %v", err)
	}
	if state.ActiveTab != "evening" || state.Position != 1 || state.Morning.Completed != 1 {
		t.Fatalf("unexpected state after switch: %+v", state)
	}
	if _, err := uc.Next(ctx); err != nil {
		t.Fatalf("next: %v", err)
	}
	state, err = uc.ResetAll(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if state.ActiveTab != "evening" || state.Position != 1 || state.Repetition != 1 {
		t.Fatalf("reset should rewind and keep tab: %+v", state)
	}
	if state.Morning.Completed != 0 || state.Evening.Completed != 0 {
		t.Fatalf("reset should clear completion: %+v %+v", state.Morning, state.Evening)
	}
	if _, err := uc.SwitchTab(ctx, "noon"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestMalformedStoredStateFallsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	_ = store.Set(ctx, "morningDhikr", []byte("oops"))
	_ = store.Set(ctx, "activeTab", []byte(`"midnight"`))
	_ = kv.Save(ctx, store, "currentIndex", 99)
	state, err := newUsecase(store).State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.ActiveTab != "morning" || state.Position != 5 || state.Morning.Completed != 0 {
		t.Fatalf("unexpected normalized state: %+v", state)
	}
}

func TestConcurrentAdvancesAreSerialized(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	uc := newUsecase(store)

	// item 1 needs one recitation and item 2 needs three
	const advances = 4
	var wg sync.WaitGroup
	for i := 0; i < advances; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Advance(ctx)
		}()
	}
	wg.Wait()

	state, err := newUsecase(store).State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Position != 3 || state.Morning.Completed != 2 {
		t.Fatalf("expected two completed items after %d advances, got %+v", advances, state)
	}
}
