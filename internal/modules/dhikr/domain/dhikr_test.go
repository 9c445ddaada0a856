package domain_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"mihrab/internal/modules/dhikr/domain"
	apperrors "mihrab/internal/platform/errors"
)

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Morning: []domain.Item{
			{ID: 1, Arabic: "a1", Repetitions: 1},
			{ID: 2, Arabic: "a2", Repetitions: 3},
			{ID: 3, Arabic: "a3", Repetitions: 2},
		},
		Evening: []domain.Item{
			{ID: 1, Arabic: "e1", Repetitions: 1},
			{ID: 2, Arabic: "e2", Repetitions: 3},
		},
	}
}

func TestAdvanceCompletesAfterRequiredRepetitions(t *testing.T) {
	t.Parallel()
	p := domain.NewProgress(testCatalog()).Next()
	if p.Cursor != 1 || p.Repetition != 1 {
		t.Fatalf("unexpected session after next: %+v", p.Session)
	}
	var err error
	for i := 0; i < 3; i++ {
		p, err = p.Advance()
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if !p.Morning[1].Completed {
		t.Fatalf("item 2 should be completed")
	}
	if p.Cursor != 2 || p.Repetition != 1 {
		t.Fatalf("expected cursor to move to 2 with repetition 1, got %+v", p.Session)
	}
	if p.Morning[0].Completed || p.Morning[2].Completed {
		t.Fatalf("only the advanced item may complete: %+v", p.Morning)
	}
}

func TestAdvanceOnLastItemKeepsCursor(t *testing.T) {
	t.Parallel()
	p := domain.NewProgress(testCatalog())
	p, _ = p.SwitchTab(domain.Evening)
	p = p.Next()
	var err error
	for i := 0; i < 3; i++ {
		if p, err = p.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if !p.Evening[1].Completed || p.Cursor != 1 {
		t.Fatalf("last item should complete in place: %+v %+v", p.Session, p.Evening)
	}
	before := p
	after, err := p.Advance()
	if !errors.Is(err, apperrors.ErrItemCompleted) {
		t.Fatalf("expected item completed error, got %v", err)
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("rejected advance changed state (-before +after):\n%s", diff)
	}
}

func TestAdvanceDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()
	p := domain.NewProgress(testCatalog())
	next, err := p.Advance()
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if p.Morning[0].Completed {
		t.Fatalf("original progress was mutated")
	}
	if !next.Morning[0].Completed || next.Cursor != 1 {
		t.Fatalf("unexpected advanced progress: %+v", next.Session)
	}
}

func TestNextPreviousClampAtBounds(t *testing.T) {
	t.Parallel()
	p := domain.NewProgress(testCatalog())
	if got := p.Previous(); got.Cursor != 0 {
		t.Fatalf("previous at start moved to %d", got.Cursor)
	}
	p = p.Next().Next().Next().Next()
	if p.Cursor != 2 {
		t.Fatalf("next should clamp at last index, got %d", p.Cursor)
	}
	p, _ = p.Advance()
	if p.Repetition != 2 {
		t.Fatalf("expected repetition 2, got %d", p.Repetition)
	}
	if same := p.Next(); same.Repetition != 2 {
		t.Fatalf("no-op next must keep repetition, got %d", same.Repetition)
	}
	if moved := p.Previous(); moved.Cursor != 1 || moved.Repetition != 1 {
		t.Fatalf("previous should reset repetition: %+v", moved.Session)
	}
}

func TestSwitchTabResetsCursor(t *testing.T) {
	t.Parallel()
	p := domain.NewProgress(testCatalog()).Next()
	p, _ = p.Advance()
	p, err := p.SwitchTab(domain.Evening)
	if err != nil {
		t.Fatalf("switch: %v", err)
	}
	want := domain.Session{ActiveTab: domain.Evening, Cursor: 0, Repetition: 1}
	if p.Session != want {
		t.Fatalf("got %+v want %+v", p.Session, want)
	}
	if _, err := p.SwitchTab("night"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestResetAllKeepsActiveTab(t *testing.T) {
	t.Parallel()
	p := domain.NewProgress(testCatalog())
	p, _ = p.Advance()
	p, _ = p.SwitchTab(domain.Evening)
	p, _ = p.Advance()
	p = p.ResetAll()
	if p.ActiveTab != domain.Evening || p.Cursor != 0 || p.Repetition != 1 {
		t.Fatalf("unexpected session after reset: %+v", p.Session)
	}
	if p.CompletedCount(domain.Morning) != 0 || p.CompletedCount(domain.Evening) != 0 {
		t.Fatalf("completion flags survived reset")
	}
}

func TestRestoreReconcilesAndClamps(t *testing.T) {
	t.Parallel()
	snap := domain.Snapshot{
		Morning: []domain.Item{
			{ID: 2, Arabic: "stale text", Repetitions: 99, Completed: true},
			{ID: 42, Completed: true},
		},
		ActiveTab:  "night",
		Cursor:     17,
		Repetition: 9,
	}
	p := domain.Restore(testCatalog(), snap)
	want := domain.Progress{
		Session: domain.Session{ActiveTab: domain.Morning, Cursor: 2, Repetition: 2},
		Morning: []domain.Item{
			{ID: 1, Arabic: "a1", Repetitions: 1},
			{ID: 2, Arabic: "a2", Repetitions: 3, Completed: true},
			{ID: 3, Arabic: "a3", Repetitions: 2},
		},
		Evening: []domain.Item{
			{ID: 1, Arabic: "e1", Repetitions: 1},
			{ID: 2, Arabic: "e2", Repetitions: 3},
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("restore mismatch (-want +got):\n%s", diff)
	}

	empty := domain.Restore(testCatalog(), domain.Snapshot{Cursor: -3})
	if empty.Session != (domain.Session{ActiveTab: domain.Morning, Cursor: 0, Repetition: 1}) {
		t.Fatalf("empty snapshot should give a fresh session, got %+v", empty.Session)
	}
}

func TestCatalogValidate(t *testing.T) {
	t.Parallel()
	if err := testCatalog().Validate(); err != nil {
		t.Fatalf("valid catalog rejected: %v", err)
	}
	bad := testCatalog()
	bad.Evening = append(bad.Evening, domain.Item{ID: 1, Repetitions: 1})
	if err := bad.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("duplicate id should fail, got %v", err)
	}
	bad = testCatalog()
	bad.Morning[0].Repetitions = 0
	if err := bad.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("zero repetitions should fail, got %v", err)
	}
	if err := (domain.Catalog{Morning: testCatalog().Morning}).Validate(); err == nil {
		t.Fatalf("empty evening list should fail")
	}
}

func TestParseTab(t *testing.T) {
	t.Parallel()
	if tab, err := domain.ParseTab(" Evening "); err != nil || tab != domain.Evening {
		t.Fatalf("ParseTab: %q %v", tab, err)
	}
	if _, err := domain.ParseTab("noon"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
