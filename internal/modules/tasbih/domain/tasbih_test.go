package domain_test

import (
	"errors"
	"testing"

	"mihrab/internal/modules/tasbih/domain"
	apperrors "mihrab/internal/platform/errors"
)

func TestCounterCompletesAtTarget(t *testing.T) {
	t.Parallel()
	c := domain.Counter{}
	for i := 1; i <= domain.Target; i++ {
		var changed bool
		c, changed = c.Increment()
		if !changed {
			t.Fatalf("increment %d should change the counter", i)
		}
		if c.Count != i {
			t.Fatalf("expected count %d, got %d", i, c.Count)
		}
		if c.Completed != (i == domain.Target) {
			t.Fatalf("completed flag wrong at %d: %+v", i, c)
		}
	}
	for i := 0; i < 5; i++ {
		var changed bool
		c, changed = c.Increment()
		if changed || c.Count != domain.Target || !c.Completed {
			t.Fatalf("completed counter must be frozen, got %+v changed=%v", c, changed)
		}
	}
}

func TestCounterNormalize(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in, want domain.Counter
	}{
		{domain.Counter{Count: -4}, domain.Counter{}},
		{domain.Counter{Count: 10, Completed: true}, domain.Counter{Count: 10}},
		{domain.Counter{Count: 33}, domain.Counter{Count: 33, Completed: true}},
		{domain.Counter{Count: 90, Completed: true}, domain.Counter{Count: 33, Completed: true}},
	}
	for _, tc := range cases {
		if got := tc.in.Normalize(); got != tc.want {
			t.Fatalf("Normalize(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestSetIncrementIsIndependent(t *testing.T) {
	t.Parallel()
	set := domain.NewSet(domain.Counter{Count: 5}, domain.Counter{Count: 32}, domain.Counter{})
	set, changed, err := set.Increment(domain.Alhamdulillah)
	if err != nil || !changed {
		t.Fatalf("increment: changed=%v err=%v", changed, err)
	}
	if got := set.Get(domain.Alhamdulillah); got.Count != 33 || !got.Completed {
		t.Fatalf("expected alhamdulillah complete, got %+v", got)
	}
	if set.Get(domain.SubhanAllah).Count != 5 || set.Get(domain.AllahuAkbar).Count != 0 {
		t.Fatalf("other counters changed: %+v %+v", set.Get(domain.SubhanAllah), set.Get(domain.AllahuAkbar))
	}
	if _, _, err := set.Increment("tahlil"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown phrase, got %v", err)
	}
}

func TestSetResetAll(t *testing.T) {
	t.Parallel()
	set := domain.NewSet(domain.Counter{Count: 33, Completed: true}, domain.Counter{Count: 12}, domain.Counter{Count: 33})
	if set.AllCompleted() {
		t.Fatalf("alhamdulillah is incomplete, set must not be complete")
	}
	set = set.ResetAll()
	for _, p := range domain.Phrases {
		if c := set.Get(p); c.Count != 0 || c.Completed {
			t.Fatalf("%s not reset: %+v", p, c)
		}
	}
	if set.Total() != 0 {
		t.Fatalf("expected zero total after reset")
	}
}

func TestParsePhrase(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]domain.Phrase{
		"subhanAllah":   domain.SubhanAllah,
		"ALHAMDULILLAH": domain.Alhamdulillah,
		" allahuakbar ": domain.AllahuAkbar,
		"1":             domain.SubhanAllah,
		"3":             domain.AllahuAkbar,
	} {
		got, err := domain.ParsePhrase(in)
		if err != nil || got != want {
			t.Fatalf("ParsePhrase(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := domain.ParsePhrase("4"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if domain.AllahuAkbar.Info().Meaning != "Allah is the Greatest" {
		t.Fatalf("unexpected phrase info")
	}
}
