package dhikr_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	dhikrdto "mihrab/internal/modules/dhikr/dto"
	"mihrab/internal/ui/views/dhikr"
)

func TestItemMarkdown(t *testing.T) {
	t.Parallel()

	md := dhikr.ItemMarkdown(dhikrdto.ItemOutput{
		Arabic:          "سُبْحَانَ اللهِ",
		Transliteration: "SubhanAllah",
		Translation:     "Glory be to Allah",
		Repetitions:     3,
	})
	for _, want := range []string{"## سُبْحَانَ اللهِ", "*SubhanAllah*", "Glory be to Allah", "Recite 3 times"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}

	single := dhikr.ItemMarkdown(dhikrdto.ItemOutput{Arabic: "x", Translation: "y", Repetitions: 1})
	if strings.Contains(single, "Recite") || strings.Contains(single, "**") {
		t.Fatalf("unexpected markdown for a single recitation:\n%s", single)
	}
}

type fakePort struct {
	advances int
}

func (f *fakePort) State(context.Context) (dhikrdto.StateOutput, error) {
	return dhikrdto.StateOutput{}, nil
}

func (f *fakePort) SwitchTab(context.Context, string) (dhikrdto.StateOutput, error) {
	return dhikrdto.StateOutput{}, nil
}

func (f *fakePort) Next(context.Context) (dhikrdto.StateOutput, error) {
	return dhikrdto.StateOutput{}, nil
}

func (f *fakePort) Previous(context.Context) (dhikrdto.StateOutput, error) {
	return dhikrdto.StateOutput{}, nil
}

func (f *fakePort) Advance(context.Context) (dhikrdto.StateOutput, error) {
	f.advances++
	return dhikrdto.StateOutput{}, nil
}

func (f *fakePort) ResetAll(context.Context) (dhikrdto.StateOutput, error) {
	return dhikrdto.StateOutput{}, nil
}

func TestEnterIsIgnoredOnCompletedItem(t *testing.T) {
	t.Parallel()
	port := &fakePort{}
	m := dhikr.New(context.Background(), port)
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m, _ = m.Update(dhikr.StateMsg{State: dhikrdto.StateOutput{
		Position: 1, Total: 5, Current: dhikrdto.ItemOutput{Arabic: "x", Completed: true},
	}})
	if _, cmd := m.Update(enter); cmd != nil {
		t.Fatalf("expected no command for a completed item")
	}
	if strings.Contains(m.View(), "enter count") {
		t.Fatalf("completed item should not offer the count key")
	}

	m, _ = m.Update(dhikr.StateMsg{State: dhikrdto.StateOutput{
		Position: 2, Total: 5, Repetition: 1, Required: 3, Current: dhikrdto.ItemOutput{Arabic: "y", Repetitions: 3},
	}})
	_, cmd := m.Update(enter)
	if cmd == nil {
		t.Fatalf("expected an advance command for an open item")
	}
	if msg, ok := cmd().(dhikr.StateMsg); !ok || msg.Err != nil {
		t.Fatalf("unexpected advance result %#v", msg)
	}
	if port.advances != 1 {
		t.Fatalf("expected one advance, got %d", port.advances)
	}
}
