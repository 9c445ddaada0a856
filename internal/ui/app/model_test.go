package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	dhikrdto "mihrab/internal/modules/dhikr/dto"
	locationdto "mihrab/internal/modules/location/dto"
	prayerdto "mihrab/internal/modules/prayer/dto"
	qibladto "mihrab/internal/modules/qibla/dto"
	qurandto "mihrab/internal/modules/quran/dto"
	settingsdto "mihrab/internal/modules/settings/dto"
	tasbihdto "mihrab/internal/modules/tasbih/dto"
	settingsview "mihrab/internal/ui/views/settings"
	tasbihview "mihrab/internal/ui/views/tasbih"
)

type fakePorts struct {
	incremented []string
}

func (f *fakePorts) Direction(context.Context, *float64, *float64, *float64) (qibladto.DirectionOutput, error) {
	return qibladto.DirectionOutput{Bearing: 119, Compass: "ESE"}, nil
}

func (f *fakePorts) Today(context.Context, *float64, *float64, *int) (prayerdto.TodayOutput, error) {
	return prayerdto.TodayOutput{Date: "01-01-2026"}, nil
}

func (f *fakePorts) State(context.Context) (tasbihdto.StateOutput, error) {
	return tasbihdto.StateOutput{}, nil
}

func (f *fakePorts) Increment(_ context.Context, phrase string) (tasbihdto.IncrementOutput, error) {
	f.incremented = append(f.incremented, phrase)
	return tasbihdto.IncrementOutput{Changed: true}, nil
}

func (f *fakePorts) ResetAll(context.Context) (tasbihdto.StateOutput, error) {
	return tasbihdto.StateOutput{}, nil
}

type fakeDhikr struct{}

func (fakeDhikr) State(context.Context) (dhikrdto.StateOutput, error) { return dhikrdto.StateOutput{}, nil }
func (fakeDhikr) SwitchTab(_ context.Context, tab string) (dhikrdto.StateOutput, error) {
	return dhikrdto.StateOutput{ActiveTab: tab}, nil
}
func (fakeDhikr) Next(context.Context) (dhikrdto.StateOutput, error)     { return dhikrdto.StateOutput{}, nil }
func (fakeDhikr) Previous(context.Context) (dhikrdto.StateOutput, error) { return dhikrdto.StateOutput{}, nil }
func (fakeDhikr) Advance(context.Context) (dhikrdto.StateOutput, error)  { return dhikrdto.StateOutput{}, nil }
func (fakeDhikr) ResetAll(context.Context) (dhikrdto.StateOutput, error) { return dhikrdto.StateOutput{}, nil }

type fakeQuran struct{}

func (fakeQuran) Overview(context.Context) (qurandto.OverviewOutput, error) {
	return qurandto.OverviewOutput{}, nil
}
func (fakeQuran) Reciters(context.Context, int, string) ([]qurandto.ReciterOutput, error) {
	return nil, nil
}
func (fakeQuran) Play(context.Context, int, int, int, int) (qurandto.PlaybackOutput, error) {
	return qurandto.PlaybackOutput{Playing: true}, nil
}
func (fakeQuran) Stop(context.Context) error { return nil }
func (fakeQuran) NowPlaying(context.Context) (qurandto.PlaybackOutput, error) {
	return qurandto.PlaybackOutput{}, nil
}

type fakeSettings struct{}

func (fakeSettings) Get(context.Context) (settingsdto.SettingsOutput, error) {
	return settingsdto.SettingsOutput{Language: "en", CalculationMethod: 2}, nil
}
func (fakeSettings) Update(_ context.Context, in settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	out := settingsdto.SettingsOutput{Language: "en", CalculationMethod: 2}
	if in.CalculationMethod != nil {
		out.CalculationMethod = *in.CalculationMethod
	}
	return out, nil
}
func (fakeSettings) Current(context.Context) (locationdto.LocationOutput, error) {
	return locationdto.LocationOutput{}, nil
}
func (fakeSettings) Detect(context.Context) (locationdto.LocationOutput, error) {
	return locationdto.LocationOutput{}, nil
}
func (fakeSettings) Search(context.Context, string) ([]locationdto.LocationOutput, error) {
	return nil, nil
}
func (fakeSettings) Select(_ context.Context, lat, lon float64, city, country string) (locationdto.LocationOutput, error) {
	return locationdto.LocationOutput{Latitude: lat, Longitude: lon, City: city, Country: country}, nil
}
func (fakeSettings) Clear(context.Context) error { return nil }

func newTestModel(t *testing.T) (Model, *fakePorts) {
	t.Helper()
	fp := &fakePorts{}
	m := NewModel(context.Background(), Ports{
		Qibla:    fp,
		Prayer:   fp,
		Tasbih:   fp,
		Dhikr:    fakeDhikr{},
		Quran:    fakeQuran{},
		Location: fakeSettings{},
		Settings: fakeSettings{},
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), fp
}

func TestTabKeysCycleThroughViews(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.activeTab != tabQibla {
		t.Fatalf("expected qibla tab, got %d", m.activeTab)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	if m.activeTab != tabSettings {
		t.Fatalf("expected wrap to settings tab, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "Settings") {
		t.Fatalf("expected settings view to render")
	}
}

func TestPaletteIncrementsTasbih(t *testing.T) {
	t.Parallel()
	m, fp := newTestModel(t)

	next, cmd := m.executePalette("tasbih:inc 2")
	m = next.(Model)
	if m.activeTab != tabTasbih {
		t.Fatalf("expected tasbih tab, got %d", m.activeTab)
	}
	if cmd == nil {
		t.Fatalf("expected increment command")
	}
	msg, ok := cmd().(tasbihview.IncrementedMsg)
	if !ok || msg.Err != nil {
		t.Fatalf("unexpected message %#v", msg)
	}
	if len(fp.incremented) != 1 || fp.incremented[0] != "2" {
		t.Fatalf("increment calls = %v", fp.incremented)
	}
}

func TestPaletteReportsUsage(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	for input, want := range map[string]string{
		"prayer:method x":   "usage: prayer:method <id>",
		"location:set 1":    "usage: location:set <lat> <lon> [city]",
		"settings:notify x": "usage: settings:notify <on|off>",
		"bogus":             "unknown command: bogus",
	} {
		next, cmd := m.executePalette(input)
		if cmd != nil {
			t.Fatalf("%q: expected no command", input)
		}
		if got := next.(Model).status; got != want {
			t.Fatalf("%q: status = %q, want %q", input, got, want)
		}
	}
}

func TestLocationChangeUpdatesStatus(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	next, cmd := m.Update(settingsview.LocationMsg{
		Location: locationdto.LocationOutput{City: "Makkah", Country: "Saudi Arabia"},
		Changed:  true,
	})
	if cmd == nil {
		t.Fatalf("expected reload commands")
	}
	if got := next.(Model).status; got != "location: Makkah, Saudi Arabia" {
		t.Fatalf("status = %q", got)
	}
}

func TestQuitKey(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}
