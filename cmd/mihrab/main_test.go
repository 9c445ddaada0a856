package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func run(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data-dir", dataDir, "--backend", "file"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTasbihCommandsPersistAcrossInvocations(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	for i := 0; i < 2; i++ {
		if _, err := run(t, dir, "tasbih", "inc", "1"); err != nil {
			t.Fatalf("tasbih inc: %v", err)
		}
	}
	out, err := run(t, dir, "tasbih", "show")
	if err != nil {
		t.Fatalf("tasbih show: %v", err)
	}
	if !strings.Contains(out, " 2/33") {
		t.Fatalf("expected 2/33 in output, got:\n%s", out)
	}

	out, err = run(t, dir, "tasbih", "reset")
	if err != nil {
		t.Fatalf("tasbih reset: %v", err)
	}
	if strings.Contains(out, " 2/33") {
		t.Fatalf("expected counters reset, got:\n%s", out)
	}
}

func TestTasbihRejectsUnknownPhrase(t *testing.T) {
	t.Parallel()
	if _, err := run(t, t.TempDir(), "tasbih", "inc", "7"); err == nil {
		t.Fatalf("expected error for unknown phrase")
	}
}

func TestDhikrAdvanceAndJSON(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if _, err := run(t, dir, "dhikr", "tab", "evening"); err != nil {
		t.Fatalf("dhikr tab: %v", err)
	}
	if _, err := run(t, dir, "dhikr", "advance"); err != nil {
		t.Fatalf("dhikr advance: %v", err)
	}
	out, err := run(t, dir, "--json", "dhikr", "show")
	if err != nil {
		t.Fatalf("dhikr show: %v", err)
	}
	if !strings.Contains(out, `"activeTab": "evening"`) {
		t.Fatalf("expected evening tab, got:\n%s", out)
	}
	if !strings.Contains(out, `"position": 2`) {
		t.Fatalf("expected cursor on second item after completing the first, got:\n%s", out)
	}
}

func TestQiblaExplicitCoordinate(t *testing.T) {
	t.Parallel()
	out, err := run(t, t.TempDir(), "qibla", "--lat", "51.5074", "--lon", "-0.1278")
	if err != nil {
		t.Fatalf("qibla: %v", err)
	}
	if !strings.Contains(out, "qibla: 119.0°") {
		t.Fatalf("unexpected qibla output:\n%s", out)
	}

	out, err = run(t, t.TempDir(), "qibla", "--lat", "21.4225", "--lon", "39.8262")
	if err != nil {
		t.Fatalf("qibla at kaaba: %v", err)
	}
	if !strings.Contains(out, "Kaaba") {
		t.Fatalf("expected Kaaba message, got:\n%s", out)
	}
}

func TestQiblaNegativeCoordinates(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"sydney", []string{"--lat", "-33.8688", "--lon", "151.2093"}, "qibla: 277.5° W"},
		{"new york", []string{"--lat", "40.7128", "--lon", "-74.0060"}, "qibla: 58.5° ENE"},
		{"equals form", []string{"--lat=-33.8688", "--lon=151.2093"}, "qibla: 277.5°"},
	}
	for _, tc := range cases {
		out, err := run(t, t.TempDir(), append([]string{"qibla"}, tc.args...)...)
		if err != nil {
			t.Fatalf("%s: qibla: %v", tc.name, err)
		}
		if !strings.Contains(out, tc.want) {
			t.Fatalf("%s: expected %q, got:\n%s", tc.name, tc.want, out)
		}
	}
}

func TestQiblaUsesSavedLocation(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if _, err := run(t, dir, "location", "set", "--lat", "51.5074", "--lon", "-0.1278", "--city", "London", "--country", "United Kingdom"); err != nil {
		t.Fatalf("location set: %v", err)
	}
	out, err := run(t, dir, "qibla", "--heading", "90")
	if err != nil {
		t.Fatalf("qibla: %v", err)
	}
	if !strings.Contains(out, "qibla: 119.0°") || !strings.Contains(out, "London, United Kingdom") {
		t.Fatalf("unexpected qibla output:\n%s", out)
	}
	if !strings.Contains(out, "turn: 29.0°") {
		t.Fatalf("expected relative turn, got:\n%s", out)
	}
}

func TestArgumentValidation(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cases := [][]string{
		{"qibla", "51.5", "-0.1"},
		{"qibla", "--lat", "51.5"},
		{"qibla", "--lon", "-0.1"},
		{"prayer", "today", "--lat", "-6.2"},
		{"prayer", "today", "-6.2", "106.8"},
		{"--fix", "51.5", "qibla"},
		{"settings", "set"},
		{"location", "set", "--lat", "10"},
		{"quran", "play", "--surah", "1"},
		{"--backend", "nope", "settings", "show"},
	}
	for _, args := range cases {
		if _, err := run(t, dir, args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestSettingsAndLocationCommands(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	out, err := run(t, dir, "settings", "set", "--method", "4", "--language", "AR")
	if err != nil {
		t.Fatalf("settings set: %v", err)
	}
	if !strings.Contains(out, "language: ar") || !strings.Contains(out, "method: 4") {
		t.Fatalf("unexpected settings output:\n%s", out)
	}

	if _, err := run(t, dir, "location", "set", "--lat", "21.4225", "--lon", "39.8262", "--city", "Makkah"); err != nil {
		t.Fatalf("location set: %v", err)
	}
	out, err = run(t, dir, "location", "show")
	if err != nil {
		t.Fatalf("location show: %v", err)
	}
	if !strings.Contains(out, "Makkah") {
		t.Fatalf("expected saved city, got:\n%s", out)
	}
}

func TestParsePair(t *testing.T) {
	t.Parallel()
	lat, lon, err := parsePair(" 21.4 , 39.8 ")
	if err != nil {
		t.Fatalf("parsePair: %v", err)
	}
	if lat != 21.4 || lon != 39.8 {
		t.Fatalf("parsePair = %v,%v", lat, lon)
	}
}
