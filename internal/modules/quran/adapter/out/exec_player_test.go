package out_test

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"

	quranout "mihrab/internal/modules/quran/adapter/out"
	apperrors "mihrab/internal/platform/errors"
)

func TestExecPlayerUnknownBinary(t *testing.T) {
	t.Parallel()
	player := quranout.NewExecPlayer("mihrab-no-such-player-binary", zerolog.Nop())
	_, err := player.Play(context.Background(), "https://example.invalid/001.mp3")
	if !errors.Is(err, apperrors.ErrPlaybackFailed) {
		t.Fatalf("expected playback failed, got %v", err)
	}
}

func TestExecPlayerStopKillsProcess(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("uses sleep")
	}
	// the URL lands as the last argument, so "sleep" receives the duration
	player := quranout.NewExecPlayer("sleep", zerolog.Nop())
	done, err := player.Play(context.Background(), "30")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if err := player.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("killed player should report an exit error")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("player did not exit after stop")
	}
	if err := player.Stop(); err != nil {
		t.Fatalf("second stop should be a no-op: %v", err)
	}
}

func TestExecPlayerCleanExit(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("uses sleep")
	}
	player := quranout.NewExecPlayer("sleep", zerolog.Nop())
	done, err := player.Play(context.Background(), "0")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean exit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("player did not finish")
	}
}

func TestExecPlayerCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := quranout.NewExecPlayer("sleep", zerolog.Nop()).Play(ctx, "1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
