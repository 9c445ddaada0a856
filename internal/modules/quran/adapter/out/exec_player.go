package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	quranout "mihrab/internal/modules/quran/port/out"
	apperrors "mihrab/internal/platform/errors"
)

type playerCommand struct {
	name string
	args []string
}

// ExecPlayer hands the stream URL to an external audio player process.
type ExecPlayer struct {
	candidates []playerCommand
	lookPath   func(string) (string, error)
	log        zerolog.Logger

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewExecPlayer uses the configured player when set and otherwise the first
// of mpv, ffplay or the desktop opener found on PATH.
func NewExecPlayer(configured string, log zerolog.Logger) quranout.Player {
	return &ExecPlayer{candidates: candidates(configured), lookPath: exec.LookPath, log: log}
}

func candidates(configured string) []playerCommand {
	if fields := strings.Fields(configured); len(fields) > 0 {
		return []playerCommand{{name: fields[0], args: fields[1:]}}
	}
	out := []playerCommand{
		{name: "mpv", args: []string{"--no-video", "--really-quiet"}},
		{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	}
	switch runtime.GOOS {
	case "darwin":
		out = append(out, playerCommand{name: "open"})
	case "linux":
		out = append(out, playerCommand{name: "xdg-open"})
	}
	return out
}

func (p *ExecPlayer) Play(ctx context.Context, url string) (<-chan error, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.Stop(); err != nil {
		p.log.Debug().Err(err).Msg("stopping previous playback")
	}

	var lastErr error
	for _, c := range p.candidates {
		path, err := p.lookPath(c.name)
		if err != nil {
			lastErr = err
			continue
		}
		// Playback outlives the request that started it, so ctx is not bound
		// to the process.
		cmd := exec.Command(path, append(append([]string(nil), c.args...), url)...)
		if err := cmd.Start(); err != nil {
			lastErr = err
			continue
		}
		p.log.Debug().Str("player", c.name).Str("url", url).Int("pid", cmd.Process.Pid).Msg("playback started")

		p.mu.Lock()
		p.cmd = cmd
		p.mu.Unlock()

		done := make(chan error, 1)
		go func() {
			err := cmd.Wait()
			p.mu.Lock()
			if p.cmd == cmd {
				p.cmd = nil
			}
			p.mu.Unlock()
			done <- err
			close(done)
		}()
		return done, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no player configured")
	}
	return nil, fmt.Errorf("%w: %w", apperrors.ErrPlaybackFailed, lastErr)
}

// Stop kills the running player, if any.
func (p *ExecPlayer) Stop() error {
	p.mu.Lock()
	cmd := p.cmd
	p.cmd = nil
	p.mu.Unlock()
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stop player: %w", err)
	}
	return nil
}
