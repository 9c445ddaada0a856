package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"mihrab/internal/modules/quran/domain"
	quranout "mihrab/internal/modules/quran/port/out"
	apperrors "mihrab/internal/platform/errors"
)

type Track struct {
	LanguageID int
	Reciter    domain.Reciter
	Moshaf     domain.Moshaf
	SurahID    int
	URL        string
}

type Overview struct {
	Languages  []domain.Language
	Default    domain.Language
	HasDefault bool
	Surahs     []domain.Surah
}

// DefaultMinTrack is the shortest run that counts as a finished track.
// Desktop openers hand the URL off and exit at once, and those exits must
// not trigger auto-advance.
const DefaultMinTrack = 10 * time.Second

type QuranService struct {
	reciters    quranout.ReciterCatalog
	chapters    quranout.ChapterCatalog
	player      quranout.Player
	log         zerolog.Logger
	autoAdvance bool
	minTrack    time.Duration

	mu         sync.Mutex
	current    *Track
	generation uint64
}

func NewQuranService(reciters quranout.ReciterCatalog, chapters quranout.ChapterCatalog, player quranout.Player, autoAdvance bool, log zerolog.Logger) *QuranService {
	return &QuranService{
		reciters:    reciters,
		chapters:    chapters,
		player:      player,
		autoAdvance: autoAdvance,
		minTrack:    DefaultMinTrack,
		log:         log,
	}
}

// WithMinTrack overrides DefaultMinTrack.
func (s *QuranService) WithMinTrack(d time.Duration) *QuranService {
	s.minTrack = d
	return s
}

func (s *QuranService) Languages(ctx context.Context) ([]domain.Language, error) {
	langs, err := s.reciters.Languages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCatalogUnavailable, err)
	}
	return langs, nil
}

func (s *QuranService) Reciters(ctx context.Context, languageID int, query string) ([]domain.Reciter, error) {
	reciters, err := s.reciters.Reciters(ctx, languageID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCatalogUnavailable, err)
	}
	return domain.FilterReciters(reciters, query), nil
}

func (s *QuranService) Surahs(ctx context.Context) ([]domain.Surah, error) {
	surahs, err := s.chapters.Surahs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCatalogUnavailable, err)
	}
	return surahs, nil
}

// Overview fetches the language and surah catalogs concurrently.
func (s *QuranService) Overview(ctx context.Context, appLanguage string) (Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		langs, err := s.Languages(gctx)
		out.Languages = langs
		return err
	})
	g.Go(func() error {
		surahs, err := s.Surahs(gctx)
		out.Surahs = surahs
		return err
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	out.Default, out.HasDefault = domain.DefaultLanguage(out.Languages, appLanguage)
	return out, nil
}

// Play resolves reciter and moshaf (the first one when moshafID is 0) and
// starts the surah, replacing whatever was playing.
func (s *QuranService) Play(ctx context.Context, languageID, reciterID, moshafID, surahID int) (Track, error) {
	if err := domain.ValidateSurah(surahID); err != nil {
		return Track{}, err
	}
	reciters, err := s.reciters.Reciters(ctx, languageID)
	if err != nil {
		return Track{}, fmt.Errorf("%w: %w", apperrors.ErrCatalogUnavailable, err)
	}
	reciter, ok := domain.FindReciter(reciters, reciterID)
	if !ok {
		return Track{}, fmt.Errorf("%w: reciter %d", apperrors.ErrNotFound, reciterID)
	}
	moshaf, ok := reciter.FindMoshaf(moshafID)
	if !ok {
		return Track{}, fmt.Errorf("%w: moshaf %d for reciter %d", apperrors.ErrNotFound, moshafID, reciterID)
	}
	if !moshaf.HasSurah(surahID) {
		return Track{}, fmt.Errorf("%w: surah %d is not in moshaf %d", apperrors.ErrNotFound, surahID, moshaf.ID)
	}
	return s.start(ctx, Track{LanguageID: languageID, Reciter: reciter, Moshaf: moshaf, SurahID: surahID})
}

func (s *QuranService) start(ctx context.Context, track Track) (Track, error) {
	url, err := domain.AudioURL(track.Moshaf, track.SurahID)
	if err != nil {
		return Track{}, err
	}
	track.URL = url

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.current = nil
	s.mu.Unlock()

	started := time.Now()
	done, err := s.player.Play(ctx, url)
	if err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("playback failed to start")
		if !errors.Is(err, apperrors.ErrPlaybackFailed) {
			err = fmt.Errorf("%w: %w", apperrors.ErrPlaybackFailed, err)
		}
		return Track{}, err
	}

	s.mu.Lock()
	if gen == s.generation {
		s.current = &track
	}
	s.mu.Unlock()
	go s.watch(gen, track, started, done)
	return track, nil
}

func (s *QuranService) watch(gen uint64, track Track, started time.Time, done <-chan error) {
	err := <-done
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.mu.Unlock()

	if err != nil {
		s.log.Warn().Err(err).Str("url", track.URL).Msg("playback ended with error")
		return
	}
	if !s.autoAdvance {
		return
	}
	if elapsed := time.Since(started); elapsed < s.minTrack {
		s.log.Info().Dur("elapsed", elapsed).Str("url", track.URL).Msg("player exited early, not advancing")
		return
	}
	next, ok := domain.NextSurah(track.Moshaf, track.SurahID)
	if !ok {
		return
	}
	track.SurahID = next
	if _, err := s.start(context.Background(), track); err != nil {
		s.log.Warn().Err(err).Int("surah", next).Msg("auto advance failed")
	}
}

func (s *QuranService) Stop() error {
	s.mu.Lock()
	s.generation++
	s.current = nil
	s.mu.Unlock()
	return s.player.Stop()
}

func (s *QuranService) Current() (Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Track{}, false
	}
	return *s.current, true
}
