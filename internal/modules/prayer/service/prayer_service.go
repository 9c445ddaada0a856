package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"mihrab/internal/modules/prayer/domain"
	prayerout "mihrab/internal/modules/prayer/port/out"
	"mihrab/internal/platform/clock"
	apperrors "mihrab/internal/platform/errors"
)

type PrayerService struct {
	provider prayerout.TimingsProvider
	clock    clock.Clock
	log      zerolog.Logger
}

func NewPrayerService(provider prayerout.TimingsProvider, clk clock.Clock, log zerolog.Logger) *PrayerService {
	return &PrayerService{provider: provider, clock: clk, log: log}
}

type Day struct {
	Timings domain.Timings
	Next    domain.Upcoming
	HasNext bool
	Method  int
}

func (s *PrayerService) Today(ctx context.Context, latitude, longitude float64, method int) (Day, error) {
	if err := domain.ValidateCoordinate(latitude, longitude); err != nil {
		return Day{}, err
	}
	now := s.clock.Now()
	timings, err := s.provider.Timings(ctx, now, latitude, longitude, method)
	if err != nil {
		s.log.Warn().Err(err).Float64("lat", latitude).Float64("lon", longitude).Int("method", method).Msg("prayer times fetch failed")
		return Day{}, fmt.Errorf("%w: %w", apperrors.ErrPrayerTimesUnavailable, err)
	}
	next, ok := domain.NextPrayer(timings, now)
	return Day{Timings: timings, Next: next, HasNext: ok, Method: method}, nil
}

func (s *PrayerService) Methods(ctx context.Context) ([]domain.Method, error) {
	methods, err := s.provider.Methods(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("calculation methods fetch failed")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrPrayerTimesUnavailable, err)
	}
	return methods, nil
}
