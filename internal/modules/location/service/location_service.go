package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"mihrab/internal/modules/location/domain"
	locationout "mihrab/internal/modules/location/port/out"
	apperrors "mihrab/internal/platform/errors"
)

type LocationService struct {
	geocoder locationout.Geocoder
	locator  locationout.DeviceLocator
	store    locationout.LocationStore
	log      zerolog.Logger
}

func NewLocationService(geocoder locationout.Geocoder, locator locationout.DeviceLocator, store locationout.LocationStore, log zerolog.Logger) *LocationService {
	return &LocationService{geocoder: geocoder, locator: locator, store: store, log: log}
}

// Saved returns the persisted location when it is present and well formed.
func (s *LocationService) Saved(ctx context.Context) (domain.Location, bool) {
	loc, ok := s.store.Load(ctx)
	if !ok {
		return domain.Location{}, false
	}
	if err := loc.Validate(); err != nil {
		s.log.Debug().Err(err).Msg("discarding saved location")
		return domain.Location{}, false
	}
	return loc.WithFallbacks(), true
}

// Detect takes a device fix, reverse geocodes it and saves the result.
func (s *LocationService) Detect(ctx context.Context) (domain.Location, error) {
	if s.locator == nil {
		return domain.Location{}, fmt.Errorf("%w: no device locator", apperrors.ErrLocationUnavailable)
	}
	fix, err := s.locator.Locate(ctx)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: %w", apperrors.ErrLocationUnavailable, err)
	}
	if err := domain.ValidateFix(fix.Latitude, fix.Longitude); err != nil {
		return domain.Location{}, fmt.Errorf("%w: %w", apperrors.ErrLocationUnavailable, err)
	}
	if s.geocoder == nil {
		return domain.Location{}, fmt.Errorf("%w: no geocoder", apperrors.ErrLocationUnavailable)
	}
	loc, err := s.geocoder.Reverse(ctx, fix)
	if err != nil {
		s.log.Warn().Err(err).Float64("lat", fix.Latitude).Float64("lon", fix.Longitude).Msg("reverse geocode failed")
		return domain.Location{}, fmt.Errorf("%w: reverse geocode: %w", apperrors.ErrLocationUnavailable, err)
	}
	loc.Latitude = fix.Latitude
	loc.Longitude = fix.Longitude
	loc = loc.WithFallbacks()
	if err := s.store.Save(ctx, loc); err != nil {
		return domain.Location{}, err
	}
	return loc, nil
}

func (s *LocationService) Search(ctx context.Context, query string) ([]domain.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if s.geocoder == nil {
		return nil, fmt.Errorf("%w: no geocoder", apperrors.ErrLocationUnavailable)
	}
	results, err := s.geocoder.Search(ctx, query)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("location search failed")
		return nil, fmt.Errorf("%w: search: %w", apperrors.ErrLocationUnavailable, err)
	}
	out := make([]domain.Location, 0, len(results))
	for _, r := range results {
		if r.Validate() != nil {
			continue
		}
		out = append(out, r.WithFallbacks())
	}
	return out, nil
}

// Select saves a chosen location. A missing city is filled by reverse
// geocoding when possible and Unknown otherwise.
func (s *LocationService) Select(ctx context.Context, loc domain.Location) (domain.Location, error) {
	if err := loc.Validate(); err != nil {
		return domain.Location{}, err
	}
	if strings.TrimSpace(loc.City) == "" && s.geocoder != nil {
		named, err := s.geocoder.Reverse(ctx, domain.Fix{Latitude: loc.Latitude, Longitude: loc.Longitude})
		if err != nil {
			s.log.Warn().Err(err).Msg("reverse geocode for selection failed")
		} else {
			loc.City = named.City
			if strings.TrimSpace(loc.Country) == "" {
				loc.Country = named.Country
			}
		}
	}
	loc = loc.WithFallbacks()
	if err := s.store.Save(ctx, loc); err != nil {
		return domain.Location{}, err
	}
	return loc, nil
}

func (s *LocationService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
