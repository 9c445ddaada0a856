package usecase

import (
	"context"

	"mihrab/internal/modules/location/domain"
	locationdto "mihrab/internal/modules/location/dto"
	locationin "mihrab/internal/modules/location/port/in"
	"mihrab/internal/modules/location/service"
)

type Interactor struct {
	svc *service.LocationService
}

func NewInteractor(svc *service.LocationService) locationin.Usecase {
	return &Interactor{svc: svc}
}

// Current prefers the saved location and falls back to device detection.
func (i *Interactor) Current(ctx context.Context) (locationdto.LocationOutput, error) {
	if loc, ok := i.svc.Saved(ctx); ok {
		return toOutput(loc, locationdto.SourceSaved), nil
	}
	loc, err := i.svc.Detect(ctx)
	if err != nil {
		return locationdto.LocationOutput{}, err
	}
	return toOutput(loc, locationdto.SourceDevice), nil
}

func (i *Interactor) Detect(ctx context.Context) (locationdto.LocationOutput, error) {
	loc, err := i.svc.Detect(ctx)
	if err != nil {
		return locationdto.LocationOutput{}, err
	}
	return toOutput(loc, locationdto.SourceDevice), nil
}

func (i *Interactor) Search(ctx context.Context, query string) ([]locationdto.LocationOutput, error) {
	results, err := i.svc.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]locationdto.LocationOutput, 0, len(results))
	for _, r := range results {
		out = append(out, toOutput(r, locationdto.SourceSearch))
	}
	return out, nil
}

func (i *Interactor) Select(ctx context.Context, input locationdto.SelectInput) (locationdto.LocationOutput, error) {
	loc, err := i.svc.Select(ctx, domain.Location{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		City:      input.City,
		Country:   input.Country,
	})
	if err != nil {
		return locationdto.LocationOutput{}, err
	}
	return toOutput(loc, locationdto.SourceManual), nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func toOutput(loc domain.Location, source string) locationdto.LocationOutput {
	return locationdto.LocationOutput{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		City:      loc.City,
		Country:   loc.Country,
		Source:    source,
	}
}
