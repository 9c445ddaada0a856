package out

import (
	"context"

	locationin "mihrab/internal/modules/location/port/in"
	"mihrab/internal/modules/qibla/domain"
	qiblaout "mihrab/internal/modules/qibla/port/out"
)

type LocationObserverAdapter struct {
	location locationin.Usecase
}

func NewLocationObserverAdapter(location locationin.Usecase) qiblaout.ObserverSource {
	return &LocationObserverAdapter{location: location}
}

func (a *LocationObserverAdapter) Current(ctx context.Context) (qiblaout.Observer, error) {
	loc, err := a.location.Current(ctx)
	if err != nil {
		return qiblaout.Observer{}, err
	}
	return qiblaout.Observer{
		Coordinate: domain.Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude},
		City:       loc.City,
		Country:    loc.Country,
	}, nil
}
