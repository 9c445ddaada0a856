package out

import (
	"context"

	locationin "mihrab/internal/modules/location/port/in"
	prayerout "mihrab/internal/modules/prayer/port/out"
)

type LocationPlaceAdapter struct {
	location locationin.Usecase
}

func NewLocationPlaceAdapter(location locationin.Usecase) prayerout.PlaceSource {
	return &LocationPlaceAdapter{location: location}
}

func (a *LocationPlaceAdapter) Current(ctx context.Context) (prayerout.Place, error) {
	loc, err := a.location.Current(ctx)
	if err != nil {
		return prayerout.Place{}, err
	}
	return prayerout.Place{Latitude: loc.Latitude, Longitude: loc.Longitude, City: loc.City, Country: loc.Country}, nil
}
