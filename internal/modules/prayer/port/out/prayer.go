package out

import (
	"context"
	"time"

	"mihrab/internal/modules/prayer/domain"
)

type TimingsProvider interface {
	Timings(ctx context.Context, date time.Time, latitude, longitude float64, method int) (domain.Timings, error)
	Methods(ctx context.Context) ([]domain.Method, error)
}

type Place struct {
	Latitude  float64
	Longitude float64
	City      string
	Country   string
}

type PlaceSource interface {
	Current(ctx context.Context) (Place, error)
}

type MethodPreference interface {
	CalculationMethod(ctx context.Context) (int, error)
}
