package out

import (
	"context"

	"mihrab/internal/modules/location/domain"
)

type Geocoder interface {
	Search(ctx context.Context, query string) ([]domain.Location, error)
	Reverse(ctx context.Context, fix domain.Fix) (domain.Location, error)
}

type DeviceLocator interface {
	Locate(ctx context.Context) (domain.Fix, error)
}

type LocationStore interface {
	Load(ctx context.Context) (domain.Location, bool)
	Save(ctx context.Context, location domain.Location) error
	Clear(ctx context.Context) error
}
