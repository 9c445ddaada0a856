package out

import (
	"context"
	"errors"

	"mihrab/internal/modules/location/domain"
	locationout "mihrab/internal/modules/location/port/out"
)

var errNoFix = errors.New("no device fix configured (set location.latitude/location.longitude or pass --fix <lat>,<lon>)")

// FixedLocator reports a fix supplied by configuration or flags.
type FixedLocator struct {
	fix    domain.Fix
	hasFix bool
}

func NewFixedLocator(hasFix bool, latitude, longitude float64) locationout.DeviceLocator {
	return &FixedLocator{fix: domain.Fix{Latitude: latitude, Longitude: longitude}, hasFix: hasFix}
}

func (l *FixedLocator) Locate(context.Context) (domain.Fix, error) {
	if !l.hasFix {
		return domain.Fix{}, errNoFix
	}
	return l.fix, nil
}
