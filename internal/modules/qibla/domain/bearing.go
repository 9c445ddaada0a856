package domain

import (
	"fmt"
	"math"

	apperrors "mihrab/internal/platform/errors"
)

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90,90]", apperrors.ErrInvalidInput, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180,180]", apperrors.ErrInvalidInput, c.Longitude)
	}
	return nil
}

var Kaaba = Coordinate{Latitude: 21.4225, Longitude: 39.8262}

// QiblaBearing returns the initial great-circle bearing from observer to the
// Kaaba in degrees clockwise from true north, in [0, 360).
//
// At the Kaaba itself the bearing is undefined; atan2(0, 0) yields 0 and that
// is what is returned.
func QiblaBearing(observer Coordinate) float64 {
	lat1 := radians(observer.Latitude)
	lat2 := radians(Kaaba.Latitude)
	dLon := radians(Kaaba.Longitude - observer.Longitude)

	y := math.Sin(dLon)
	x := math.Cos(lat1)*math.Tan(lat2) - math.Sin(lat1)*math.Cos(dLon)
	return Normalize(degrees(math.Atan2(y, x)))
}

// Normalize folds any angle into [0, 360).
func Normalize(deg float64) float64 {
	n := math.Mod(math.Mod(deg, 360)+360, 360)
	if n >= 360 {
		return 0
	}
	return n
}

// RelativeBearing is where the qibla sits relative to a device heading, both
// measured clockwise from north.
func RelativeBearing(bearing, heading float64) float64 {
	return Normalize(bearing - heading)
}

var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func CompassPoint(deg float64) string {
	idx := int(math.Floor(Normalize(deg)/22.5+0.5)) % len(compassPoints)
	return compassPoints[idx]
}

func IsKaaba(c Coordinate) bool {
	return c == Kaaba
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
