package domain

import (
	"fmt"
	"math"
	"strings"

	apperrors "mihrab/internal/platform/errors"
)

const Unknown = "Unknown"

// Location is the persisted shape under the savedLocation key.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}

type Fix struct {
	Latitude  float64
	Longitude float64
}

func ValidateFix(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", apperrors.ErrInvalidInput, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", apperrors.ErrInvalidInput, lon)
	}
	return nil
}

func (l Location) Validate() error {
	return ValidateFix(l.Latitude, l.Longitude)
}

// WithFallbacks fills blank city/country with Unknown.
func (l Location) WithFallbacks() Location {
	if strings.TrimSpace(l.City) == "" {
		l.City = Unknown
	}
	if strings.TrimSpace(l.Country) == "" {
		l.Country = Unknown
	}
	return l
}

func (l Location) Label() string {
	return l.City + ", " + l.Country
}

// CountryFromDisplayName takes the last comma-separated element of a
// geocoder display name, which is the country for place results.
func CountryFromDisplayName(displayName string) string {
	parts := strings.Split(displayName, ", ")
	last := strings.TrimSpace(parts[len(parts)-1])
	if last == "" {
		return Unknown
	}
	return last
}

// FirstNonEmpty returns the first non-blank value, or Unknown.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return Unknown
}
