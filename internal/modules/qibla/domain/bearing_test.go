package domain_test

import (
	"errors"
	"math"
	"testing"

	"mihrab/internal/modules/qibla/domain"
	apperrors "mihrab/internal/platform/errors"
)

// referenceBearing uses the cos(lat2)-scaled form of the same bearing, which
// is algebraically equivalent but shares no code with the implementation.
func referenceBearing(lat, lon float64) float64 {
	la1 := lat * math.Pi / 180
	la2 := domain.Kaaba.Latitude * math.Pi / 180
	dl := (domain.Kaaba.Longitude - lon) * math.Pi / 180
	y := math.Sin(dl) * math.Cos(la2)
	x := math.Cos(la1)*math.Sin(la2) - math.Sin(la1)*math.Cos(la2)*math.Cos(dl)
	deg := math.Atan2(y, x) * 180 / math.Pi
	for deg < 0 {
		deg += 360
	}
	return deg
}

func TestQiblaBearingKnownCities(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		at   domain.Coordinate
		want float64
	}{
		{"near mecca", domain.Coordinate{Latitude: 21.3891, Longitude: 39.8579}, 318.5409},
		{"london", domain.Coordinate{Latitude: 51.5074, Longitude: -0.1278}, 118.9872},
		{"new york", domain.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, 58.4817},
		{"jakarta", domain.Coordinate{Latitude: -6.2088, Longitude: 106.8456}, 295.1517},
		{"sydney", domain.Coordinate{Latitude: -33.8688, Longitude: 151.2093}, 277.4996},
	}
	for _, tc := range cases {
		got := domain.QiblaBearing(tc.at)
		if math.Abs(got-tc.want) > 1e-3 {
			t.Fatalf("%s: expected %.4f, got %.4f", tc.name, tc.want, got)
		}
		if ref := referenceBearing(tc.at.Latitude, tc.at.Longitude); math.Abs(got-ref) > 1e-9 {
			t.Fatalf("%s: diverges from reference %.9f vs %.9f", tc.name, got, ref)
		}
	}
}

func TestQiblaBearingRangeOverGrid(t *testing.T) {
	t.Parallel()
	for lat := -89.5; lat <= 89.5; lat += 2.5 {
		for lon := -180.0; lon <= 180.0; lon += 5 {
			got := domain.QiblaBearing(domain.Coordinate{Latitude: lat, Longitude: lon})
			if math.IsNaN(got) || got < 0 || got >= 360 {
				t.Fatalf("bearing out of range at (%v,%v): %v", lat, lon, got)
			}
			if ref := referenceBearing(lat, lon); math.Abs(got-ref) > 1e-6 && math.Abs(math.Abs(got-ref)-360) > 1e-6 {
				t.Fatalf("bearing at (%v,%v) = %v, reference %v", lat, lon, got, ref)
			}
		}
	}
}

func TestQiblaBearingAtKaabaIsZero(t *testing.T) {
	t.Parallel()
	got := domain.QiblaBearing(domain.Kaaba)
	if got != 0 {
		t.Fatalf("expected 0 at the kaaba, got %v", got)
	}
	if !domain.IsKaaba(domain.Kaaba) {
		t.Fatalf("expected IsKaaba to report true")
	}
}

func TestQiblaBearingPoles(t *testing.T) {
	t.Parallel()
	north := domain.QiblaBearing(domain.Coordinate{Latitude: 90, Longitude: 0})
	south := domain.QiblaBearing(domain.Coordinate{Latitude: -90, Longitude: 0})
	for _, v := range []float64{north, south} {
		if math.IsNaN(v) || v < 0 || v >= 360 {
			t.Fatalf("pole bearing out of range: %v", v)
		}
	}
}

func TestNormalizeAndRelative(t *testing.T) {
	t.Parallel()
	cases := map[float64]float64{-10: 350, 0: 0, 360: 0, 725: 5, -720: 0, 359.5: 359.5}
	for in, want := range cases {
		if got := domain.Normalize(in); math.Abs(got-want) > 1e-9 {
			t.Fatalf("Normalize(%v) = %v, want %v", in, got, want)
		}
	}
	if got := domain.RelativeBearing(118.99, 90); math.Abs(got-28.99) > 1e-9 {
		t.Fatalf("relative bearing: %v", got)
	}
	if got := domain.RelativeBearing(10, 350); math.Abs(got-20) > 1e-9 {
		t.Fatalf("relative bearing across north: %v", got)
	}
}

func TestCompassPoint(t *testing.T) {
	t.Parallel()
	cases := map[float64]string{0: "N", 11.24: "N", 11.26: "NNE", 118.99: "ESE", 180: "S", 318.54: "NW", 355: "N"}
	for in, want := range cases {
		if got := domain.CompassPoint(in); got != want {
			t.Fatalf("CompassPoint(%v) = %s, want %s", in, got, want)
		}
	}
}

func TestCoordinateValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.Coordinate{Latitude: 90, Longitude: -180}).Validate(); err != nil {
		t.Fatalf("bounds must be valid: %v", err)
	}
	for _, c := range []domain.Coordinate{{Latitude: 90.1}, {Latitude: -91}, {Longitude: 180.5}, {Latitude: math.NaN()}} {
		if err := c.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", c, err)
		}
	}
}
