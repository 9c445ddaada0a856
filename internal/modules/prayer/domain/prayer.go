package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "mihrab/internal/platform/errors"
)

const (
	Fajr    = "Fajr"
	Sunrise = "Sunrise"
	Dhuhr   = "Dhuhr"
	Asr     = "Asr"
	Maghrib = "Maghrib"
	Isha    = "Isha"
)

// DefaultMethod is used when no preference is stored.
const DefaultMethod = 2

// Names is the display order of the daily timings.
var Names = []string{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

type Prayer struct {
	Name string
	Time string
}

type Timings struct {
	Date    time.Time
	Prayers []Prayer
}

type Method struct {
	ID   int
	Name string
}

// ParseClock reads an "HH:MM" value. Trailing annotations such as a zone
// abbreviation in "05:12 (BST)" are ignored.
func ParseClock(raw string) (hour, minute int, err error) {
	value, _, _ := strings.Cut(strings.TrimSpace(raw), " ")
	h, m, ok := strings.Cut(value, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: bad time %q", apperrors.ErrInvalidInput, raw)
	}
	hour, errH := strconv.Atoi(h)
	minute, errM := strconv.Atoi(m)
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: bad time %q", apperrors.ErrInvalidInput, raw)
	}
	return hour, minute, nil
}

// Occurrence is the next wall-clock instant at which a prayer time happens,
// today when it has not passed yet and tomorrow otherwise.
func Occurrence(p Prayer, now time.Time) (time.Time, error) {
	hour, minute, err := ParseClock(p.Time)
	if err != nil {
		return time.Time{}, err
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if at.Before(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at, nil
}

type Upcoming struct {
	Prayer    Prayer
	At        time.Time
	Remaining time.Duration
}

// Hours and Minutes split the remaining time the way the countdown shows it.
func (u Upcoming) Hours() int   { return int(u.Remaining / time.Hour) }
func (u Upcoming) Minutes() int { return int(u.Remaining % time.Hour / time.Minute) }

// NextPrayer picks the prayer whose next occurrence is closest to now.
// Unparsable times are skipped; ok is false when none is usable.
func NextPrayer(t Timings, now time.Time) (Upcoming, bool) {
	var best Upcoming
	found := false
	for _, p := range t.Prayers {
		at, err := Occurrence(p, now)
		if err != nil {
			continue
		}
		if !found || at.Before(best.At) {
			best = Upcoming{Prayer: p, At: at, Remaining: at.Sub(now)}
			found = true
		}
	}
	return best, found
}

func SortMethods(methods []Method) []Method {
	out := append([]Method(nil), methods...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func ValidateCoordinate(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: coordinate (%g, %g) out of range", apperrors.ErrInvalidInput, lat, lon)
	}
	return nil
}
