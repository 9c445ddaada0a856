package usecase

import (
	"context"
	"fmt"
	"time"

	"mihrab/internal/modules/prayer/domain"
	prayerdto "mihrab/internal/modules/prayer/dto"
	prayerin "mihrab/internal/modules/prayer/port/in"
	prayerout "mihrab/internal/modules/prayer/port/out"
	"mihrab/internal/modules/prayer/service"
	apperrors "mihrab/internal/platform/errors"
)

type Interactor struct {
	svc     *service.PrayerService
	places  prayerout.PlaceSource
	methods prayerout.MethodPreference
}

func NewInteractor(svc *service.PrayerService, places prayerout.PlaceSource, methods prayerout.MethodPreference) prayerin.Usecase {
	return &Interactor{svc: svc, places: places, methods: methods}
}

func (i *Interactor) Today(ctx context.Context, input prayerdto.TodayInput) (prayerdto.TodayOutput, error) {
	place, err := i.resolvePlace(ctx, input)
	if err != nil {
		return prayerdto.TodayOutput{}, err
	}
	method := domain.DefaultMethod
	switch {
	case input.Method != nil:
		if *input.Method < 0 {
			return prayerdto.TodayOutput{}, fmt.Errorf("%w: calculation method must not be negative", apperrors.ErrInvalidInput)
		}
		method = *input.Method
	case i.methods != nil:
		if preferred, err := i.methods.CalculationMethod(ctx); err == nil {
			method = preferred
		}
	}

	day, err := i.svc.Today(ctx, place.Latitude, place.Longitude, method)
	if err != nil {
		return prayerdto.TodayOutput{}, err
	}
	out := prayerdto.TodayOutput{
		Date:      day.Timings.Date.Format("02-01-2006"),
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		City:      place.City,
		Country:   place.Country,
		Method:    day.Method,
		Prayers:   make([]prayerdto.PrayerOutput, 0, len(day.Timings.Prayers)),
	}
	for _, p := range day.Timings.Prayers {
		out.Prayers = append(out.Prayers, prayerdto.PrayerOutput{
			Name: p.Name,
			Time: p.Time,
			Next: day.HasNext && p.Name == day.Next.Prayer.Name,
		})
	}
	if day.HasNext {
		out.Next = &prayerdto.NextOutput{
			Name:      day.Next.Prayer.Name,
			Time:      day.Next.Prayer.Time,
			At:        day.Next.At.Format(time.RFC3339),
			Hours:     day.Next.Hours(),
			Minutes:   day.Next.Minutes(),
			Remaining: fmt.Sprintf("%dh %dm", day.Next.Hours(), day.Next.Minutes()),
		}
	}
	return out, nil
}

func (i *Interactor) Methods(ctx context.Context) ([]prayerdto.MethodOutput, error) {
	methods, err := i.svc.Methods(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]prayerdto.MethodOutput, 0, len(methods))
	for _, m := range methods {
		out = append(out, prayerdto.MethodOutput{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

// resolvePlace uses an explicit coordinate when both halves are given and
// the location module otherwise.
func (i *Interactor) resolvePlace(ctx context.Context, input prayerdto.TodayInput) (prayerout.Place, error) {
	switch {
	case input.Latitude != nil && input.Longitude != nil:
		return prayerout.Place{Latitude: *input.Latitude, Longitude: *input.Longitude}, nil
	case input.Latitude != nil || input.Longitude != nil:
		return prayerout.Place{}, fmt.Errorf("%w: latitude and longitude must be given together", apperrors.ErrInvalidInput)
	case i.places == nil:
		return prayerout.Place{}, apperrors.ErrLocationUnavailable
	}
	return i.places.Current(ctx)
}
