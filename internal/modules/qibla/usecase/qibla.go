package usecase

import (
	"context"
	"fmt"

	"mihrab/internal/modules/qibla/domain"
	qibladto "mihrab/internal/modules/qibla/dto"
	qiblain "mihrab/internal/modules/qibla/port/in"
	qiblaout "mihrab/internal/modules/qibla/port/out"
	"mihrab/internal/modules/qibla/service"
	apperrors "mihrab/internal/platform/errors"
)

type Interactor struct {
	svc      *service.QiblaService
	observer qiblaout.ObserverSource
}

func NewInteractor(svc *service.QiblaService, observer qiblaout.ObserverSource) qiblain.Usecase {
	return &Interactor{svc: svc, observer: observer}
}

func (i *Interactor) Direction(ctx context.Context, input qibladto.DirectionInput) (qibladto.DirectionOutput, error) {
	var obs qiblaout.Observer
	switch {
	case input.Latitude != nil && input.Longitude != nil:
		obs.Coordinate = domain.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	case input.Latitude != nil || input.Longitude != nil:
		return qibladto.DirectionOutput{}, fmt.Errorf("%w: latitude and longitude must be given together", apperrors.ErrInvalidInput)
	case i.observer == nil:
		return qibladto.DirectionOutput{}, apperrors.ErrLocationUnavailable
	default:
		current, err := i.observer.Current(ctx)
		if err != nil {
			return qibladto.DirectionOutput{}, err
		}
		obs = current
	}

	dir, err := i.svc.Direction(obs.Coordinate, input.Heading)
	if err != nil {
		return qibladto.DirectionOutput{}, err
	}
	return qibladto.DirectionOutput{
		Bearing:   dir.Bearing,
		Compass:   dir.Compass,
		Relative:  dir.Relative,
		Latitude:  obs.Coordinate.Latitude,
		Longitude: obs.Coordinate.Longitude,
		City:      obs.City,
		Country:   obs.Country,
		AtKaaba:   dir.AtKaaba,
	}, nil
}
