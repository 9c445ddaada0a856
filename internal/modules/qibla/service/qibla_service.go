package service

import (
	"mihrab/internal/modules/qibla/domain"
)

type Direction struct {
	Bearing  float64
	Compass  string
	Relative *float64
	AtKaaba  bool
}

type QiblaService struct{}

func NewQiblaService() *QiblaService {
	return &QiblaService{}
}

func (s *QiblaService) Direction(observer domain.Coordinate, heading *float64) (Direction, error) {
	if err := observer.Validate(); err != nil {
		return Direction{}, err
	}
	bearing := domain.QiblaBearing(observer)
	dir := Direction{
		Bearing: bearing,
		Compass: domain.CompassPoint(bearing),
		AtKaaba: domain.IsKaaba(observer),
	}
	if heading != nil {
		rel := domain.RelativeBearing(bearing, *heading)
		dir.Relative = &rel
	}
	return dir, nil
}
