package out

import (
	"context"

	"mihrab/internal/modules/qibla/domain"
)

type Observer struct {
	Coordinate domain.Coordinate
	City       string
	Country    string
}

type ObserverSource interface {
	Current(ctx context.Context) (Observer, error)
}
