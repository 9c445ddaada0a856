package in

import (
	"context"

	"mihrab/internal/modules/location/dto"
)

type Usecase interface {
	Current(ctx context.Context) (dto.LocationOutput, error)
	Detect(ctx context.Context) (dto.LocationOutput, error)
	Search(ctx context.Context, query string) ([]dto.LocationOutput, error)
	Select(ctx context.Context, input dto.SelectInput) (dto.LocationOutput, error)
	Clear(ctx context.Context) error
}
