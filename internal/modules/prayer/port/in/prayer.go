package in

import (
	"context"

	"mihrab/internal/modules/prayer/dto"
)

type Usecase interface {
	Today(ctx context.Context, input dto.TodayInput) (dto.TodayOutput, error)
	Methods(ctx context.Context) ([]dto.MethodOutput, error)
}
