package in

import (
	"context"

	"mihrab/internal/modules/qibla/dto"
)

type Usecase interface {
	Direction(ctx context.Context, input dto.DirectionInput) (dto.DirectionOutput, error)
}
