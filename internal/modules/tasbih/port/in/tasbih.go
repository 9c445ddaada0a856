package in

import (
	"context"

	"mihrab/internal/modules/tasbih/dto"
)

type Usecase interface {
	State(ctx context.Context) (dto.StateOutput, error)
	Increment(ctx context.Context, phrase string) (dto.IncrementOutput, error)
	ResetAll(ctx context.Context) (dto.StateOutput, error)
}
