package in

import (
	"context"

	"mihrab/internal/modules/dhikr/dto"
)

type Usecase interface {
	State(ctx context.Context) (dto.StateOutput, error)
	SwitchTab(ctx context.Context, tab string) (dto.StateOutput, error)
	Next(ctx context.Context) (dto.StateOutput, error)
	Previous(ctx context.Context) (dto.StateOutput, error)
	Advance(ctx context.Context) (dto.StateOutput, error)
	ResetAll(ctx context.Context) (dto.StateOutput, error)
}
