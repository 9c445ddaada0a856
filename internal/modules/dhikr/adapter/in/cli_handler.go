package in

import (
	"context"

	"mihrab/internal/modules/dhikr/dto"
	dhikrin "mihrab/internal/modules/dhikr/port/in"
)

type CLIHandler struct {
	usecase dhikrin.Usecase
}

func NewCLIHandler(usecase dhikrin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) State(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.State(ctx)
}

func (h CLIHandler) SwitchTab(ctx context.Context, tab string) (dto.StateOutput, error) {
	return h.usecase.SwitchTab(ctx, tab)
}

func (h CLIHandler) Next(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Next(ctx)
}

func (h CLIHandler) Previous(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Previous(ctx)
}

func (h CLIHandler) Advance(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Advance(ctx)
}

func (h CLIHandler) ResetAll(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.ResetAll(ctx)
}
