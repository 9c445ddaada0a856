package in

import (
	"context"

	"mihrab/internal/modules/tasbih/dto"
	tasbihin "mihrab/internal/modules/tasbih/port/in"
)

type CLIHandler struct {
	usecase tasbihin.Usecase
}

func NewCLIHandler(usecase tasbihin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) State(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.State(ctx)
}

func (h CLIHandler) Increment(ctx context.Context, phrase string) (dto.IncrementOutput, error) {
	return h.usecase.Increment(ctx, phrase)
}

func (h CLIHandler) ResetAll(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.ResetAll(ctx)
}
