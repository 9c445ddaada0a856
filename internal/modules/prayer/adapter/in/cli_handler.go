package in

import (
	"context"

	"mihrab/internal/modules/prayer/dto"
	prayerin "mihrab/internal/modules/prayer/port/in"
)

type CLIHandler struct {
	usecase prayerin.Usecase
}

func NewCLIHandler(usecase prayerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Today(ctx context.Context, latitude, longitude *float64, method *int) (dto.TodayOutput, error) {
	return h.usecase.Today(ctx, dto.TodayInput{Latitude: latitude, Longitude: longitude, Method: method})
}

func (h CLIHandler) Methods(ctx context.Context) ([]dto.MethodOutput, error) {
	return h.usecase.Methods(ctx)
}
