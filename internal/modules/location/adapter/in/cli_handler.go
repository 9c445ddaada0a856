package in

import (
	"context"

	"mihrab/internal/modules/location/dto"
	locationin "mihrab/internal/modules/location/port/in"
)

type CLIHandler struct {
	usecase locationin.Usecase
}

func NewCLIHandler(usecase locationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Current(ctx context.Context) (dto.LocationOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Detect(ctx context.Context) (dto.LocationOutput, error) {
	return h.usecase.Detect(ctx)
}

func (h CLIHandler) Search(ctx context.Context, query string) ([]dto.LocationOutput, error) {
	return h.usecase.Search(ctx, query)
}

func (h CLIHandler) Select(ctx context.Context, latitude, longitude float64, city, country string) (dto.LocationOutput, error) {
	return h.usecase.Select(ctx, dto.SelectInput{Latitude: latitude, Longitude: longitude, City: city, Country: country})
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}
