package in

import (
	"context"

	"mihrab/internal/modules/qibla/dto"
	qiblain "mihrab/internal/modules/qibla/port/in"
)

type CLIHandler struct {
	usecase qiblain.Usecase
}

func NewCLIHandler(usecase qiblain.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Direction resolves the qibla for the current location, or for an explicit
// coordinate when both lat and lon are non-nil.
func (h CLIHandler) Direction(ctx context.Context, lat, lon, heading *float64) (dto.DirectionOutput, error) {
	return h.usecase.Direction(ctx, dto.DirectionInput{Latitude: lat, Longitude: lon, Heading: heading})
}
