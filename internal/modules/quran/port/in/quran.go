package in

import (
	"context"

	"mihrab/internal/modules/quran/dto"
)

type Usecase interface {
	Overview(ctx context.Context) (dto.OverviewOutput, error)
	Languages(ctx context.Context) ([]dto.LanguageOutput, error)
	Reciters(ctx context.Context, input dto.RecitersInput) ([]dto.ReciterOutput, error)
	Surahs(ctx context.Context) ([]dto.SurahOutput, error)
	Play(ctx context.Context, input dto.PlayInput) (dto.PlaybackOutput, error)
	Stop(ctx context.Context) error
	NowPlaying(ctx context.Context) (dto.PlaybackOutput, error)
}
