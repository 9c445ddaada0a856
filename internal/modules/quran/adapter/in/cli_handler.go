package in

import (
	"context"

	"mihrab/internal/modules/quran/dto"
	quranin "mihrab/internal/modules/quran/port/in"
)

type CLIHandler struct {
	usecase quranin.Usecase
}

func NewCLIHandler(usecase quranin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) Languages(ctx context.Context) ([]dto.LanguageOutput, error) {
	return h.usecase.Languages(ctx)
}

func (h CLIHandler) Reciters(ctx context.Context, languageID int, query string) ([]dto.ReciterOutput, error) {
	return h.usecase.Reciters(ctx, dto.RecitersInput{LanguageID: languageID, Query: query})
}

func (h CLIHandler) Surahs(ctx context.Context) ([]dto.SurahOutput, error) {
	return h.usecase.Surahs(ctx)
}

func (h CLIHandler) Play(ctx context.Context, languageID, reciterID, moshafID, surahID int) (dto.PlaybackOutput, error) {
	return h.usecase.Play(ctx, dto.PlayInput{LanguageID: languageID, ReciterID: reciterID, MoshafID: moshafID, SurahID: surahID})
}

func (h CLIHandler) Stop(ctx context.Context) error {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) NowPlaying(ctx context.Context) (dto.PlaybackOutput, error) {
	return h.usecase.NowPlaying(ctx)
}
