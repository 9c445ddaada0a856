package out

import (
	"context"

	"mihrab/internal/modules/quran/domain"
)

type ReciterCatalog interface {
	Languages(ctx context.Context) ([]domain.Language, error)
	Reciters(ctx context.Context, languageID int) ([]domain.Reciter, error)
}

type ChapterCatalog interface {
	Surahs(ctx context.Context) ([]domain.Surah, error)
}

// Player plays one audio URL at a time. The returned channel yields the exit
// error (nil on a clean finish) once and is then closed.
type Player interface {
	Play(ctx context.Context, url string) (<-chan error, error)
	Stop() error
}

type LanguagePreference interface {
	Language(ctx context.Context) (string, error)
}
