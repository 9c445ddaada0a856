package usecase

import (
	"context"

	"mihrab/internal/modules/quran/domain"
	qurandto "mihrab/internal/modules/quran/dto"
	quranin "mihrab/internal/modules/quran/port/in"
	quranout "mihrab/internal/modules/quran/port/out"
	"mihrab/internal/modules/quran/service"
)

type Interactor struct {
	svc   *service.QuranService
	prefs quranout.LanguagePreference
}

func NewInteractor(svc *service.QuranService, prefs quranout.LanguagePreference) quranin.Usecase {
	return &Interactor{svc: svc, prefs: prefs}
}

func (i *Interactor) appLanguage(ctx context.Context) string {
	if i.prefs == nil {
		return "en"
	}
	lang, err := i.prefs.Language(ctx)
	if err != nil || lang == "" {
		return "en"
	}
	return lang
}

func (i *Interactor) Overview(ctx context.Context) (qurandto.OverviewOutput, error) {
	appLang := i.appLanguage(ctx)
	ov, err := i.svc.Overview(ctx, appLang)
	if err != nil {
		return qurandto.OverviewOutput{}, err
	}
	out := qurandto.OverviewOutput{
		Languages: toLanguages(ov.Languages),
		Surahs:    toSurahs(ov.Surahs, appLang),
	}
	if ov.HasDefault {
		def := toLanguage(ov.Default)
		out.DefaultLanguage = &def
	}
	return out, nil
}

func (i *Interactor) Languages(ctx context.Context) ([]qurandto.LanguageOutput, error) {
	langs, err := i.svc.Languages(ctx)
	if err != nil {
		return nil, err
	}
	return toLanguages(langs), nil
}

// Reciters lists reciters for the given catalog language, or for the default
// language of the interface when none is given.
func (i *Interactor) Reciters(ctx context.Context, input qurandto.RecitersInput) ([]qurandto.ReciterOutput, error) {
	languageID := input.LanguageID
	if languageID == 0 {
		languageID = i.defaultLanguageID(ctx)
	}
	reciters, err := i.svc.Reciters(ctx, languageID, input.Query)
	if err != nil {
		return nil, err
	}
	out := make([]qurandto.ReciterOutput, 0, len(reciters))
	for _, r := range reciters {
		out = append(out, toReciter(r))
	}
	return out, nil
}

func (i *Interactor) Surahs(ctx context.Context) ([]qurandto.SurahOutput, error) {
	surahs, err := i.svc.Surahs(ctx)
	if err != nil {
		return nil, err
	}
	return toSurahs(surahs, i.appLanguage(ctx)), nil
}

func (i *Interactor) Play(ctx context.Context, input qurandto.PlayInput) (qurandto.PlaybackOutput, error) {
	languageID := input.LanguageID
	if languageID == 0 {
		languageID = i.defaultLanguageID(ctx)
	}
	track, err := i.svc.Play(ctx, languageID, input.ReciterID, input.MoshafID, input.SurahID)
	if err != nil {
		return qurandto.PlaybackOutput{}, err
	}
	return toPlayback(track), nil
}

func (i *Interactor) Stop(_ context.Context) error {
	return i.svc.Stop()
}

func (i *Interactor) NowPlaying(_ context.Context) (qurandto.PlaybackOutput, error) {
	track, ok := i.svc.Current()
	if !ok {
		return qurandto.PlaybackOutput{}, nil
	}
	return toPlayback(track), nil
}

// defaultLanguageID is 0, meaning no language filter, when the catalog
// cannot be read.
func (i *Interactor) defaultLanguageID(ctx context.Context) int {
	langs, err := i.svc.Languages(ctx)
	if err != nil {
		return 0
	}
	def, ok := domain.DefaultLanguage(langs, i.appLanguage(ctx))
	if !ok {
		return 0
	}
	return def.ID
}

func toLanguage(l domain.Language) qurandto.LanguageOutput {
	return qurandto.LanguageOutput{ID: l.ID, Name: l.Name, Native: l.Native, ISO: l.ISO}
}

func toLanguages(langs []domain.Language) []qurandto.LanguageOutput {
	out := make([]qurandto.LanguageOutput, 0, len(langs))
	for _, l := range langs {
		out = append(out, toLanguage(l))
	}
	return out
}

func toSurahs(surahs []domain.Surah, appLang string) []qurandto.SurahOutput {
	out := make([]qurandto.SurahOutput, 0, len(surahs))
	for _, s := range surahs {
		out = append(out, qurandto.SurahOutput{
			ID:          s.ID,
			NameArabic:  s.NameArabic,
			NameSimple:  s.NameSimple,
			DisplayName: s.DisplayName(appLang),
		})
	}
	return out
}

func toReciter(r domain.Reciter) qurandto.ReciterOutput {
	out := qurandto.ReciterOutput{ID: r.ID, Name: r.Name, Letter: r.Letter, Moshaf: make([]qurandto.MoshafOutput, 0, len(r.Moshaf))}
	for _, m := range r.Moshaf {
		out.Moshaf = append(out.Moshaf, qurandto.MoshafOutput{
			ID:          m.ID,
			Name:        m.Name,
			Server:      m.Server,
			SurahTotal:  m.SurahTotal,
			AudioFormat: m.AudioFormat,
		})
	}
	return out
}

func toPlayback(t service.Track) qurandto.PlaybackOutput {
	return qurandto.PlaybackOutput{
		Playing:     true,
		ReciterID:   t.Reciter.ID,
		ReciterName: t.Reciter.Name,
		MoshafID:    t.Moshaf.ID,
		MoshafName:  t.Moshaf.Name,
		SurahID:     t.SurahID,
		URL:         t.URL,
	}
}
