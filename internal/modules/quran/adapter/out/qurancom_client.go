package out

import (
	"context"
	"fmt"
	"net/url"

	"mihrab/internal/modules/quran/domain"
	quranout "mihrab/internal/modules/quran/port/out"
	"mihrab/internal/platform/httpjson"
)

type QuranComClient struct {
	client *httpjson.Client
}

func NewQuranComClient(client *httpjson.Client) quranout.ChapterCatalog {
	return &QuranComClient{client: client}
}

func (c *QuranComClient) Surahs(ctx context.Context) ([]domain.Surah, error) {
	var body struct {
		Chapters []struct {
			ID         int    `json:"id"`
			NameArabic string `json:"name_arabic"`
			NameSimple string `json:"name_simple"`
		} `json:"chapters"`
	}
	if err := c.client.GetJSON(ctx, "/api/v4/chapters", url.Values{"language": {"en"}}, &body); err != nil {
		return nil, fmt.Errorf("quran.com chapters: %w", err)
	}
	out := make([]domain.Surah, 0, len(body.Chapters))
	for _, ch := range body.Chapters {
		out = append(out, domain.Surah{ID: ch.ID, NameArabic: ch.NameArabic, NameSimple: ch.NameSimple})
	}
	return out, nil
}
