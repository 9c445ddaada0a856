package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"mihrab/internal/modules/quran/domain"
	quranout "mihrab/internal/modules/quran/port/out"
	"mihrab/internal/platform/httpjson"
)

// looseInt decodes numbers that the catalog sometimes sends as strings.
type looseInt int

func (n *looseInt) UnmarshalJSON(raw []byte) error {
	raw = bytes.Trim(raw, `"`)
	if len(raw) == 0 || string(raw) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(string(raw))
	if err != nil {
		return fmt.Errorf("not an integer: %s", raw)
	}
	*n = looseInt(v)
	return nil
}

type mp3Language struct {
	ID     looseInt `json:"id"`
	Name   string   `json:"language"`
	Native string   `json:"native"`
	ISO    string   `json:"locale"`
	Code   string   `json:"iso"`
}

type mp3Moshaf struct {
	ID          looseInt `json:"id"`
	Name        string   `json:"name"`
	Server      string   `json:"server"`
	SurahList   string   `json:"surah_list"`
	SurahTotal  looseInt `json:"surah_total"`
	AudioFormat string   `json:"audio_format"`
}

type mp3Reciter struct {
	ID     looseInt    `json:"id"`
	Name   string      `json:"name"`
	Letter string      `json:"letter"`
	Moshaf []mp3Moshaf `json:"moshaf"`
}

type MP3QuranClient struct {
	client *httpjson.Client
	log    zerolog.Logger
}

func NewMP3QuranClient(client *httpjson.Client, log zerolog.Logger) quranout.ReciterCatalog {
	return &MP3QuranClient{client: client, log: log}
}

func (c *MP3QuranClient) Languages(ctx context.Context) ([]domain.Language, error) {
	var body struct {
		Language []json.RawMessage `json:"language"`
	}
	if err := c.client.GetJSON(ctx, "/api/v3/languages", nil, &body); err != nil {
		return nil, fmt.Errorf("mp3quran languages: %w", err)
	}
	out := make([]domain.Language, 0, len(body.Language))
	for _, raw := range body.Language {
		var l mp3Language
		if err := json.Unmarshal(raw, &l); err != nil {
			c.log.Debug().Err(err).Msg("skipping malformed language")
			continue
		}
		iso := l.Code
		if iso == "" {
			iso = l.ISO
		}
		name := l.Name
		if name == "" {
			name = l.Native
		}
		out = append(out, domain.Language{ID: int(l.ID), Name: name, Native: l.Native, ISO: iso})
	}
	return out, nil
}

func (c *MP3QuranClient) Reciters(ctx context.Context, languageID int) ([]domain.Reciter, error) {
	var body struct {
		Reciters []json.RawMessage `json:"reciters"`
	}
	var params url.Values
	if languageID > 0 {
		params = url.Values{"language": {strconv.Itoa(languageID)}}
	}
	if err := c.client.GetJSON(ctx, "/api/v3/reciters", params, &body); err != nil {
		return nil, fmt.Errorf("mp3quran reciters: %w", err)
	}
	out := make([]domain.Reciter, 0, len(body.Reciters))
	for _, raw := range body.Reciters {
		var r mp3Reciter
		if err := json.Unmarshal(raw, &r); err != nil {
			c.log.Debug().Err(err).Msg("skipping malformed reciter")
			continue
		}
		reciter := domain.Reciter{ID: int(r.ID), Name: r.Name, Letter: r.Letter}
		for _, m := range r.Moshaf {
			reciter.Moshaf = append(reciter.Moshaf, domain.Moshaf{
				ID:          int(m.ID),
				Name:        m.Name,
				Server:      m.Server,
				SurahList:   m.SurahList,
				SurahTotal:  int(m.SurahTotal),
				AudioFormat: m.AudioFormat,
			})
		}
		out = append(out, reciter)
	}
	return out, nil
}
