package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	quranout "mihrab/internal/modules/quran/adapter/out"
	"mihrab/internal/platform/httpjson"
)

func TestMP3QuranLanguagesAndReciters(t *testing.T) {
	t.Parallel()
	var reciterQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/languages", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"language":[
			{"id":"1","language":"Arabic","native":"العربية","locale":"ar"},
			{"id":2,"language":"English","native":"English","iso":"en"},
			{"id":"x"}
		]}`))
	})
	mux.HandleFunc("/api/v3/reciters", func(w http.ResponseWriter, r *http.Request) {
		reciterQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"reciters":[
			{"id":54,"name":"Abdulrahman Alsudaes","letter":"A","moshaf":[
				{"id":"60","name":"Hafs A'n Assem - Murattal","server":"https://server11.mp3quran.net/sds/","surah_list":"1,2,3","surah_total":"3","audio_format":"mp3"}
			]},
			{"id":123,"name":"Mishary Alafasi","letter":"M","moshaf":[]}
		]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := quranout.NewMP3QuranClient(httpjson.New(srv.URL, httpjson.Options{}), zerolog.Nop())
	langs, err := client.Languages(context.Background())
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	if len(langs) != 2 || langs[0].ID != 1 || langs[0].ISO != "ar" || langs[1].ISO != "en" || langs[1].Name != "English" {
		t.Fatalf("unexpected languages: %+v", langs)
	}

	reciters, err := client.Reciters(context.Background(), 2)
	if err != nil {
		t.Fatalf("reciters: %v", err)
	}
	if reciterQuery != "language=2" {
		t.Fatalf("unexpected reciter query %q", reciterQuery)
	}
	if len(reciters) != 2 || len(reciters[0].Moshaf) != 1 {
		t.Fatalf("unexpected reciters: %+v", reciters)
	}
	m := reciters[0].Moshaf[0]
	if m.ID != 60 || m.SurahTotal != 3 || m.Server != "https://server11.mp3quran.net/sds/" || !m.HasSurah(2) {
		t.Fatalf("unexpected moshaf: %+v", m)
	}
}

func TestQuranComSurahs(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v4/chapters" || r.URL.Query().Get("language") != "en" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"chapters":[{"id":1,"name_arabic":"الفاتحة","name_simple":"Al-Fatihah","verses_count":7},{"id":2,"name_arabic":"البقرة","name_simple":"Al-Baqarah"}]}`))
	}))
	defer srv.Close()

	surahs, err := quranout.NewQuranComClient(httpjson.New(srv.URL, httpjson.Options{})).Surahs(context.Background())
	if err != nil {
		t.Fatalf("surahs: %v", err)
	}
	if len(surahs) != 2 || surahs[1].NameSimple != "Al-Baqarah" || surahs[0].NameArabic != "الفاتحة" {
		t.Fatalf("unexpected surahs: %+v", surahs)
	}
}

func TestCatalogClientsSurfaceStatusErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	client := httpjson.New(srv.URL, httpjson.Options{})
	if _, err := quranout.NewMP3QuranClient(client, zerolog.Nop()).Languages(context.Background()); err == nil {
		t.Fatalf("expected languages error")
	}
	if _, err := quranout.NewQuranComClient(client).Surahs(context.Background()); err == nil {
		t.Fatalf("expected surahs error")
	}
}
