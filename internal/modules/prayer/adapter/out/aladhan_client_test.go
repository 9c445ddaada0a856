package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	prayerout "mihrab/internal/modules/prayer/adapter/out"
	"mihrab/internal/modules/prayer/domain"
	"mihrab/internal/platform/httpjson"
)

func TestAladhanTimings(t *testing.T) {
	t.Parallel()
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		_, _ = w.Write([]byte(`{"code":200,"status":"OK","data":{"timings":{"Fajr":"05:01","Sunrise":"06:30","Dhuhr":"12:10","Asr":"15:40","Sunset":"18:00","Maghrib":"18:02","Isha":"19:30","Midnight":"00:10"}}}`))
	}))
	defer srv.Close()

	client := prayerout.NewAladhanClient(httpjson.New(srv.URL, httpjson.Options{}), zerolog.Nop())
	date := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	timings, err := client.Timings(context.Background(), date, 51.5, -0.12, 2)
	if err != nil {
		t.Fatalf("timings: %v", err)
	}
	if gotPath != "/v1/timings/07-03-2026" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotQuery != "latitude=51.5&longitude=-0.12&method=2" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
	if len(timings.Prayers) != 6 {
		t.Fatalf("expected six prayers, got %+v", timings.Prayers)
	}
	for i, name := range domain.Names {
		if timings.Prayers[i].Name != name {
			t.Fatalf("prayer %d = %s, want %s", i, timings.Prayers[i].Name, name)
		}
	}
	if timings.Prayers[4].Time != "18:02" {
		t.Fatalf("unexpected maghrib %q", timings.Prayers[4].Time)
	}
}

func TestAladhanTimingsMissingField(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"data":{"timings":{"Fajr":"05:01"}}}`))
	}))
	defer srv.Close()
	client := prayerout.NewAladhanClient(httpjson.New(srv.URL, httpjson.Options{}), zerolog.Nop())
	if _, err := client.Timings(context.Background(), time.Now(), 0, 0, 2); err == nil {
		t.Fatalf("expected error for incomplete timings")
	}
}

func TestAladhanMethodsSortedByID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/methods" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"code":200,"data":{
			"MWL":{"id":3,"name":"Muslim World League","params":{"Fajr":18}},
			"ISNA":{"id":2,"name":"Islamic Society of North America (ISNA)"},
			"JAFARI":{"id":0,"name":"Shia Ithna-Ansari"},
			"CUSTOM":{"id":99},
			"BROKEN":{"name":"no id"}
		}}`))
	}))
	defer srv.Close()

	client := prayerout.NewAladhanClient(httpjson.New(srv.URL, httpjson.Options{}), zerolog.Nop())
	methods, err := client.Methods(context.Background())
	if err != nil {
		t.Fatalf("methods: %v", err)
	}
	want := []domain.Method{
		{ID: 0, Name: "Shia Ithna-Ansari"},
		{ID: 2, Name: "Islamic Society of North America (ISNA)"},
		{ID: 3, Name: "Muslim World League"},
		{ID: 99, Name: "CUSTOM"},
	}
	if len(methods) != len(want) {
		t.Fatalf("got %+v", methods)
	}
	for i := range want {
		if methods[i] != want[i] {
			t.Fatalf("method %d = %+v, want %+v", i, methods[i], want[i])
		}
	}
}
