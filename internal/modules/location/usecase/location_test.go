package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	locationout "mihrab/internal/modules/location/adapter/out"
	"mihrab/internal/modules/location/domain"
	"mihrab/internal/modules/location/dto"
	locationin "mihrab/internal/modules/location/port/in"
	"mihrab/internal/modules/location/service"
	"mihrab/internal/modules/location/usecase"
	apperrors "mihrab/internal/platform/errors"
	"mihrab/internal/platform/kv"
)

type fakeGeocoder struct {
	reverse      domain.Location
	reverseErr   error
	search       []domain.Location
	searchErr    error
	searchCalls  int
	reverseCalls int
}

func (f *fakeGeocoder) Search(context.Context, string) ([]domain.Location, error) {
	f.searchCalls++
	return f.search, f.searchErr
}

func (f *fakeGeocoder) Reverse(_ context.Context, fix domain.Fix) (domain.Location, error) {
	f.reverseCalls++
	if f.reverseErr != nil {
		return domain.Location{}, f.reverseErr
	}
	loc := f.reverse
	loc.Latitude, loc.Longitude = fix.Latitude, fix.Longitude
	return loc, nil
}

func newUsecase(geo *fakeGeocoder, hasFix bool, store kv.Store) locationin.Usecase {
	svc := service.NewLocationService(geo, locationout.NewFixedLocator(hasFix, 51.5074, -0.1278), locationout.NewKVLocationStore(store), zerolog.Nop())
	return usecase.NewInteractor(svc)
}

func TestCurrentPrefersSavedLocation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	if err := kv.Save(ctx, store, "savedLocation", domain.Location{Latitude: 21.4, Longitude: 39.8, City: "Makkah", Country: "Saudi Arabia"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	geo := &fakeGeocoder{}
	uc := newUsecase(geo, true, store)

	out, err := uc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if out.City != "Makkah" || out.Source != dto.SourceSaved {
		t.Fatalf("expected saved location, got %+v", out)
	}
	if geo.reverseCalls != 0 {
		t.Fatalf("saved location must not trigger geocoding")
	}
}

func TestCurrentFallsBackToDeviceAndSaves(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	geo := &fakeGeocoder{reverse: domain.Location{City: "London", Country: "United Kingdom"}}
	uc := newUsecase(geo, true, store)

	out, err := uc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if out.Source != dto.SourceDevice || out.City != "London" || out.Latitude != 51.5074 {
		t.Fatalf("unexpected device location: %+v", out)
	}
	saved := kv.Load[domain.Location](ctx, store, "savedLocation")
	if saved.City != "London" || saved.Longitude != -0.1278 {
		t.Fatalf("expected detected location to be saved, got %+v", saved)
	}
	again, err := uc.Current(ctx)
	if err != nil || again.Source != dto.SourceSaved {
		t.Fatalf("second call should use saved location: %+v %v", again, err)
	}
}

func TestCurrentMalformedSavedLocationIsIgnored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	if err := store.Set(ctx, "savedLocation", []byte(`{"latitude":"north"}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := newUsecase(&fakeGeocoder{reverse: domain.Location{City: "London", Country: "UK"}}, true, store)
	out, err := uc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if out.Source != dto.SourceDevice {
		t.Fatalf("expected device fallback, got %+v", out)
	}
}

func TestLocationUnavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	noFix := newUsecase(&fakeGeocoder{}, false, kv.NewMemoryStore())
	if _, err := noFix.Current(ctx); !errors.Is(err, apperrors.ErrLocationUnavailable) {
		t.Fatalf("expected location unavailable without fix, got %v", err)
	}

	store := kv.NewMemoryStore()
	upstream := errors.New("503")
	reverseFails := newUsecase(&fakeGeocoder{reverseErr: upstream}, true, store)
	_, err := reverseFails.Detect(ctx)
	if !errors.Is(err, apperrors.ErrLocationUnavailable) {
		t.Fatalf("expected location unavailable on reverse failure, got %v", err)
	}
	if !errors.Is(err, upstream) {
		t.Fatalf("expected the geocoder error to stay in the chain, got %v", err)
	}
	if _, ok := kv.Lookup[domain.Location](ctx, store, "savedLocation"); ok {
		t.Fatalf("failed detection must not save a location")
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	geo := &fakeGeocoder{search: []domain.Location{
		{Latitude: 21.42, Longitude: 39.82, City: "Makkah", Country: "Saudi Arabia"},
		{Latitude: 200, Longitude: 0, City: "Invalid"},
		{Latitude: 24.47, Longitude: 39.61},
	}}
	uc := newUsecase(geo, false, kv.NewMemoryStore())

	empty, err := uc.Search(ctx, "   ")
	if err != nil || len(empty) != 0 || geo.searchCalls != 0 {
		t.Fatalf("blank query must not hit the geocoder: %v %d", err, geo.searchCalls)
	}

	results, err := uc.Search(ctx, "mak")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected invalid coordinates to be dropped, got %+v", results)
	}
	if results[1].City != domain.Unknown || results[1].Country != domain.Unknown {
		t.Fatalf("expected Unknown fallbacks, got %+v", results[1])
	}

	geo.searchErr = errors.New("timeout")
	if _, err := uc.Search(ctx, "mak"); !errors.Is(err, apperrors.ErrLocationUnavailable) {
		t.Fatalf("expected location unavailable on search failure, got %v", err)
	}
}

func TestSelectSavesAndFillsCity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	geo := &fakeGeocoder{reverse: domain.Location{City: "Madinah", Country: "Saudi Arabia"}}
	uc := newUsecase(geo, false, store)

	out, err := uc.Select(ctx, dto.SelectInput{Latitude: 24.47, Longitude: 39.61})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if out.City != "Madinah" || out.Country != "Saudi Arabia" {
		t.Fatalf("expected reverse geocoded names, got %+v", out)
	}

	named, err := uc.Select(ctx, dto.SelectInput{Latitude: 21.42, Longitude: 39.82, City: "Makkah", Country: "Saudi Arabia"})
	if err != nil {
		t.Fatalf("select named: %v", err)
	}
	if geo.reverseCalls != 1 || named.City != "Makkah" {
		t.Fatalf("named selection should not reverse geocode: calls=%d %+v", geo.reverseCalls, named)
	}
	current, err := uc.Current(ctx)
	if err != nil || current.City != "Makkah" {
		t.Fatalf("expected selected location to be current: %+v %v", current, err)
	}

	if _, err := uc.Select(ctx, dto.SelectInput{Latitude: 95}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	if err := uc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := uc.Current(ctx); !errors.Is(err, apperrors.ErrLocationUnavailable) {
		t.Fatalf("expected unavailable after clear without fix, got %v", err)
	}
}

func TestSelectKeepsUnknownWhenReverseFails(t *testing.T) {
	t.Parallel()
	uc := newUsecase(&fakeGeocoder{reverseErr: errors.New("down")}, false, kv.NewMemoryStore())
	out, err := uc.Select(context.Background(), dto.SelectInput{Latitude: 10, Longitude: 10})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if out.City != domain.Unknown || out.Country != domain.Unknown {
		t.Fatalf("expected Unknown names, got %+v", out)
	}
}
