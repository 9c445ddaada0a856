package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"mihrab/internal/httpapi"
	dhikrinadapter "mihrab/internal/modules/dhikr/adapter/in"
	dhikroutadapter "mihrab/internal/modules/dhikr/adapter/out"
	dhikrservice "mihrab/internal/modules/dhikr/service"
	dhikrusecase "mihrab/internal/modules/dhikr/usecase"
	locationinadapter "mihrab/internal/modules/location/adapter/in"
	locationoutadapter "mihrab/internal/modules/location/adapter/out"
	locationservice "mihrab/internal/modules/location/service"
	locationusecase "mihrab/internal/modules/location/usecase"
	prayerinadapter "mihrab/internal/modules/prayer/adapter/in"
	prayeroutadapter "mihrab/internal/modules/prayer/adapter/out"
	prayerservice "mihrab/internal/modules/prayer/service"
	prayerusecase "mihrab/internal/modules/prayer/usecase"
	qiblainadapter "mihrab/internal/modules/qibla/adapter/in"
	qiblaoutadapter "mihrab/internal/modules/qibla/adapter/out"
	qiblaservice "mihrab/internal/modules/qibla/service"
	qiblausecase "mihrab/internal/modules/qibla/usecase"
	quraninadapter "mihrab/internal/modules/quran/adapter/in"
	quranoutadapter "mihrab/internal/modules/quran/adapter/out"
	quranservice "mihrab/internal/modules/quran/service"
	quranusecase "mihrab/internal/modules/quran/usecase"
	settingsinadapter "mihrab/internal/modules/settings/adapter/in"
	settingsoutadapter "mihrab/internal/modules/settings/adapter/out"
	settingsservice "mihrab/internal/modules/settings/service"
	settingsusecase "mihrab/internal/modules/settings/usecase"
	tasbihinadapter "mihrab/internal/modules/tasbih/adapter/in"
	tasbihoutadapter "mihrab/internal/modules/tasbih/adapter/out"
	tasbihservice "mihrab/internal/modules/tasbih/service"
	tasbihusecase "mihrab/internal/modules/tasbih/usecase"
	"mihrab/internal/platform/clock"
	"mihrab/internal/platform/config"
	"mihrab/internal/platform/httpjson"
	"mihrab/internal/platform/kv"
	uiapp "mihrab/internal/ui/app"
)

type App struct {
	QiblaCLI    qiblainadapter.CLIHandler
	TasbihCLI   tasbihinadapter.CLIHandler
	DhikrCLI    dhikrinadapter.CLIHandler
	LocationCLI locationinadapter.CLIHandler
	PrayerCLI   prayerinadapter.CLIHandler
	QuranCLI    quraninadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler

	// Usecases is the same graph exposed to the HTTP server.
	Usecases httpapi.Usecases

	Config config.Config
	Log    zerolog.Logger

	store   kv.Store
	clients []*httpjson.Client
	quran   *quranservice.QuranService
}

func New(ctx context.Context, cfg config.Config, log zerolog.Logger) (*App, error) {
	store, err := kv.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}

	newClient := func(name, baseURL string) *httpjson.Client {
		return httpjson.New(baseURL, httpjson.Options{
			Timeout:   cfg.HTTP.Timeout,
			UserAgent: cfg.HTTP.UserAgent,
			Logger:    log.With().Str("api", name).Logger(),
		})
	}
	nominatim := newClient("nominatim", cfg.API.Nominatim)
	aladhan := newClient("aladhan", cfg.API.Aladhan)
	mp3quran := newClient("mp3quran", cfg.API.MP3Quran)
	qurancom := newClient("qurancom", cfg.API.QuranCom)

	locationUC := locationusecase.NewInteractor(locationservice.NewLocationService(
		locationoutadapter.NewNominatimGeocoder(nominatim, log),
		locationoutadapter.NewFixedLocator(cfg.Location.HasFix, cfg.Location.Latitude, cfg.Location.Longitude),
		locationoutadapter.NewKVLocationStore(store),
		log,
	))

	qiblaUC := qiblausecase.NewInteractor(
		qiblaservice.NewQiblaService(),
		qiblaoutadapter.NewLocationObserverAdapter(locationUC),
	)

	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(
		settingsoutadapter.NewKVSettingsStore(store),
		log,
	))

	prayerUC := prayerusecase.NewInteractor(
		prayerservice.NewPrayerService(prayeroutadapter.NewAladhanClient(aladhan, log), clock.LocalClock{}, log),
		prayeroutadapter.NewLocationPlaceAdapter(locationUC),
		prayeroutadapter.NewSettingsMethodAdapter(settingsUC),
	)

	tasbihUC := tasbihusecase.NewInteractor(tasbihservice.NewTasbihService(
		tasbihoutadapter.NewKVCounterStore(store),
		log,
	))

	dhikrUC := dhikrusecase.NewInteractor(dhikrservice.NewDhikrService(
		dhikroutadapter.NewEmbeddedCatalog(),
		dhikroutadapter.NewKVProgressStore(store),
		log,
	))

	quranSvc := quranservice.NewQuranService(
		quranoutadapter.NewMP3QuranClient(mp3quran, log),
		quranoutadapter.NewQuranComClient(qurancom),
		quranoutadapter.NewExecPlayer(cfg.Quran.Player, log),
		cfg.Quran.AutoAdvance,
		log,
	)
	quranUC := quranusecase.NewInteractor(quranSvc, quranoutadapter.NewSettingsLanguageAdapter(settingsUC))

	return &App{
		QiblaCLI:    qiblainadapter.NewCLIHandler(qiblaUC),
		TasbihCLI:   tasbihinadapter.NewCLIHandler(tasbihUC),
		DhikrCLI:    dhikrinadapter.NewCLIHandler(dhikrUC),
		LocationCLI: locationinadapter.NewCLIHandler(locationUC),
		PrayerCLI:   prayerinadapter.NewCLIHandler(prayerUC),
		QuranCLI:    quraninadapter.NewCLIHandler(quranUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		Usecases: httpapi.Usecases{
			Qibla:    qiblaUC,
			Tasbih:   tasbihUC,
			Dhikr:    dhikrUC,
			Location: locationUC,
			Prayer:   prayerUC,
			Quran:    quranUC,
			Settings: settingsUC,
		},
		Config:  cfg,
		Log:     log,
		store:   store,
		clients: []*httpjson.Client{nominatim, aladhan, mp3quran, qurancom},
		quran:   quranSvc,
	}, nil
}

// Close stops any playback and releases the store.
func (a *App) Close() error {
	if err := a.quran.Stop(); err != nil {
		a.Log.Debug().Err(err).Msg("stop playback on close")
	}
	for _, c := range a.clients {
		c.CloseIdleConnections()
	}
	return a.store.Close()
}

func RunTUI(ctx context.Context, app *App) error {
	model := uiapp.NewModel(ctx, uiapp.Ports{
		Qibla:    app.QiblaCLI,
		Prayer:   app.PrayerCLI,
		Tasbih:   app.TasbihCLI,
		Dhikr:    app.DhikrCLI,
		Quran:    app.QuranCLI,
		Location: app.LocationCLI,
		Settings: app.SettingsCLI,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
