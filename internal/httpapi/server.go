package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	dhikrin "mihrab/internal/modules/dhikr/port/in"
	locationin "mihrab/internal/modules/location/port/in"
	prayerin "mihrab/internal/modules/prayer/port/in"
	qiblain "mihrab/internal/modules/qibla/port/in"
	quranin "mihrab/internal/modules/quran/port/in"
	settingsin "mihrab/internal/modules/settings/port/in"
	tasbihin "mihrab/internal/modules/tasbih/port/in"
)

type Usecases struct {
	Qibla    qiblain.Usecase
	Tasbih   tasbihin.Usecase
	Dhikr    dhikrin.Usecase
	Location locationin.Usecase
	Prayer   prayerin.Usecase
	Quran    quranin.Usecase
	Settings settingsin.Usecase
}

func NewRouter(u Usecases, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	MountGroup(r, "/api",
		HealthModule(),
		QiblaModule(u.Qibla),
		TasbihModule(u.Tasbih),
		DhikrModule(u.Dhikr),
		LocationModule(u.Location),
		PrayerModule(u.Prayer),
		QuranModule(u.Quran),
		SettingsModule(u.Settings),
	)
	return r
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		ev := log.Debug()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(started)).
			Msg("request")
	}
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, log zerolog.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http api listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http api: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http api: %w", err)
		}
		return nil
	}
}
