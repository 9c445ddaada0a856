package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"mihrab/internal/bootstrap"
	"mihrab/internal/httpapi"
	"mihrab/internal/platform/config"
	"mihrab/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir string
	backend string
	fix     string
	json    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "mihrab",
		Short:         "Prayer times, qibla, dhikr and Quran recitation in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", config.DefaultDataDir(), "directory holding mihrab.yaml, state and logs")
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "storage backend override: sqlite|file|redis|memory")
	root.PersistentFlags().StringVar(&opts.fix, "fix", "", "device position as <lat>,<lon>")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print results as JSON")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newQiblaCmd(opts))
	root.AddCommand(newPrayerCmd(opts))
	root.AddCommand(newTasbihCmd(opts))
	root.AddCommand(newDhikrCmd(opts))
	root.AddCommand(newLocationCmd(opts))
	root.AddCommand(newQuranCmd(opts))
	root.AddCommand(newSettingsCmd(opts))
	return root
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.dataDir)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err = cfg.WithBackend(opts.backend)
	if err != nil {
		return config.Config{}, err
	}
	if strings.TrimSpace(opts.fix) != "" {
		lat, lon, err := parsePair(opts.fix)
		if err != nil {
			return config.Config{}, fmt.Errorf("--fix: %w", err)
		}
		cfg = cfg.WithFix(lat, lon)
	}
	return cfg, nil
}

func loadApp(ctx context.Context, opts *rootOptions, logOut io.Writer) (*bootstrap.App, context.Context, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(cfg.Log, logOut)
	app, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return app, log.WithContext(ctx), nil
}

// withApp builds the application graph for one command invocation and
// releases it afterwards.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, ctx, err := loadApp(cmd.Context(), opts, os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(ctx, app)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parsePair(s string) (float64, float64, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected <lat>,<lon>, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	return lat, lon, nil
}

// coordinates holds the optional --lat/--lon pair. pflag reads a positional
// "-33.8" as a shorthand, so coordinates are only accepted as flag values.
type coordinates struct {
	lat, lon float64
}

func (c *coordinates) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&c.lat, "lat", 0, "latitude (requires --lon)")
	cmd.Flags().Float64Var(&c.lon, "lon", 0, "longitude (requires --lat)")
}

// resolve returns nil pointers when neither flag is set.
func (c *coordinates) resolve(cmd *cobra.Command) (*float64, *float64, error) {
	hasLat, hasLon := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
	switch {
	case !hasLat && !hasLon:
		return nil, nil, nil
	case !hasLon:
		return nil, nil, fmt.Errorf("--lon is required with --lat")
	case !hasLat:
		return nil, nil, fmt.Errorf("--lat is required with --lon")
	}
	lat, lon := c.lat, c.lon
	return &lat, &lon, nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the mihrab terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logFile, err := logging.OpenFile(cfg.LogPath)
			if err != nil {
				return err
			}
			defer func() { _ = logFile.Close() }()

			app, ctx, err := loadApp(cmd.Context(), opts, logFile)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(ctx, app)
		},
	}
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if strings.TrimSpace(addr) == "" {
					addr = app.Config.Server.Addr
				}
				gin.SetMode(gin.ReleaseMode)
				router := httpapi.NewRouter(app.Usecases, app.Log)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "listening on http://%s\n", addr)
				return httpapi.Serve(ctx, addr, router, app.Log)
			})
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (defaults to server.addr)")
	return serve
}

func newQiblaCmd(opts *rootOptions) *cobra.Command {
	var heading float64
	var coords coordinates
	qibla := &cobra.Command{
		Use:   "qibla [--lat <lat> --lon <lon>]",
		Short: "Show the qibla bearing for the current or given position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lat, lon, err := coords.resolve(cmd)
			if err != nil {
				return err
			}
			var headingPtr *float64
			if cmd.Flags().Changed("heading") {
				headingPtr = &heading
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.QiblaCLI.Direction(ctx, lat, lon, headingPtr)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				w := cmd.OutOrStdout()
				if out.AtKaaba {
					_, _ = fmt.Fprintln(w, "you are at the Kaaba")
					return nil
				}
				_, _ = fmt.Fprintf(w, "qibla: %.1f° %s\n", out.Bearing, out.Compass)
				if out.Relative != nil {
					_, _ = fmt.Fprintf(w, "turn: %.1f° from heading %.1f°\n", *out.Relative, heading)
				}
				_, _ = fmt.Fprintf(w, "from: %s\n", placeLabel(out.City, out.Country, out.Latitude, out.Longitude))
				return nil
			})
		},
	}
	coords.bind(qibla)
	qibla.Flags().Float64Var(&heading, "heading", 0, "device compass heading in degrees")
	return qibla
}

func placeLabel(city, country string, lat, lon float64) string {
	coords := fmt.Sprintf("%.4f, %.4f", lat, lon)
	switch {
	case city != "" && country != "":
		return fmt.Sprintf("%s, %s (%s)", city, country, coords)
	case city != "":
		return fmt.Sprintf("%s (%s)", city, coords)
	}
	return coords
}

func newPrayerCmd(opts *rootOptions) *cobra.Command {
	prayer := &cobra.Command{Use: "prayer", Short: "Prayer times"}

	var method int
	var coords coordinates
	today := &cobra.Command{
		Use:   "today [--lat <lat> --lon <lon>]",
		Short: "Show today's prayer times and the next prayer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lat, lon, err := coords.resolve(cmd)
			if err != nil {
				return err
			}
			var methodPtr *int
			if cmd.Flags().Changed("method") {
				methodPtr = &method
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.PrayerCLI.Today(ctx, lat, lon, methodPtr)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s  %s  method=%d\n", out.Date, placeLabel(out.City, out.Country, out.Latitude, out.Longitude), out.Method)
				for _, p := range out.Prayers {
					marker := " "
					if p.Next {
						marker = "›"
					}
					_, _ = fmt.Fprintf(w, "%s %-8s %s\n", marker, p.Name, p.Time)
				}
				if out.Next != nil {
					_, _ = fmt.Fprintf(w, "next: %s in %s\n", out.Next.Name, out.Next.Remaining)
				}
				return nil
			})
		},
	}
	coords.bind(today)
	today.Flags().IntVar(&method, "method", 0, "calculation method id (defaults to settings)")

	methods := &cobra.Command{
		Use:   "methods",
		Short: "List calculation methods",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.PrayerCLI.Methods(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				for _, m := range out {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", m.ID, m.Name)
				}
				return nil
			})
		},
	}

	prayer.AddCommand(today, methods)
	return prayer
}
