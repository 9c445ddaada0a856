package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mihrab/internal/bootstrap"
	settingsdto "mihrab/internal/modules/settings/dto"
)

const playbackPoll = 500 * time.Millisecond

func newQuranCmd(opts *rootOptions) *cobra.Command {
	quran := &cobra.Command{Use: "quran", Short: "Quran recitations"}

	quran.AddCommand(&cobra.Command{
		Use:   "languages",
		Short: "List catalog languages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.QuranCLI.Languages(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				for _, l := range out {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", l.ID, l.ISO, l.Name, l.Native)
				}
				return nil
			})
		},
	})

	var language int
	var query string
	reciters := &cobra.Command{
		Use:   "reciters",
		Short: "List reciters for a language",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.QuranCLI.Reciters(ctx, language, query)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				if len(out) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no reciters")
					return nil
				}
				for _, r := range out {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", r.ID, r.Name)
					for _, m := range r.Moshaf {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\t%d\t%s (%d surahs)\n", m.ID, m.Name, m.SurahTotal)
					}
				}
				return nil
			})
		},
	}
	reciters.Flags().IntVar(&language, "language", 0, "catalog language id (defaults to the app language)")
	reciters.Flags().StringVar(&query, "query", "", "filter reciters by name")

	quran.AddCommand(reciters)

	quran.AddCommand(&cobra.Command{
		Use:   "surahs",
		Short: "List the 114 surahs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.QuranCLI.Surahs(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				for _, s := range out {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%3d\t%s\t%s\n", s.ID, s.NameSimple, s.NameArabic)
				}
				return nil
			})
		},
	})

	var playLanguage, reciter, moshaf, surah int
	play := &cobra.Command{
		Use:   "play --reciter <id> --surah <n>",
		Short: "Play a surah and wait until it finishes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if reciter <= 0 {
				return fmt.Errorf("--reciter is required")
			}
			if surah <= 0 {
				return fmt.Errorf("--surah is required")
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.QuranCLI.Play(ctx, playLanguage, reciter, moshaf, surah)
				if err != nil {
					return err
				}
				if opts.json {
					if err := printJSON(cmd.OutOrStdout(), out); err != nil {
						return err
					}
				} else {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "playing surah %d by %s (%s)\n%s\n", out.SurahID, out.ReciterName, out.MoshafName, out.URL)
				}
				return waitPlayback(ctx, app)
			})
		},
	}
	play.Flags().IntVar(&playLanguage, "language", 0, "catalog language id (defaults to the app language)")
	play.Flags().IntVar(&reciter, "reciter", 0, "reciter id")
	play.Flags().IntVar(&moshaf, "moshaf", 0, "moshaf id (defaults to the reciter's first)")
	play.Flags().IntVar(&surah, "surah", 0, "surah number 1-114")
	quran.AddCommand(play)

	return quran
}

// waitPlayback blocks until the player goes idle or ctx is cancelled, in
// which case playback is stopped.
func waitPlayback(ctx context.Context, app *bootstrap.App) error {
	ticker := time.NewTicker(playbackPoll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return app.QuranCLI.Stop(context.WithoutCancel(ctx))
		case <-ticker.C:
			now, err := app.QuranCLI.NowPlaying(ctx)
			if err != nil {
				return err
			}
			if !now.Playing {
				return nil
			}
		}
	}
}

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Application settings"}

	show := func(cmd *cobra.Command, out settingsdto.SettingsOutput) error {
		if opts.json {
			return printJSON(cmd.OutOrStdout(), out)
		}
		sound := out.AdhanSoundID
		if sound == "" {
			sound = "-"
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "language: %s\nmethod: %d\nnotifications: %t\nadhan: %s\n",
			out.Language, out.CalculationMethod, out.NotificationsEnabled, sound)
		return nil
	}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SettingsCLI.Get(ctx)
				if err != nil {
					return err
				}
				return show(cmd, out)
			})
		},
	})

	var language, adhan string
	var method int
	var notifications bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input settingsdto.UpdateInput
			flags := cmd.Flags()
			if flags.Changed("language") {
				input.Language = &language
			}
			if flags.Changed("method") {
				input.CalculationMethod = &method
			}
			if flags.Changed("notifications") {
				input.NotificationsEnabled = &notifications
			}
			if flags.Changed("adhan") {
				trimmed := strings.TrimSpace(adhan)
				input.AdhanSoundID = &trimmed
			}
			if input == (settingsdto.UpdateInput{}) {
				return fmt.Errorf("nothing to change: pass --language, --method, --notifications or --adhan")
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SettingsCLI.Update(ctx, input)
				if err != nil {
					return err
				}
				return show(cmd, out)
			})
		},
	}
	set.Flags().StringVar(&language, "language", "", "interface language: en|ar")
	set.Flags().IntVar(&method, "method", 0, "prayer calculation method id")
	set.Flags().BoolVar(&notifications, "notifications", false, "enable prayer notifications")
	set.Flags().StringVar(&adhan, "adhan", "", "adhan sound id")
	settings.AddCommand(set)

	return settings
}
