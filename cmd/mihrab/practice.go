package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mihrab/internal/bootstrap"
	dhikrdto "mihrab/internal/modules/dhikr/dto"
	tasbihdto "mihrab/internal/modules/tasbih/dto"
)

func newTasbihCmd(opts *rootOptions) *cobra.Command {
	tasbih := &cobra.Command{Use: "tasbih", Short: "Tasbih counters"}

	tasbih.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the three counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TasbihCLI.State(ctx)
				if err != nil {
					return err
				}
				return printTasbih(cmd.OutOrStdout(), opts, out)
			})
		},
	})

	tasbih.AddCommand(&cobra.Command{
		Use:   "inc <phrase>",
		Short: "Count one recitation of a phrase (name or 1-3)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TasbihCLI.Increment(ctx, args[0])
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				c := out.Counter
				switch {
				case !out.Changed:
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s already completed (%d/%d)\n", c.Title, c.Count, c.Target)
				case c.Completed:
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s completed (%d/%d)\n", c.Title, c.Count, c.Target)
				default:
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d/%d\n", c.Title, c.Count, c.Target)
				}
				if out.State.AllCompleted {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all counters completed")
				}
				return nil
			})
		},
	})

	tasbih.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset every counter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TasbihCLI.ResetAll(ctx)
				if err != nil {
					return err
				}
				return printTasbih(cmd.OutOrStdout(), opts, out)
			})
		},
	})
	return tasbih
}

func printTasbih(w io.Writer, opts *rootOptions, out tasbihdto.StateOutput) error {
	if opts.json {
		return printJSON(w, out)
	}
	for i, c := range out.Counters {
		done := ""
		if c.Completed {
			done = "  ✓"
		}
		_, _ = fmt.Fprintf(w, "%d. %-14s %-12s %2d/%d%s\n", i+1, c.Title, c.Arabic, c.Count, c.Target, done)
	}
	return nil
}

func newDhikrCmd(opts *rootOptions) *cobra.Command {
	dhikr := &cobra.Command{Use: "dhikr", Short: "Morning and evening adhkar"}

	step := func(use, short string, args cobra.PositionalArgs, run func(ctx context.Context, app *bootstrap.App, args []string) (dhikrdto.StateOutput, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
					out, err := run(ctx, app, args)
					if err != nil {
						return err
					}
					return printDhikr(cmd.OutOrStdout(), opts, out)
				})
			},
		}
	}

	dhikr.AddCommand(
		step("show", "Show the current adhkar item", cobra.NoArgs, func(ctx context.Context, app *bootstrap.App, _ []string) (dhikrdto.StateOutput, error) {
			return app.DhikrCLI.State(ctx)
		}),
		step("tab <morning|evening>", "Switch between morning and evening adhkar", cobra.ExactArgs(1), func(ctx context.Context, app *bootstrap.App, args []string) (dhikrdto.StateOutput, error) {
			return app.DhikrCLI.SwitchTab(ctx, args[0])
		}),
		step("next", "Move to the next item", cobra.NoArgs, func(ctx context.Context, app *bootstrap.App, _ []string) (dhikrdto.StateOutput, error) {
			return app.DhikrCLI.Next(ctx)
		}),
		step("prev", "Move to the previous item", cobra.NoArgs, func(ctx context.Context, app *bootstrap.App, _ []string) (dhikrdto.StateOutput, error) {
			return app.DhikrCLI.Previous(ctx)
		}),
		step("advance", "Count one repetition of the current item", cobra.NoArgs, func(ctx context.Context, app *bootstrap.App, _ []string) (dhikrdto.StateOutput, error) {
			return app.DhikrCLI.Advance(ctx)
		}),
		step("reset", "Clear all adhkar progress", cobra.NoArgs, func(ctx context.Context, app *bootstrap.App, _ []string) (dhikrdto.StateOutput, error) {
			return app.DhikrCLI.ResetAll(ctx)
		}),
	)
	return dhikr
}

func printDhikr(w io.Writer, opts *rootOptions, out dhikrdto.StateOutput) error {
	if opts.json {
		return printJSON(w, out)
	}
	_, _ = fmt.Fprintf(w, "%s  %d/%d  (morning %d/%d, evening %d/%d)\n",
		out.ActiveTab, out.Position, out.Total,
		out.Morning.Completed, out.Morning.Total, out.Evening.Completed, out.Evening.Total)
	if out.Total == 0 {
		return nil
	}
	cur := out.Current
	_, _ = fmt.Fprintln(w, cur.Arabic)
	if strings.TrimSpace(cur.Transliteration) != "" {
		_, _ = fmt.Fprintln(w, cur.Transliteration)
	}
	_, _ = fmt.Fprintln(w, cur.Translation)
	if cur.Completed {
		_, _ = fmt.Fprintln(w, "completed")
	} else {
		_, _ = fmt.Fprintf(w, "repetition %d/%d\n", out.Repetition, out.Required)
	}
	return nil
}
