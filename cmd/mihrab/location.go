package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mihrab/internal/bootstrap"
	locationdto "mihrab/internal/modules/location/dto"
)

func newLocationCmd(opts *rootOptions) *cobra.Command {
	location := &cobra.Command{Use: "location", Short: "Current location"}

	location.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the saved or detected location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.LocationCLI.Current(ctx)
				if err != nil {
					return err
				}
				return printLocation(cmd.OutOrStdout(), opts, out)
			})
		},
	})

	location.AddCommand(&cobra.Command{
		Use:   "detect",
		Short: "Detect the device position, name it and save it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.LocationCLI.Detect(ctx)
				if err != nil {
					return err
				}
				return printLocation(cmd.OutOrStdout(), opts, out)
			})
		},
	})

	location.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search places by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.LocationCLI.Search(ctx, query)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				if len(out) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no places found")
					return nil
				}
				for _, l := range out {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%.4f\t%.4f\t%s\t%s\n", l.Latitude, l.Longitude, l.City, l.Country)
				}
				return nil
			})
		},
	})

	var lat, lon float64
	var city, country string
	set := &cobra.Command{
		Use:   "set --lat <lat> --lon <lon>",
		Short: "Save a location picked by hand",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("lat") {
				return fmt.Errorf("--lat is required")
			}
			if !cmd.Flags().Changed("lon") {
				return fmt.Errorf("--lon is required")
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.LocationCLI.Select(ctx, lat, lon, city, country)
				if err != nil {
					return err
				}
				return printLocation(cmd.OutOrStdout(), opts, out)
			})
		},
	}
	set.Flags().Float64Var(&lat, "lat", 0, "latitude")
	set.Flags().Float64Var(&lon, "lon", 0, "longitude")
	set.Flags().StringVar(&city, "city", "", "city name")
	set.Flags().StringVar(&country, "country", "", "country name")
	location.AddCommand(set)

	location.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the saved location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.LocationCLI.Clear(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "location cleared")
				return nil
			})
		},
	})
	return location
}

func printLocation(w io.Writer, opts *rootOptions, out locationdto.LocationOutput) error {
	if opts.json {
		return printJSON(w, out)
	}
	_, _ = fmt.Fprintf(w, "%s\n", placeLabel(out.City, out.Country, out.Latitude, out.Longitude))
	if out.Source != "" {
		_, _ = fmt.Fprintf(w, "source: %s\n", out.Source)
	}
	return nil
}
