package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"weather_card/internal/presentation"
	"weather_card/platform/sanitize"

	"github.com/spf13/cobra"
)

func newCityCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "city NAME...",
		Short:   "Show the current weather for a city",
		Example: "  weather city Berlin\n  weather city Frankfurt am Main --json",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := sanitize.Query(strings.Join(args, " "))
			if err := e.val.CityName(query); err != nil {
				return fmt.Errorf("ungültiger Stadtname %q", query)
			}

			session := presentation.NewSession(e.services.Weather, nil, e.log)
			state := session.Submit(cmd.Context(), query)
			return printState(cmd, e, state)
		},
	}
}

func newCoordsCommand(e *env) *cobra.Command {
	var (
		lat, lon      float64
		city, country string
	)

	cmd := &cobra.Command{
		Use:     "coords",
		Short:   "Show the current weather at coordinates",
		Example: "  weather coords --lat 52.52 --lon 13.41",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.val.Var(lat, "min=-90,max=90"); err != nil {
				return errors.New("--lat muss zwischen -90 und 90 liegen")
			}
			if err := e.val.Var(lon, "min=-180,max=180"); err != nil {
				return errors.New("--lon muss zwischen -180 und 180 liegen")
			}

			snap, err := e.services.Weather.GetWeatherByCoordinates(cmd.Context(), lat, lon, sanitize.Query(city), sanitize.Query(country))
			if err != nil {
				return err
			}
			return printState(cmd, e, presentation.Loaded{Snapshot: snap})
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees.")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in degrees.")
	cmd.Flags().StringVar(&city, "city", "", "City name to show instead of reverse geocoding.")
	cmd.Flags().StringVar(&country, "country", "", "Country name to show instead of reverse geocoding.")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func newLocateCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Show the approximate location of this machine's public address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			guess, err := e.services.Locator.Locate(cmd.Context())
			if err != nil {
				return err
			}

			if e.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), guess)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s, %s (%.4f, %.4f)\n", guess.City, guess.Country, guess.Latitude, guess.Longitude)
			return err
		},
	}
}

func newInteractiveCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Search repeatedly; a lone Tab accepts the location suggestion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, e)
		},
	}
}

// printState writes st as a card or as JSON. A failed state is printed and
// reported as errReported so the process exits non-zero.
func printState(cmd *cobra.Command, e *env, st presentation.State) error {
	out := cmd.OutOrStdout()

	if e.opts.JSON {
		switch st := st.(type) {
		case presentation.Loaded:
			return writeJSON(out, st.Snapshot)
		case presentation.Failed:
			if err := writeJSON(cmd.ErrOrStderr(), map[string]string{"error": st.Message}); err != nil {
				return err
			}
			return errReported
		}
		return nil
	}

	if failed, ok := st.(presentation.Failed); ok {
		if err := presentation.RenderState(cmd.ErrOrStderr(), failed, time.Now()); err != nil {
			return err
		}
		return errReported
	}
	return presentation.RenderState(out, st, time.Now())
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
