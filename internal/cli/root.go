// Package cli implements the weather terminal client.
package cli

import (
	"errors"
	"os"

	"weather_card/internal/geocoding"
	"weather_card/internal/geolocation"
	"weather_card/internal/weather"
	"weather_card/platform/config"
	"weather_card/platform/logger"
	"weather_card/platform/validator"

	"github.com/spf13/cobra"
)

// errReported marks a failure that was already printed for the user.
var errReported = errors.New("reported")

// Services are the domain dependencies of the commands.
type Services struct {
	Weather weather.Provider
	Locator geolocation.Locator
}

// Builder creates Services from the loaded configuration.
type Builder func(cfg *config.Config, log *logger.Logger) Services

// DefaultServices wires the real upstream clients.
func DefaultServices(cfg *config.Config, log *logger.Logger) Services {
	geolocationModule := geolocation.NewModule(cfg, log)
	geocodingModule := geocoding.NewModule(cfg, log)
	weatherModule := weather.NewModule(cfg, geocodingModule.Geocoder(), log)

	return Services{
		Weather: weatherModule.Provider(),
		Locator: geolocationModule.Locator(),
	}
}

// env carries what every subcommand needs once the root has set up.
type env struct {
	opts     *Options
	log      *logger.Logger
	services Services
	val      *validator.Validator
}

// NewRootCommand builds the weather command tree.
func NewRootCommand(build Builder) *cobra.Command {
	e := &env{opts: NewOptions(), val: validator.New()}

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Current weather for a city or your approximate location",
		Long: "weather looks up current conditions via Open-Meteo and prints them as a card.\n" +
			"Without a subcommand it starts the interactive search.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.opts.Validate(); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.opts.ApplyTo(cfg)

			e.log = logger.Discard()
			if e.opts.Verbose {
				e.log = logger.NewWithWriter("development", cmd.ErrOrStderr())
			}
			e.services = build(cfg, e.log)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, e)
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	e.opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newCityCommand(e),
		newCoordsCommand(e),
		newLocateCommand(e),
		newInteractiveCommand(e),
	)

	return cmd
}

// Execute runs the command tree and returns the process exit code.
func Execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			cmd.PrintErrln("Fehler:", err)
		}
		return 1
	}
	return 0
}
