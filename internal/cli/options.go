package cli

import (
	"errors"
	"time"

	"weather_card/platform/config"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

// Options are the global flags of the weather command.
type Options struct {
	Timeout        time.Duration
	Language       string
	JSON           bool
	Verbose        bool
	SuggestionWait time.Duration
}

// NewOptions creates options that leave the loaded config untouched.
func NewOptions() *Options {
	return &Options{
		SuggestionWait: 1500 * time.Millisecond,
	}
}

// AddFlags adds the options to fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "Per-request upstream timeout (overrides UPSTREAM_TIMEOUT).")
	fs.StringVar(&o.Language, "language", o.Language, "Geocoding language as BCP 47 tag (overrides GEOCODING_LANGUAGE).")
	fs.BoolVar(&o.JSON, "json", o.JSON, "Print results as JSON instead of a card.")
	fs.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "Log diagnostics to stderr.")
	fs.DurationVar(&o.SuggestionWait, "suggestion-wait", o.SuggestionWait, "How long the interactive mode waits for the location suggestion before the first prompt.")
}

// Validate checks the flag values.
func (o *Options) Validate() error {
	var errs []error
	if o.Timeout < 0 {
		errs = append(errs, errors.New("--timeout must not be negative"))
	}
	if o.SuggestionWait < 0 {
		errs = append(errs, errors.New("--suggestion-wait must not be negative"))
	}
	if o.Language != "" {
		if _, err := language.Parse(o.Language); err != nil {
			errs = append(errs, errors.New("--language is not a valid language tag"))
		}
	}
	return errors.Join(errs...)
}

// ApplyTo overrides cfg with the flags that were set.
func (o *Options) ApplyTo(cfg *config.Config) {
	if o.Timeout > 0 {
		cfg.UpstreamTimeout = o.Timeout
	}
	if o.Language != "" {
		cfg.GeocodingLanguage = language.Make(o.Language)
	}
}
