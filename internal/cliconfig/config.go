package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tidewater-labs/chemcalc/pkg/conc"
)

// Config holds the calibration curves and instrument scatter the CLI
// converts against. Coefficients are assumed to come from a calibration
// fit done elsewhere (spreadsheet, notebook); this tool only applies
// them.
type Config struct {
	Silicate             conc.LinearCurve
	SilicateBlankScatter float64

	Phosphate             conc.QuadraticCurve
	PhosphateBlankScatter float64
}

// DefaultConfig returns an empty Config. There are no meaningful
// default coefficients; a curve must come from the calibration file,
// environment, or flags before it can be used.
func DefaultConfig() Config {
	return Config{}
}

// ValidateSilicate checks the silicate curve is usable.
func (c *Config) ValidateSilicate() error {
	if c.Silicate.Slope == 0 {
		return fmt.Errorf("silicate slope is required and must be non-zero")
	}
	if c.SilicateBlankScatter < 0 {
		return fmt.Errorf("silicate blank_scatter must be non-negative")
	}
	return nil
}

// ValidatePhosphate checks the phosphate curve is usable.
func (c *Config) ValidatePhosphate() error {
	if c.Phosphate.A == 0 {
		return fmt.Errorf("phosphate coefficient a is required and must be non-zero")
	}
	if c.PhosphateBlankScatter < 0 {
		return fmt.Errorf("phosphate blank_scatter must be non-negative")
	}
	return nil
}

// Logger returns the console logger used by the CLI.
func Logger() zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Logger()
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setFloat sets a float64 value from an optional pointer if present and
// the flag not changed. Calibration coefficients may legitimately be
// zero or negative, so presence is tracked with a pointer rather than a
// sentinel value.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatFromString parses a string to float64 and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}
