package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config using optional fields so an omitted TOML
// key is distinguishable from a legitimate zero.
type FileConfig struct {
	Silicate  SilicateFileConfig  `toml:"silicate"`
	Phosphate PhosphateFileConfig `toml:"phosphate"`
}

// SilicateFileConfig is the [silicate] section: a linear calibration.
type SilicateFileConfig struct {
	Slope        *float64 `toml:"slope"`
	Intercept    *float64 `toml:"intercept"`
	SlopeErr     *float64 `toml:"slope_err"`
	InterceptErr *float64 `toml:"intercept_err"`
	BlankScatter *float64 `toml:"blank_scatter"`
}

// PhosphateFileConfig is the [phosphate] section: a quadratic calibration.
type PhosphateFileConfig struct {
	A            *float64 `toml:"a"`
	B            *float64 `toml:"b"`
	C            *float64 `toml:"c"`
	BlankScatter *float64 `toml:"blank_scatter"`
}

// LoadFileConfig reads and parses a TOML calibration file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default calibration file path.
// Returns ~/.chemcalc/calibration.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".chemcalc", "calibration.toml")
	}
	return ""
}

// ApplyFileConfig applies calibration values from a file to the Config.
// It respects flags that have been explicitly set (changed map).
// The silicate and phosphate blank scatters share the --blank-scatter
// flag name; each subcommand only registers it once, so the changed map
// disambiguates naturally.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setFloat("slope", fc.Silicate.Slope, &cfg.Silicate.Slope)
	s.setFloat("intercept", fc.Silicate.Intercept, &cfg.Silicate.Intercept)
	s.setFloat("slope-err", fc.Silicate.SlopeErr, &cfg.Silicate.SlopeErr)
	s.setFloat("intercept-err", fc.Silicate.InterceptErr, &cfg.Silicate.InterceptErr)
	s.setFloat("blank-scatter", fc.Silicate.BlankScatter, &cfg.SilicateBlankScatter)

	s.setFloat("coef-a", fc.Phosphate.A, &cfg.Phosphate.A)
	s.setFloat("coef-b", fc.Phosphate.B, &cfg.Phosphate.B)
	s.setFloat("coef-c", fc.Phosphate.C, &cfg.Phosphate.C)
	s.setFloat("blank-scatter", fc.Phosphate.BlankScatter, &cfg.PhosphateBlankScatter)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
