package cliconfig

import "os"

// EnvConfigPath is the environment variable naming an alternate
// calibration file.
const EnvConfigPath = "CHEMCALC_CONFIG"

// ApplyEnvConfig applies configuration from environment variables (CHEMCALC_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setFloatFromString("blank-scatter", os.Getenv("CHEMCALC_SI_BLANK_SCATTER"), &cfg.SilicateBlankScatter); err != nil {
		return err
	}
	if err := s.setFloatFromString("blank-scatter", os.Getenv("CHEMCALC_PO4_BLANK_SCATTER"), &cfg.PhosphateBlankScatter); err != nil {
		return err
	}
	return nil
}
