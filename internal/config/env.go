package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every override variable, e.g. FOOTPRINT_LOG_LEVEL.
const envPrefix = "footprint"

// envOverrides are the FOOTPRINT_* variables that override file settings.
type envOverrides struct {
	OutputFormat string `envconfig:"OUTPUT_FORMAT"`
	LogLevel     string `envconfig:"LOG_LEVEL"`
	LogFormat    string `envconfig:"LOG_FORMAT"`
	LogFile      string `envconfig:"LOG_FILE"`
	Profile      string `envconfig:"PROFILE"`
	UseDefaults  *bool  `envconfig:"USE_DEFAULTS"`
}

// ApplyEnv overlays FOOTPRINT_* environment variables onto cfg.
// Unset variables leave cfg untouched.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("reading environment overrides: %w", err)
	}

	if env.OutputFormat != "" {
		cfg.Output.DefaultFormat = env.OutputFormat
	}
	if env.LogLevel != "" {
		cfg.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Logging.Format = env.LogFormat
	}
	if env.LogFile != "" {
		cfg.Logging.File = env.LogFile
	}
	if env.Profile != "" {
		cfg.Profile.DefaultPath = env.Profile
	}
	if env.UseDefaults != nil {
		cfg.Profile.UseDefaults = *env.UseDefaults
	}
	return nil
}
