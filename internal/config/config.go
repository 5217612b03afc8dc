// Package config loads footprint's CLI configuration.
//
// Configuration comes from, in increasing precedence: built-in defaults,
// the global file ($FOOTPRINT_HOME/config.yaml, default ~/.footprint),
// a project overlay (./.footprint/config.yaml), FOOTPRINT_* environment
// variables, and finally CLI flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

const (
	configFileName = "config.yaml"
	homeDirName    = ".footprint"
	defaultLogName = "footprint.log"
)

// Config is footprint's full configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Profile ProfileConfig `yaml:"profile"`

	configPath string
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" validate:"oneof=table json ndjson"`
	Precision     int    `yaml:"precision" validate:"gte=0,lte=6"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"oneof=json console text"`
	File   string `yaml:"file,omitempty"`
}

// ProfileConfig controls how usage profiles are loaded.
type ProfileConfig struct {
	// DefaultPath is used by estimate when --profile is not given.
	DefaultPath string `yaml:"default_path,omitempty"`
	// UseDefaults fills keys missing from a profile with the built-in
	// default profile instead of zero.
	UseDefaults bool `yaml:"use_defaults"`
}

func defaultOutputConfig() OutputConfig {
	return OutputConfig{DefaultFormat: FormatTable, Precision: 2}
}

func defaultLoggingConfig() LoggingConfig {
	return LoggingConfig{Level: "info", Format: "console"}
}

func defaultProfileConfig() ProfileConfig {
	return ProfileConfig{UseDefaults: true}
}

// New returns a Config holding defaults, pointed at the global config path.
func New() *Config {
	return &Config{
		Output:     defaultOutputConfig(),
		Logging:    defaultLoggingConfig(),
		Profile:    defaultProfileConfig(),
		configPath: filepath.Join(HomeDir(), configFileName),
	}
}

// HomeDir returns the footprint home directory: $FOOTPRINT_HOME, else
// ~/.footprint, else ./.footprint when the user home is unknown.
func HomeDir() string {
	if dir := os.Getenv("FOOTPRINT_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return homeDirName
	}
	return filepath.Join(home, homeDirName)
}

// DefaultLogPath returns the log file used when logging.file is "default".
func DefaultLogPath() string {
	return filepath.Join(HomeDir(), "logs", defaultLogName)
}

// ConfigPath returns the file Save writes to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load builds the effective configuration.
//
// path names the global config file; empty means the default location.
// A missing global file or project overlay is not an error. projectDir,
// when non-empty, is the directory holding a project overlay config.yaml.
func Load(path, projectDir string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.configPath = path
	}

	if err := mergeIfExists(cfg, cfg.configPath); err != nil {
		return nil, err
	}
	if projectDir != "" {
		if err := mergeIfExists(cfg, filepath.Join(projectDir, configFileName)); err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeIfExists(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return ShallowMergeYAML(cfg, path)
}

//nolint:gochecknoglobals // validator caches struct metadata; one instance per process.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every section against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid configuration: %s=%v fails %q", fe.Namespace(), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML to ConfigPath, creating parent
// directories as needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// globalConfig is the configuration for the running command.
//
//nolint:gochecknoglobals // Set once per CLI invocation.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// SetGlobalConfig installs cfg as the configuration for this process.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the installed configuration, or defaults.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return New()
	}
	return globalConfig
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// ResetGlobalConfigForTest clears the installed configuration.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}
