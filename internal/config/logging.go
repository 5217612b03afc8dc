package config

import (
	"os"
	"path/filepath"

	"github.com/rshade/footprint/internal/logging"
)

// logFileDefault in logging.file selects DefaultLogPath.
const logFileDefault = "default"

// ToLoggingConfig converts config.LoggingConfig to logging.Config for use with
// the internal/logging package.
//
// The conversion applies these rules:
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//     ("default" resolves to DefaultLogPath)
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	if lc.File == "" {
		return logging.Config{Level: lc.Level, Format: lc.Format, Output: logging.OutputStderr}
	}

	file := lc.File
	if file == logFileDefault {
		file = DefaultLogPath()
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: logging.OutputFile,
		File:   file,
	}
}

// GetLoggingConfig returns the Logging section of the global configuration.
// The returned value is a copy; flag overrides such as --debug are applied
// by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

// EnsureLogDir creates the directory holding the configured log file.
func EnsureLogDir() error {
	lc := GetLoggingConfig()
	target := lc.ToLoggingConfig()
	if target.File == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(target.File), 0o750)
}
