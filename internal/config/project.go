package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rshade/footprint/internal/logging"
)

// projectDirName is the per-project config directory looked up by walk-up.
const projectDirName = ".footprint"

// resolvedProjectDir holds the resolved project directory path for use
// by other config functions during the lifetime of a CLI invocation.
var (
	resolvedProjectDir   string       //nolint:gochecknoglobals // Set once at startup, read by config loaders
	resolvedProjectDirMu sync.RWMutex //nolint:gochecknoglobals // Protects resolvedProjectDir
)

// SetResolvedProjectDir stores the resolved project directory for use by other config functions.
func SetResolvedProjectDir(dir string) {
	resolvedProjectDirMu.Lock()
	defer resolvedProjectDirMu.Unlock()
	resolvedProjectDir = dir
}

// GetResolvedProjectDir returns the stored resolved project directory.
func GetResolvedProjectDir() string {
	resolvedProjectDirMu.RLock()
	defer resolvedProjectDirMu.RUnlock()
	return resolvedProjectDir
}

// ResolveProjectDir determines the project-local .footprint directory path.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. FOOTPRINT_PROJECT_DIR env var
//  3. walking up from startDir to the first directory holding .footprint/
//
// The global home directory never counts as a project directory.
// Returns an absolute path, or empty string if no project was found.
// Does NOT create the directory.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv("FOOTPRINT_PROJECT_DIR"); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	if startDir == "" {
		return ""
	}
	dir := toAbsProjectDir(ctx, startDir)
	home := toAbsProjectDir(ctx, HomeDir())
	for {
		if dir != home {
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				logging.FromContext(ctx).Debug().
					Str("component", "config").
					Str("project_dir", dir).
					Msg("discovered project config directory")
				return dir
			}
		}
		parent := filepath.Dir(filepath.Dir(dir))
		next := filepath.Join(parent, projectDirName)
		if next == dir {
			return ""
		}
		dir = next
	}
}

// toAbsProjectDir converts dir to an absolute path and appends ".footprint".
// If the path already ends with ".footprint", it is returned as-is (after
// resolving to an absolute path) to prevent double-append.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == projectDirName {
		return abs
	}

	return filepath.Join(abs, projectDirName)
}
