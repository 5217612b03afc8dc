package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
)

// isolateHome points FOOTPRINT_HOME at a temp dir and clears overrides.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("FOOTPRINT_HOME", home)
	for _, k := range []string{
		"FOOTPRINT_OUTPUT_FORMAT", "FOOTPRINT_LOG_LEVEL", "FOOTPRINT_LOG_FORMAT",
		"FOOTPRINT_LOG_FILE", "FOOTPRINT_PROFILE", "FOOTPRINT_USE_DEFAULTS",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return home
}

func TestNew_Defaults(t *testing.T) {
	home := isolateHome(t)

	cfg := config.New()

	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Profile.UseDefaults)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFilesUseDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := config.Load("", "")
	require.NoError(t, err)
	assert.Equal(t, config.New().Output, cfg.Output)
}

func TestLoad_Precedence(t *testing.T) {
	home := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
output:
  default_format: json
logging:
  level: debug
  format: json
`), 0o600))

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, "config.yaml"), []byte(`
logging:
  level: warn
  format: console
`), 0o600))

	t.Setenv("FOOTPRINT_OUTPUT_FORMAT", "ndjson")
	t.Setenv("FOOTPRINT_USE_DEFAULTS", "false")

	cfg, err := config.Load("", project)
	require.NoError(t, err)

	assert.Equal(t, "ndjson", cfg.Output.DefaultFormat, "env beats file")
	assert.Equal(t, "warn", cfg.Logging.Level, "project overlay beats global file")
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Profile.UseDefaults)
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  precision: 5\n"), 0o600))

	cfg, err := config.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Output.Precision)
	assert.Equal(t, path, cfg.ConfigPath())
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{name: "bad format", yaml: "output:\n  default_format: xml\n", wantErr: "DefaultFormat"},
		{name: "precision too high", yaml: "output:\n  precision: 9\n", wantErr: "Precision"},
		{name: "bad level", yaml: "logging:\n  level: chatty\n  format: json\n", wantErr: "Level"},
		{name: "bad env format", env: map[string]string{"FOOTPRINT_OUTPUT_FORMAT": "csv"}, wantErr: "DefaultFormat"},
		{name: "bad env bool", env: map[string]string{"FOOTPRINT_USE_DEFAULTS": "maybe"}, wantErr: "environment overrides"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolateHome(t)
			if tt.yaml != "" {
				require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(tt.yaml), 0o600))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load("", "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	isolateHome(t)

	cfg := config.New()
	cfg.SetConfigPath(filepath.Join(t.TempDir(), "nested", "config.yaml"))
	cfg.Output.DefaultFormat = config.FormatJSON
	cfg.Profile.DefaultPath = "week.yaml"
	require.NoError(t, cfg.Save())

	loaded, err := config.Load(cfg.ConfigPath(), "")
	require.NoError(t, err)
	assert.Equal(t, cfg.Output, loaded.Output)
	assert.Equal(t, cfg.Profile, loaded.Profile)
	assert.Equal(t, cfg.Logging, loaded.Logging)
}

func TestGlobalConfig(t *testing.T) {
	isolateHome(t)
	t.Cleanup(func() { config.SetGlobalConfig(nil) })

	config.SetGlobalConfig(nil)
	assert.Equal(t, config.FormatTable, config.GetDefaultOutputFormat())

	cfg := config.New()
	cfg.Output.DefaultFormat = config.FormatJSON
	config.SetGlobalConfig(cfg)
	assert.Equal(t, config.FormatJSON, config.GetDefaultOutputFormat())
	assert.Same(t, cfg, config.GetGlobalConfig())
}

func TestToLoggingConfig(t *testing.T) {
	home := isolateHome(t)

	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Empty(t, got.File)

	lc.File = "/var/log/fp.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/var/log/fp.log", got.File)

	lc.File = "default"
	got = lc.ToLoggingConfig()
	assert.Equal(t, filepath.Join(home, "logs", "footprint.log"), got.File)
}

func TestEnsureLogDir(t *testing.T) {
	home := isolateHome(t)
	t.Cleanup(func() { config.SetGlobalConfig(nil) })

	cfg := config.New()
	cfg.Logging.File = "default"
	config.SetGlobalConfig(cfg)

	require.NoError(t, config.EnsureLogDir())
	info, err := os.Stat(filepath.Join(home, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
