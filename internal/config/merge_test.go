package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/config"
)

// newDefaultTarget returns a Config with known non-default values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Output: config.OutputConfig{
			DefaultFormat: "ndjson",
			Precision:     3,
		},
		Logging: config.LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Profile: config.ProfileConfig{
			DefaultPath: "/home/u/week.yaml",
			UseDefaults: false,
		},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
  precision: 4
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 4, target.Output.Precision)

	// Other sections should be unchanged.
	assert.Equal(t, "warn", target.Logging.Level)
	assert.Equal(t, "text", target.Logging.Format)
	assert.Equal(t, "/home/u/week.yaml", target.Profile.DefaultPath)
}

func TestShallowMergeYAML_SectionReplacedNotMerged(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
profile:
  default_path: ./team.yaml
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "./team.yaml", target.Profile.DefaultPath)
	assert.True(t, target.Profile.UseDefaults, "omitted fields take built-in defaults, not previous values")
}

func TestShallowMergeYAML_EmptyAndUnknown(t *testing.T) {
	target := newDefaultTarget()

	require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, "# only a comment\n")))
	require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, "plugins:\n  x: 1\n")))

	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		err := config.ShallowMergeYAML(nil, "whatever.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nil target")
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output: [unclosed\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("wrong section type", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output:\n  precision: lots\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "output"`)
	})
}
