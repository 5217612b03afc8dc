package profile_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/profile"
)

const weekYAML = `schema_version: "1.0.0"
name: my-week
usage:
  google_searches: 10
  youtube_hours: "2"
  youtube_quality: HD
  tiktok_minutes: lots
  devices: [smartphone, laptop]
  connection: fiber
`

const weekJSON = `{
  "schema_version": "1.0.0",
  "name": "my-week",
  "usage": {
    "google_searches": 10,
    "youtube_hours": "2",
    "youtube_quality": "hd",
    "tiktok_minutes": "lots",
    "devices": "smartphone, laptop",
    "connection": "fiber"
  }
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_YAMLAndJSONAgree(t *testing.T) {
	ctx := context.Background()
	opts := profile.Options{UseDefaults: false}

	fromYAML, err := profile.Parse(ctx, []byte(weekYAML), profile.FormatYAML, opts)
	require.NoError(t, err)
	fromJSON, err := profile.Parse(ctx, []byte(weekJSON), profile.FormatJSON, opts)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromJSON)
	assert.Equal(t, "my-week", fromYAML.Name)

	u := fromYAML.Usage
	assert.InDelta(t, 10.0, u.GoogleSearches, 0)
	assert.InDelta(t, 2.0, u.YouTubeHours, 0, "string numbers coerce")
	assert.Zero(t, u.TikTokMinutes, "garbage coerces to zero")
	assert.Zero(t, u.WebsitePages, "missing keys are zero without defaults")
	assert.Equal(t, footprint.QualityHD, u.YouTubeQuality)
	assert.Equal(t, []footprint.DeviceKind{footprint.DeviceSmartphone, footprint.DeviceLaptop}, u.Devices)
	assert.Equal(t, footprint.ConnectionFiber, u.Connection)
}

func TestParse_UseDefaults(t *testing.T) {
	p, err := profile.Parse(context.Background(), []byte("usage:\n  youtube_hours: 5\n"), profile.FormatYAML,
		profile.Options{UseDefaults: true})
	require.NoError(t, err)

	want := footprint.DefaultProfile()
	want.YouTubeHours = 5
	assert.Equal(t, want, p.Usage)
}

func TestParse_EmptyDocument(t *testing.T) {
	p, err := profile.Parse(context.Background(), nil, profile.FormatYAML, profile.Options{UseDefaults: true})
	require.NoError(t, err)
	assert.Equal(t, footprint.DefaultProfile(), p.Usage)
}

func TestBase_ZeroKeepsStreamingQuality(t *testing.T) {
	base := profile.Base(profile.Options{})
	assert.Equal(t, footprint.QualityHD, base.YouTubeQuality)
	assert.Equal(t, footprint.QualityHD, base.NetflixQuality)

	got := footprint.Estimate(base, footprint.DefaultCoefficients())
	assert.Zero(t, got.DailyMB)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		format  profile.Format
		wantIs  error
		wantMsg string
	}{
		{
			name:    "invalid quality",
			doc:     "usage:\n  netflix_quality: 8k\n",
			format:  profile.FormatYAML,
			wantIs:  footprint.ErrInvalidQuality,
			wantMsg: "netflix_quality",
		},
		{
			name:   "quality errors are enumeration errors",
			doc:    `{"usage":{"youtube_quality":"ultra"}}`,
			format: profile.FormatJSON,
			wantIs: footprint.ErrInvalidEnumeration,
		},
		{
			name:    "invalid device",
			doc:     "usage:\n  devices: [smartphone, toaster]\n",
			format:  profile.FormatYAML,
			wantIs:  footprint.ErrInvalidEnumeration,
			wantMsg: "toaster",
		},
		{
			name:   "non-string connection",
			doc:    "usage:\n  connection: 5\n",
			format: profile.FormatYAML,
			wantIs: footprint.ErrInvalidEnumeration,
		},
		{
			name:    "unknown field",
			doc:     "usage:\n  myspace_minutes: 10\n",
			format:  profile.FormatYAML,
			wantIs:  profile.ErrUnknownField,
			wantMsg: "myspace_minutes",
		},
		{
			name:   "future schema",
			doc:    "schema_version: 2.0.0\n",
			format: profile.FormatYAML,
			wantIs: profile.ErrUnsupportedSchema,
		},
		{
			name:   "garbage schema",
			doc:    "schema_version: one\n",
			format: profile.FormatYAML,
			wantIs: profile.ErrUnsupportedSchema,
		},
		{
			name:   "name too long",
			doc:    "name: " + strings.Repeat("x", 129) + "\n",
			format: profile.FormatYAML,
			wantIs: profile.ErrInvalidDocument,
		},
		{
			name:   "unknown format",
			doc:    "",
			format: profile.Format("toml"),
			wantIs: profile.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := profile.Parse(context.Background(), []byte(tt.doc), tt.format, profile.Options{})
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantIs)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_MalformedInput(t *testing.T) {
	_, err := profile.Parse(context.Background(), []byte("usage: [1, 2"), profile.FormatYAML, profile.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML profile")

	_, err = profile.Parse(context.Background(), []byte("{"), profile.FormatJSON, profile.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON profile")
}

func TestParse_MinorSchemaAccepted(t *testing.T) {
	_, err := profile.Parse(context.Background(), []byte("schema_version: 1.4.2\n"), profile.FormatYAML, profile.Options{})
	require.NoError(t, err)
}

func TestParse_LogsCoercion(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	_, err := profile.Parse(ctx, []byte("usage:\n  tiktok_minutes: -5\n"), profile.FormatYAML, profile.Options{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "coerced usage value to 0")
	assert.Contains(t, buf.String(), `"field":"tiktok_minutes"`)
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()

	p, err := profile.LoadFile(ctx, writeFile(t, "week.yml", weekYAML), profile.Options{})
	require.NoError(t, err)
	assert.Equal(t, "my-week", p.Name)
	assert.True(t, strings.HasSuffix(p.Source, "week.yml"))

	p, err = profile.LoadFile(ctx, writeFile(t, "nameless.json", `{"usage":{}}`), profile.Options{})
	require.NoError(t, err)
	assert.Equal(t, "nameless", p.Name, "name falls back to the file stem")

	_, err = profile.LoadFile(ctx, writeFile(t, "week.toml", ""), profile.Options{})
	require.ErrorIs(t, err, profile.ErrUnsupportedFormat)

	_, err = profile.LoadFile(ctx, filepath.Join(t.TempDir(), "missing.yaml"), profile.Options{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_RejectsOversizedDocument(t *testing.T) {
	big := strings.Repeat("#", (1<<20)+10)
	_, err := profile.Load(context.Background(), strings.NewReader(big), profile.FormatYAML, profile.Options{})
	require.ErrorIs(t, err, profile.ErrInvalidDocument)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	base := footprint.DefaultProfile()

	got, err := profile.Apply(ctx, base, map[string]string{
		"youtube_hours":   "4",
		"netflix_quality": "4k",
		"tiktok_minutes":  "",
		"Devices":         "tablet",
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, got.YouTubeHours, 0)
	assert.Equal(t, footprint.Quality4K, got.NetflixQuality)
	assert.Zero(t, got.TikTokMinutes, "empty input coerces to zero")
	assert.Equal(t, []footprint.DeviceKind{footprint.DeviceTablet}, got.Devices)
	assert.Equal(t, footprint.DefaultProfile(), base, "base is not modified")
}

func TestApply_ErrorLeavesBase(t *testing.T) {
	base := footprint.DefaultProfile()

	got, err := profile.Apply(context.Background(), base, map[string]string{"youtube_quality": "8k"})
	require.ErrorIs(t, err, footprint.ErrInvalidQuality)
	assert.Equal(t, base, got)
}

func TestFieldNames(t *testing.T) {
	names := profile.FieldNames()
	assert.Len(t, names, 24)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "cloud_storage_gb")
	assert.Contains(t, names, profile.KeyDevices)

	quantities := profile.QuantityFieldNames()
	assert.Len(t, quantities, 20)
	assert.Equal(t, "google_searches", quantities[0])
}

func TestQuantity(t *testing.T) {
	v, ok := profile.Quantity(footprint.DefaultProfile(), "online_gaming_minutes")
	assert.True(t, ok)
	assert.InDelta(t, 120.0, v, 0)

	_, ok = profile.Quantity(footprint.DefaultProfile(), "devices")
	assert.False(t, ok)
}

func TestEncode_RoundTrip(t *testing.T) {
	ctx := context.Background()
	usage := footprint.DefaultProfile()
	usage.YouTubeQuality = footprint.Quality4K
	usage.CloudStorageGB = 12.5

	for _, format := range []profile.Format{profile.FormatYAML, profile.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, profile.Encode(&buf, profile.ToDocument("round", usage), format))

			p, err := profile.Parse(ctx, buf.Bytes(), format, profile.Options{})
			require.NoError(t, err)
			assert.Equal(t, "round", p.Name)
			assert.Equal(t, usage, p.Usage)
		})
	}

	err := profile.Encode(&bytes.Buffer{}, profile.Document{}, profile.Format("xml"))
	require.ErrorIs(t, err, profile.ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]profile.Format{
		"a.yaml": profile.FormatYAML,
		"a.YML":  profile.FormatYAML,
		"a.json": profile.FormatJSON,
	} {
		got, err := profile.FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := profile.FormatFromPath("profile")
	require.ErrorIs(t, err, profile.ErrUnsupportedFormat)
}
