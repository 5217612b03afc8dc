package profile

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverrides(t *testing.T) {
	got, err := ParseOverrides([]string{"youtube_hours=3", " tiktok_minutes = 90 ", "devices=laptop,tablet", "youtube_hours=4"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"youtube_hours":  "4",
		"tiktok_minutes": "90",
		"devices":        "laptop,tablet",
	}, got)
}

func TestParseOverrides_ValueMayContainEquals(t *testing.T) {
	got, err := ParseOverrides([]string{"name=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "a=b", got["name"])
}

func TestParseOverrides_Errors(t *testing.T) {
	tooMany := make([]string, MaxOverrides+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("k%d=1", i)
	}

	tests := []struct {
		name    string
		pairs   []string
		wantErr string
	}{
		{"missing equals", []string{"youtube_hours"}, "expected key=value"},
		{"empty key", []string{"=3"}, "cannot be empty"},
		{"too many", tooMany, "too many overrides"},
		{"long key", []string{strings.Repeat("k", 65) + "=1"}, "key too long"},
		{"long value", []string{"k=" + strings.Repeat("v", 257)}, "value too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOverrides(tt.pairs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseOverrides_Empty(t *testing.T) {
	got, err := ParseOverrides(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
