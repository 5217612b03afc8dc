package footprint

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuality(t *testing.T) {
	for _, q := range Qualities() {
		got, err := ParseQuality(string(q))
		require.NoError(t, err)
		assert.Equal(t, q, got)
	}

	for _, bad := range []string{"", "HD", "8k", "1080p"} {
		_, err := ParseQuality(bad)
		require.Error(t, err, "input %q", bad)
		assert.ErrorIs(t, err, ErrInvalidQuality)
		assert.ErrorIs(t, err, ErrInvalidEnumeration, "quality errors are enumeration errors")
	}
}

func TestParseDeviceAndConnection(t *testing.T) {
	for _, d := range DeviceKinds() {
		got, err := ParseDevice(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	for _, c := range ConnectionTypes() {
		got, err := ParseConnection(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseDevice("toaster")
	assert.ErrorIs(t, err, ErrInvalidEnumeration)
	assert.NotErrorIs(t, err, ErrInvalidQuality)

	_, err = ParseConnection("dialup")
	assert.ErrorIs(t, err, ErrInvalidEnumeration)
}

func TestErrorIs_Unrelated(t *testing.T) {
	assert.False(t, errors.Is(ErrInvalidEnumeration, ErrInvalidQuality))
	assert.False(t, errors.Is(ErrInvalidQuality, errors.New("invalid streaming quality")))
}

func TestUsageProfile_Sanitize(t *testing.T) {
	dirty := UsageProfile{
		GoogleSearches: -5,
		WebsitePages:   math.NaN(),
		YouTubeHours:   math.Inf(1),
		NetflixHours:   math.Inf(-1),
		TikTokMinutes:  42,
		Devices:        []DeviceKind{DeviceTablet},
	}

	clean := dirty.Sanitize()

	assert.Zero(t, clean.GoogleSearches)
	assert.Zero(t, clean.WebsitePages)
	assert.Zero(t, clean.YouTubeHours)
	assert.Zero(t, clean.NetflixHours)
	assert.InDelta(t, 42.0, clean.TikTokMinutes, 0)
	assert.Equal(t, []DeviceKind{DeviceTablet}, clean.Devices)
	assert.Less(t, dirty.GoogleSearches, 0.0, "Sanitize must not mutate the receiver")
}

func TestUsageProfile_Scale(t *testing.T) {
	scaled := DefaultProfile().Scale(2)

	assert.InDelta(t, 20.0, scaled.GoogleSearches, 0)
	assert.InDelta(t, 4.0, scaled.YouTubeHours, 0)
	assert.InDelta(t, 20.0, scaled.CloudStorageGB, 0)
	assert.Equal(t, QualityHD, scaled.YouTubeQuality)
	assert.Equal(t, ConnectionFiber, scaled.Connection)
	assert.True(t, scaled.Finite())

	overflowed := DefaultProfile().Scale(1e307)
	assert.False(t, overflowed.Finite(), "scaling past the float64 range is detectable")
	assert.False(t, UsageProfile{NetflixHours: math.NaN()}.Finite())
}

func TestUsageProfile_ToggleDevice(t *testing.T) {
	p := DefaultProfile()
	require.True(t, p.HasDevice(DeviceLaptop))

	without := p.ToggleDevice(DeviceLaptop)
	assert.False(t, without.HasDevice(DeviceLaptop))
	assert.True(t, without.HasDevice(DeviceSmartphone))
	assert.True(t, p.HasDevice(DeviceLaptop), "receiver is unchanged")

	with := without.ToggleDevice(DeviceSmartwatch)
	assert.Equal(t, []DeviceKind{DeviceSmartphone, DeviceSmartwatch}, with.Devices)
}

func TestQualityRates_Rate(t *testing.T) {
	r := DefaultCoefficients().YouTubeMinute

	got, ok := r.Rate(Quality4K)
	assert.True(t, ok)
	assert.InDelta(t, 25.0, got, 0)

	got, ok = r.Rate("8k")
	assert.False(t, ok)
	assert.Zero(t, got)
}
