package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/footprint/internal/footprint"
)

// Usage keys for the non-numeric fields.
const (
	KeyYouTubeQuality = "youtube_quality"
	KeyNetflixQuality = "netflix_quality"
	KeyDevices        = "devices"
	KeyConnection     = "connection"
)

// quantityField binds a usage key to a numeric field.
type quantityField struct {
	name string
	ptr  func(*footprint.UsageProfile) *float64
}

//nolint:gochecknoglobals // Static field table, ordered as UsageProfile.
var quantityFields = []quantityField{
	{"google_searches", func(u *footprint.UsageProfile) *float64 { return &u.GoogleSearches }},
	{"website_pages", func(u *footprint.UsageProfile) *float64 { return &u.WebsitePages }},
	{"emails_sent", func(u *footprint.UsageProfile) *float64 { return &u.EmailsSent }},
	{"emails_received", func(u *footprint.UsageProfile) *float64 { return &u.EmailsReceived }},
	{"youtube_hours", func(u *footprint.UsageProfile) *float64 { return &u.YouTubeHours }},
	{"netflix_hours", func(u *footprint.UsageProfile) *float64 { return &u.NetflixHours }},
	{"music_streaming_hours", func(u *footprint.UsageProfile) *float64 { return &u.MusicStreamingHours }},
	{"facebook_minutes", func(u *footprint.UsageProfile) *float64 { return &u.FacebookMinutes }},
	{"instagram_minutes", func(u *footprint.UsageProfile) *float64 { return &u.InstagramMinutes }},
	{"tiktok_minutes", func(u *footprint.UsageProfile) *float64 { return &u.TikTokMinutes }},
	{"twitter_minutes", func(u *footprint.UsageProfile) *float64 { return &u.TwitterMinutes }},
	{"linkedin_minutes", func(u *footprint.UsageProfile) *float64 { return &u.LinkedInMinutes }},
	{"mobile_gaming_minutes", func(u *footprint.UsageProfile) *float64 { return &u.MobileGamingMinutes }},
	{"online_gaming_minutes", func(u *footprint.UsageProfile) *float64 { return &u.OnlineGamingMinutes }},
	{"video_call_minutes", func(u *footprint.UsageProfile) *float64 { return &u.VideoCallMinutes }},
	{"cloud_storage_gb", func(u *footprint.UsageProfile) *float64 { return &u.CloudStorageGB }},
	{"download_games", func(u *footprint.UsageProfile) *float64 { return &u.DownloadGames }},
	{"software_updates", func(u *footprint.UsageProfile) *float64 { return &u.SoftwareUpdates }},
	{"photo_uploads", func(u *footprint.UsageProfile) *float64 { return &u.PhotoUploads }},
	{"video_uploads", func(u *footprint.UsageProfile) *float64 { return &u.VideoUploads }},
}

func lookupQuantity(key string) (quantityField, bool) {
	for _, f := range quantityFields {
		if f.name == key {
			return f, true
		}
	}
	return quantityField{}, false
}

// FieldNames returns every accepted usage key, sorted.
func FieldNames() []string {
	names := make([]string, 0, len(quantityFields)+4)
	for _, f := range quantityFields {
		names = append(names, f.name)
	}
	names = append(names, KeyYouTubeQuality, KeyNetflixQuality, KeyDevices, KeyConnection)
	sort.Strings(names)
	return names
}

// QuantityFieldNames returns the numeric usage keys in UsageProfile order.
func QuantityFieldNames() []string {
	names := make([]string, len(quantityFields))
	for i, f := range quantityFields {
		names[i] = f.name
	}
	return names
}

// Quantity returns the value of the numeric field named key.
func Quantity(u footprint.UsageProfile, key string) (float64, bool) {
	f, ok := lookupQuantity(key)
	if !ok {
		return 0, false
	}
	return *f.ptr(&u), true
}

// parseDevices accepts a list or a comma-separated string.
func parseDevices(v any) ([]footprint.DeviceKind, error) {
	var raw []string
	switch d := v.(type) {
	case nil:
		return nil, nil
	case string:
		for _, part := range strings.Split(d, ",") {
			if part = strings.TrimSpace(part); part != "" {
				raw = append(raw, part)
			}
		}
	case []any:
		for _, item := range d {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: device %v is not a string", footprint.ErrInvalidEnumeration, item)
			}
			raw = append(raw, strings.TrimSpace(s))
		}
	case []string:
		raw = d
	default:
		return nil, fmt.Errorf("%w: devices must be a list or comma-separated string", footprint.ErrInvalidEnumeration)
	}

	devices := make([]footprint.DeviceKind, 0, len(raw))
	for _, s := range raw {
		kind, err := footprint.ParseDevice(strings.ToLower(s))
		if err != nil {
			return nil, err
		}
		if !containsDevice(devices, kind) {
			devices = append(devices, kind)
		}
	}
	return devices, nil
}

func containsDevice(devices []footprint.DeviceKind, kind footprint.DeviceKind) bool {
	for _, d := range devices {
		if d == kind {
			return true
		}
	}
	return false
}

func enumString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %w: %v is not a string", key, footprint.ErrInvalidEnumeration, v)
	}
	return strings.TrimSpace(s), nil
}
