// Package footprint estimates the data volume and CO2 emissions of a
// person's digital habits.
//
// A UsageProfile describes daily and monthly activity (searches, streaming
// hours, social-media minutes, uploads, storage). Estimate combines it with
// a CoefficientTable of megabytes-per-unit values and returns a
// ResultProfile holding daily, monthly and yearly volumes, CO2 mass and
// relatable equivalences such as car kilometres or smartphone charges.
//
// Everything in this package is pure and synchronous. Input coercion from
// untrusted text happens in the profile package before values reach here.
package footprint

import (
	"fmt"
	"math"
)

// Quality is a video streaming quality tier.
type Quality string

const (
	// QualitySD is standard definition (480p).
	QualitySD Quality = "sd"
	// QualityHD is high definition (1080p).
	QualityHD Quality = "hd"
	// Quality4K is ultra high definition.
	Quality4K Quality = "4k"
)

// Qualities lists the valid quality tiers in ascending bitrate order.
func Qualities() []Quality {
	return []Quality{QualitySD, QualityHD, Quality4K}
}

// ParseQuality returns the Quality named by s.
// Returns ErrInvalidQuality for anything outside {sd, hd, 4k}.
func ParseQuality(s string) (Quality, error) {
	switch q := Quality(s); q {
	case QualitySD, QualityHD, Quality4K:
		return q, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidQuality, s)
	}
}

// DeviceKind is a class of device the user owns. Descriptive only.
type DeviceKind string

const (
	DeviceSmartphone DeviceKind = "smartphone"
	DeviceLaptop     DeviceKind = "laptop"
	DeviceDesktop    DeviceKind = "desktop"
	DeviceTablet     DeviceKind = "tablet"
	DeviceSmartwatch DeviceKind = "smartwatch"
)

// DeviceKinds lists every known device kind.
func DeviceKinds() []DeviceKind {
	return []DeviceKind{DeviceSmartphone, DeviceLaptop, DeviceDesktop, DeviceTablet, DeviceSmartwatch}
}

// ParseDevice returns the DeviceKind named by s or ErrInvalidEnumeration.
func ParseDevice(s string) (DeviceKind, error) {
	for _, d := range DeviceKinds() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: device %q", ErrInvalidEnumeration, s)
}

// ConnectionType is how the user reaches the network. Descriptive only.
type ConnectionType string

const (
	ConnectionFiber ConnectionType = "fiber"
	ConnectionADSL  ConnectionType = "adsl"
	Connection4G    ConnectionType = "4g"
	Connection5G    ConnectionType = "5g"
	ConnectionWiFi  ConnectionType = "wifi"
)

// ConnectionTypes lists every known connection type.
func ConnectionTypes() []ConnectionType {
	return []ConnectionType{ConnectionFiber, ConnectionADSL, Connection4G, Connection5G, ConnectionWiFi}
}

// ParseConnection returns the ConnectionType named by s or ErrInvalidEnumeration.
func ParseConnection(s string) (ConnectionType, error) {
	for _, c := range ConnectionTypes() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: connection %q", ErrInvalidEnumeration, s)
}

// UsageProfile is one user's estimated digital activity.
//
// Daily fields are per day, monthly fields per month. Devices and
// Connection are carried for display and never enter the arithmetic.
type UsageProfile struct {
	// Web browsing (count/day).
	GoogleSearches float64 `json:"google_searches" yaml:"google_searches"`
	WebsitePages   float64 `json:"website_pages" yaml:"website_pages"`
	EmailsSent     float64 `json:"emails_sent" yaml:"emails_sent"`
	EmailsReceived float64 `json:"emails_received" yaml:"emails_received"`

	// Streaming (hours/day).
	YouTubeHours        float64 `json:"youtube_hours" yaml:"youtube_hours"`
	YouTubeQuality      Quality `json:"youtube_quality" yaml:"youtube_quality"`
	NetflixHours        float64 `json:"netflix_hours" yaml:"netflix_hours"`
	NetflixQuality      Quality `json:"netflix_quality" yaml:"netflix_quality"`
	MusicStreamingHours float64 `json:"music_streaming_hours" yaml:"music_streaming_hours"`

	// Social networks (minutes/day).
	FacebookMinutes  float64 `json:"facebook_minutes" yaml:"facebook_minutes"`
	InstagramMinutes float64 `json:"instagram_minutes" yaml:"instagram_minutes"`
	TikTokMinutes    float64 `json:"tiktok_minutes" yaml:"tiktok_minutes"`
	TwitterMinutes   float64 `json:"twitter_minutes" yaml:"twitter_minutes"`
	LinkedInMinutes  float64 `json:"linkedin_minutes" yaml:"linkedin_minutes"`

	// Gaming and apps (minutes/day).
	MobileGamingMinutes float64 `json:"mobile_gaming_minutes" yaml:"mobile_gaming_minutes"`
	OnlineGamingMinutes float64 `json:"online_gaming_minutes" yaml:"online_gaming_minutes"`
	VideoCallMinutes    float64 `json:"video_call_minutes" yaml:"video_call_minutes"`

	// Monthly quantities.
	CloudStorageGB  float64 `json:"cloud_storage_gb" yaml:"cloud_storage_gb"`
	DownloadGames   float64 `json:"download_games" yaml:"download_games"`
	SoftwareUpdates float64 `json:"software_updates" yaml:"software_updates"`

	// Uploads (count/day).
	PhotoUploads float64 `json:"photo_uploads" yaml:"photo_uploads"`
	VideoUploads float64 `json:"video_uploads" yaml:"video_uploads"`

	Devices    []DeviceKind   `json:"devices,omitempty" yaml:"devices,omitempty"`
	Connection ConnectionType `json:"connection,omitempty" yaml:"connection,omitempty"`
}

// DefaultProfile returns the starting profile shown to a new user.
func DefaultProfile() UsageProfile {
	return UsageProfile{
		GoogleSearches:      10,
		WebsitePages:        50,
		EmailsSent:          20,
		EmailsReceived:      50,
		YouTubeHours:        2,
		YouTubeQuality:      QualityHD,
		NetflixHours:        1,
		NetflixQuality:      QualityHD,
		MusicStreamingHours: 3,
		FacebookMinutes:     30,
		InstagramMinutes:    45,
		TikTokMinutes:       60,
		TwitterMinutes:      20,
		LinkedInMinutes:     15,
		MobileGamingMinutes: 60,
		OnlineGamingMinutes: 120,
		VideoCallMinutes:    90,
		CloudStorageGB:      10,
		DownloadGames:       2,
		SoftwareUpdates:     4,
		PhotoUploads:        20,
		VideoUploads:        2,
		Devices:             []DeviceKind{DeviceSmartphone, DeviceLaptop},
		Connection:          ConnectionFiber,
	}
}

// quantities returns pointers to every numeric field, in declaration order.
func (u *UsageProfile) quantities() []*float64 {
	return []*float64{
		&u.GoogleSearches, &u.WebsitePages, &u.EmailsSent, &u.EmailsReceived,
		&u.YouTubeHours, &u.NetflixHours, &u.MusicStreamingHours,
		&u.FacebookMinutes, &u.InstagramMinutes, &u.TikTokMinutes, &u.TwitterMinutes, &u.LinkedInMinutes,
		&u.MobileGamingMinutes, &u.OnlineGamingMinutes, &u.VideoCallMinutes,
		&u.CloudStorageGB, &u.DownloadGames, &u.SoftwareUpdates,
		&u.PhotoUploads, &u.VideoUploads,
	}
}

// Sanitize returns a copy with every NaN, infinite or negative quantity
// replaced by zero.
func (u UsageProfile) Sanitize() UsageProfile {
	out := u.clone()
	for _, p := range out.quantities() {
		if math.IsNaN(*p) || math.IsInf(*p, 0) || *p < 0 {
			*p = 0
		}
	}
	return out
}

// Scale returns a copy with every quantity multiplied by k.
// Qualities, devices and connection are unchanged.
func (u UsageProfile) Scale(k float64) UsageProfile {
	out := u.clone()
	for _, p := range out.quantities() {
		*p *= k
	}
	return out
}

// Finite reports whether every quantity is a finite number.
func (u UsageProfile) Finite() bool {
	for _, p := range u.quantities() {
		if math.IsNaN(*p) || math.IsInf(*p, 0) {
			return false
		}
	}
	return true
}

func (u UsageProfile) clone() UsageProfile {
	out := u
	if u.Devices != nil {
		out.Devices = append([]DeviceKind(nil), u.Devices...)
	}
	return out
}

// HasDevice reports whether d is in the profile's device set.
func (u UsageProfile) HasDevice(d DeviceKind) bool {
	for _, have := range u.Devices {
		if have == d {
			return true
		}
	}
	return false
}

// ToggleDevice adds d when absent and removes it when present.
func (u UsageProfile) ToggleDevice(d DeviceKind) UsageProfile {
	out := u.clone()
	if !u.HasDevice(d) {
		out.Devices = append(out.Devices, d)
		return out
	}
	kept := out.Devices[:0]
	for _, have := range out.Devices {
		if have != d {
			kept = append(kept, have)
		}
	}
	out.Devices = kept
	return out
}

// Equivalences expresses CO2 mass as everyday quantities, rounded to the
// nearest integer.
type Equivalences struct {
	CarKmMonthly   int64 `json:"car_km_monthly"`
	CarKmYearly    int64 `json:"car_km_yearly"`
	TreesMonthly   int64 `json:"trees_monthly"`
	TreesYearly    int64 `json:"trees_yearly"`
	LightBulbHours int64 `json:"light_bulb_hours"`
	PhonesCharged  int64 `json:"phones_charged"`
}

// ResultProfile is everything derived from one UsageProfile.
type ResultProfile struct {
	DailyMB      float64      `json:"daily_mb"`
	MonthlyMB    float64      `json:"monthly_mb"`
	YearlyMB     float64      `json:"yearly_mb"`
	MonthlyGB    float64      `json:"monthly_gb"`
	YearlyGB     float64      `json:"yearly_gb"`
	MonthlyCO2Kg float64      `json:"monthly_co2_kg"`
	YearlyCO2Kg  float64      `json:"yearly_co2_kg"`
	Equivalences Equivalences `json:"equivalences"`
}
