package footprint

// Fixed period and unit constants. A month is always 30 days and a year
// 365; nothing here is calendar-aware.
const (
	DaysPerMonth   = 30.0
	DaysPerYear    = 365.0
	MBPerGB        = 1024.0
	MinutesPerHour = 60.0
)

// Emission and equivalence constants, all in kilograms CO2.
const (
	// EmissionKgPerMB is the world-average footprint of moving one
	// megabyte (4 g CO2/MB).
	EmissionKgPerMB = 0.004

	// CarKgPerKm is emitted by an average car over one kilometre (120 g).
	CarKgPerKm = 0.12

	// TreeKgPerYear is absorbed by one tree over a year.
	TreeKgPerYear = 21.0

	// LEDBulbKgPerHour is emitted by one hour of LED lighting (60 g).
	LEDBulbKgPerHour = 0.06

	// PhoneChargeKg is emitted by one full smartphone charge (8.22 g).
	PhoneChargeKg = 0.00822
)

// QualityRates holds per-minute megabytes for each streaming quality.
type QualityRates struct {
	SD  float64 `json:"sd" yaml:"sd"`
	HD  float64 `json:"hd" yaml:"hd"`
	UHD float64 `json:"4k" yaml:"4k"`
}

// Rate returns the per-minute rate for q.
// Returns (0, false) when q is not a known quality.
func (r QualityRates) Rate(q Quality) (float64, bool) {
	switch q {
	case QualitySD:
		return r.SD, true
	case QualityHD:
		return r.HD, true
	case Quality4K:
		return r.UHD, true
	default:
		return 0, false
	}
}

// CoefficientTable maps each activity to the megabytes it moves per unit.
type CoefficientTable struct {
	GoogleSearch       float64      `json:"google_search" yaml:"google_search"`
	WebsitePage        float64      `json:"website_page" yaml:"website_page"`
	EmailUnit          float64      `json:"email_unit" yaml:"email_unit"`
	YouTubeMinute      QualityRates `json:"youtube_minute" yaml:"youtube_minute"`
	NetflixMinute      QualityRates `json:"netflix_minute" yaml:"netflix_minute"`
	MusicMinute        float64      `json:"music_minute" yaml:"music_minute"`
	FacebookMinute     float64      `json:"facebook_minute" yaml:"facebook_minute"`
	InstagramMinute    float64      `json:"instagram_minute" yaml:"instagram_minute"`
	TikTokMinute       float64      `json:"tiktok_minute" yaml:"tiktok_minute"`
	TwitterMinute      float64      `json:"twitter_minute" yaml:"twitter_minute"`
	LinkedInMinute     float64      `json:"linkedin_minute" yaml:"linkedin_minute"`
	MobileGamingMinute float64      `json:"mobile_gaming_minute" yaml:"mobile_gaming_minute"`
	OnlineGamingMinute float64      `json:"online_gaming_minute" yaml:"online_gaming_minute"`
	VideoCallMinute    float64      `json:"video_call_minute" yaml:"video_call_minute"`
	CloudStorageGB     float64      `json:"cloud_storage_gb" yaml:"cloud_storage_gb"`
	DownloadGameGB     float64      `json:"download_game_gb" yaml:"download_game_gb"`
	SoftwareUpdateGB   float64      `json:"software_update_gb" yaml:"software_update_gb"`
	PhotoMB            float64      `json:"photo_mb" yaml:"photo_mb"`
	VideoMB            float64      `json:"video_mb" yaml:"video_mb"`

	EmissionKgPerMB  float64 `json:"emission_kg_per_mb" yaml:"emission_kg_per_mb"`
	CarKgPerKm       float64 `json:"car_kg_per_km" yaml:"car_kg_per_km"`
	TreeKgPerYear    float64 `json:"tree_kg_per_year" yaml:"tree_kg_per_year"`
	LEDBulbKgPerHour float64 `json:"led_bulb_kg_per_hour" yaml:"led_bulb_kg_per_hour"`
	PhoneChargeKg    float64 `json:"phone_charge_kg" yaml:"phone_charge_kg"`
}

// DefaultCoefficients returns the built-in coefficient table.
// The values are illustrative averages, not measurements.
func DefaultCoefficients() CoefficientTable {
	return CoefficientTable{
		GoogleSearch:       0.2,
		WebsitePage:        2.5,
		EmailUnit:          0.075,
		YouTubeMinute:      QualityRates{SD: 5, HD: 12, UHD: 25},
		NetflixMinute:      QualityRates{SD: 7, HD: 15, UHD: 35},
		MusicMinute:        1.2,
		FacebookMinute:     2.5,
		InstagramMinute:    3.5,
		TikTokMinute:       8,
		TwitterMinute:      1.8,
		LinkedInMinute:     2,
		MobileGamingMinute: 5,
		OnlineGamingMinute: 45,
		VideoCallMinute:    15,
		CloudStorageGB:     1 * MBPerGB,
		DownloadGameGB:     50 * MBPerGB,
		SoftwareUpdateGB:   2 * MBPerGB,
		PhotoMB:            3,
		VideoMB:            150,

		EmissionKgPerMB:  EmissionKgPerMB,
		CarKgPerKm:       CarKgPerKm,
		TreeKgPerYear:    TreeKgPerYear,
		LEDBulbKgPerHour: LEDBulbKgPerHour,
		PhoneChargeKg:    PhoneChargeKg,
	}
}
