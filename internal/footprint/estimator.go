package footprint

import "math"

// Activity identifies one line of the per-activity breakdown.
type Activity string

// Breakdown activities, in display order.
const (
	ActivitySearches        Activity = "searches"
	ActivityBrowsing        Activity = "browsing"
	ActivityEmail           Activity = "email"
	ActivityYouTube         Activity = "youtube"
	ActivityNetflix         Activity = "netflix"
	ActivityMusic           Activity = "music"
	ActivityFacebook        Activity = "facebook"
	ActivityInstagram       Activity = "instagram"
	ActivityTikTok          Activity = "tiktok"
	ActivityTwitter         Activity = "twitter"
	ActivityLinkedIn        Activity = "linkedin"
	ActivityMobileGaming    Activity = "mobile_gaming"
	ActivityOnlineGaming    Activity = "online_gaming"
	ActivityVideoCalls      Activity = "video_calls"
	ActivityCloudStorage    Activity = "cloud_storage"
	ActivityGameDownloads   Activity = "game_downloads"
	ActivitySoftwareUpdates Activity = "software_updates"
	ActivityPhotoUploads    Activity = "photo_uploads"
	ActivityVideoUploads    Activity = "video_uploads"
)

// BreakdownItem is the daily volume attributed to one activity.
type BreakdownItem struct {
	Activity Activity `json:"activity"`
	Label    string   `json:"label"`
	DailyMB  float64  `json:"daily_mb"`
}

// Breakdown lists per-activity daily volume in display order.
type Breakdown []BreakdownItem

// TotalMB sums every item in order. A sum beyond the float64 range
// saturates at math.MaxFloat64.
func (b Breakdown) TotalMB() float64 {
	total := 0.0
	for _, item := range b {
		total += item.DailyMB
	}
	return saturate(total)
}

// EstimateBreakdown attributes the daily megabytes of usage to each activity.
//
// Monthly quantities (cloud storage, game downloads, software updates) are
// spread evenly over DaysPerMonth. An unknown streaming quality contributes
// zero for that activity. An item beyond the float64 range saturates.
func EstimateBreakdown(usage UsageProfile, coef CoefficientTable) Breakdown {
	youtubeRate, _ := coef.YouTubeMinute.Rate(usage.YouTubeQuality)
	netflixRate, _ := coef.NetflixMinute.Rate(usage.NetflixQuality)

	items := Breakdown{
		{ActivitySearches, "Google searches", usage.GoogleSearches * coef.GoogleSearch},
		{ActivityBrowsing, "Web browsing", usage.WebsitePages * coef.WebsitePage},
		{ActivityEmail, "Emails", (usage.EmailsSent + usage.EmailsReceived) * coef.EmailUnit},
		{ActivityYouTube, "YouTube", usage.YouTubeHours * MinutesPerHour * youtubeRate},
		{ActivityNetflix, "Netflix", usage.NetflixHours * MinutesPerHour * netflixRate},
		{ActivityMusic, "Music streaming", usage.MusicStreamingHours * MinutesPerHour * coef.MusicMinute},
		{ActivityFacebook, "Facebook", usage.FacebookMinutes * coef.FacebookMinute},
		{ActivityInstagram, "Instagram", usage.InstagramMinutes * coef.InstagramMinute},
		{ActivityTikTok, "TikTok", usage.TikTokMinutes * coef.TikTokMinute},
		{ActivityTwitter, "Twitter", usage.TwitterMinutes * coef.TwitterMinute},
		{ActivityLinkedIn, "LinkedIn", usage.LinkedInMinutes * coef.LinkedInMinute},
		{ActivityMobileGaming, "Mobile gaming", usage.MobileGamingMinutes * coef.MobileGamingMinute},
		{ActivityOnlineGaming, "Online gaming", usage.OnlineGamingMinutes * coef.OnlineGamingMinute},
		{ActivityVideoCalls, "Video calls", usage.VideoCallMinutes * coef.VideoCallMinute},
		{ActivityCloudStorage, "Cloud storage", (usage.CloudStorageGB * coef.CloudStorageGB) / DaysPerMonth},
		{ActivityGameDownloads, "Game downloads", (usage.DownloadGames * coef.DownloadGameGB) / DaysPerMonth},
		{ActivitySoftwareUpdates, "Software updates", (usage.SoftwareUpdates * coef.SoftwareUpdateGB) / DaysPerMonth},
		{ActivityPhotoUploads, "Photo uploads", usage.PhotoUploads * coef.PhotoMB},
		{ActivityVideoUploads, "Video uploads", usage.VideoUploads * coef.VideoMB},
	}
	for i := range items {
		items[i].DailyMB = saturate(items[i].DailyMB)
	}
	return items
}

// Estimate computes the full result profile for usage.
//
// The calculation is:
//  1. Daily MB = sum of every activity's daily volume
//  2. Monthly MB = daily × 30, yearly MB = daily × 365
//  3. GB = MB / 1024
//  4. CO2 kg = MB × emission factor
//  5. Equivalences = CO2 kg / divisor, rounded half away from zero
//
// Estimate never fails. Callers are expected to pass a sanitized profile;
// see UsageProfile.Sanitize. Values too large for float64 saturate at
// math.MaxFloat64 and equivalences saturate at math.MaxInt64, so every
// output stays finite and non-negative.
func Estimate(usage UsageProfile, coef CoefficientTable) ResultProfile {
	dailyMB := EstimateBreakdown(usage, coef).TotalMB()

	monthlyMB := saturate(dailyMB * DaysPerMonth)
	yearlyMB := saturate(dailyMB * DaysPerYear)

	monthlyCO2 := saturate(monthlyMB * coef.EmissionKgPerMB)
	yearlyCO2 := saturate(yearlyMB * coef.EmissionKgPerMB)

	return ResultProfile{
		DailyMB:      dailyMB,
		MonthlyMB:    monthlyMB,
		YearlyMB:     yearlyMB,
		MonthlyGB:    monthlyMB / MBPerGB,
		YearlyGB:     yearlyMB / MBPerGB,
		MonthlyCO2Kg: monthlyCO2,
		YearlyCO2Kg:  yearlyCO2,
		Equivalences: Equivalences{
			CarKmMonthly:   roundDiv(monthlyCO2, coef.CarKgPerKm),
			CarKmYearly:    roundDiv(yearlyCO2, coef.CarKgPerKm),
			TreesMonthly:   roundDiv(monthlyCO2, coef.TreeKgPerYear),
			TreesYearly:    roundDiv(yearlyCO2, coef.TreeKgPerYear),
			LightBulbHours: roundDiv(yearlyCO2, coef.LEDBulbKgPerHour),
			PhonesCharged:  roundDiv(yearlyCO2, coef.PhoneChargeKg),
		},
	}
}

// maxInt64Float is 2^63, the first float64 that does not fit in an int64.
const maxInt64Float = float64(1 << 63)

// roundDiv divides kg by factor and rounds to the nearest integer.
// A zero factor yields zero rather than an infinity. Quotients at or above
// 2^63 saturate at math.MaxInt64 and a NaN or negative quotient yields zero.
func roundDiv(kg, factor float64) int64 {
	if factor == 0 {
		return 0
	}
	q := math.Round(kg / factor)
	switch {
	case math.IsNaN(q), q <= 0:
		return 0
	case q >= maxInt64Float:
		return math.MaxInt64
	}
	return int64(q)
}

// saturate clamps +Inf to math.MaxFloat64 and NaN to zero.
func saturate(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return 0
	}
	return v
}

// Estimator binds a coefficient table so callers can estimate many
// profiles against the same constants.
type Estimator struct {
	coef CoefficientTable
}

// NewEstimator creates an Estimator using coef.
func NewEstimator(coef CoefficientTable) *Estimator {
	return &Estimator{coef: coef}
}

// NewDefaultEstimator creates an Estimator using DefaultCoefficients.
func NewDefaultEstimator() *Estimator {
	return NewEstimator(DefaultCoefficients())
}

// Coefficients returns the bound table.
func (e *Estimator) Coefficients() CoefficientTable {
	return e.coef
}

// Estimate computes the result profile for usage.
func (e *Estimator) Estimate(usage UsageProfile) ResultProfile {
	return Estimate(usage, e.coef)
}

// Breakdown computes the per-activity breakdown for usage.
func (e *Estimator) Breakdown(usage UsageProfile) Breakdown {
	return EstimateBreakdown(usage, e.coef)
}
