package footprint

import "fmt"

// Tier is an ordered consumption band derived from yearly data volume.
type Tier int

const (
	// TierLow is below 50 GB a year.
	TierLow Tier = iota
	// TierModerate is 50 GB up to 200 GB.
	TierModerate
	// TierHeavy is 200 GB up to 500 GB.
	TierHeavy
	// TierVeryHeavy is 500 GB and above.
	TierVeryHeavy
)

// Tier lower bounds in GB per year.
const (
	ModerateMinGB  = 50.0
	HeavyMinGB     = 200.0
	VeryHeavyMinGB = 500.0
)

// ClassifyYearlyGB returns the tier for a yearly volume in GB.
// Bounds are inclusive below and exclusive above.
func ClassifyYearlyGB(gb float64) Tier {
	switch {
	case gb >= VeryHeavyMinGB:
		return TierVeryHeavy
	case gb >= HeavyMinGB:
		return TierHeavy
	case gb >= ModerateMinGB:
		return TierModerate
	default:
		return TierLow
	}
}

// Classify returns the tier for a result profile.
func Classify(r ResultProfile) Tier {
	return ClassifyYearlyGB(r.YearlyGB)
}

// String returns the machine name of the tier.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierModerate:
		return "moderate"
	case TierHeavy:
		return "heavy"
	case TierVeryHeavy:
		return "very-heavy"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Title returns the banner heading for the tier.
func (t Tier) Title() string {
	switch t {
	case TierLow:
		return "Eco-responsible user"
	case TierModerate:
		return "Moderate user"
	case TierHeavy:
		return "Heavy user"
	case TierVeryHeavy:
		return "Very heavy user"
	default:
		return t.String()
	}
}

// Message returns the banner body for the tier.
func (t Tier) Message() string {
	switch t {
	case TierLow:
		return "Your consumption is low!"
	case TierModerate:
		return "Consumption is about average"
	case TierHeavy:
		return "Consider optimizing your usage"
	case TierVeryHeavy:
		return "Urgent action recommended"
	default:
		return ""
	}
}

// ParseTier returns the tier named by s (as produced by Tier.String).
func ParseTier(s string) (Tier, error) {
	for _, t := range []Tier{TierLow, TierModerate, TierHeavy, TierVeryHeavy} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: tier %q", ErrInvalidEnumeration, s)
}

// MarshalText encodes the tier as its machine name.
func (t Tier) MarshalText() ([]byte, error) {
	switch t {
	case TierLow, TierModerate, TierHeavy, TierVeryHeavy:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("%w: tier %d", ErrInvalidEnumeration, int(t))
	}
}

// UnmarshalText decodes a machine name produced by MarshalText.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AdvisoryKind identifies a per-activity advisory.
type AdvisoryKind string

const (
	AdvisoryYouTube      AdvisoryKind = "youtube"
	AdvisoryNetflix      AdvisoryKind = "netflix"
	AdvisoryTikTok       AdvisoryKind = "tiktok"
	AdvisoryOnlineGaming AdvisoryKind = "online_gaming"
	AdvisoryCloudStorage AdvisoryKind = "cloud_storage"
)

// Advisory thresholds. A flag is raised when usage is strictly above.
const (
	YouTubeHoursThreshold        = 3.0
	NetflixHoursThreshold        = 2.0
	TikTokMinutesThreshold       = 120.0
	OnlineGamingMinutesThreshold = 180.0
	CloudStorageGBThreshold      = 50.0
)

// Advisory is one targeted piece of advice.
type Advisory struct {
	Kind    AdvisoryKind `json:"kind"`
	Title   string       `json:"title"`
	Message string       `json:"message"`
}

type advisoryRule struct {
	advisory Advisory
	applies  func(UsageProfile) bool
}

//nolint:gochecknoglobals // Fixed rule table.
var advisoryRules = []advisoryRule{
	{
		Advisory{AdvisoryYouTube, "YouTube", "Cut viewing time or lower the video quality"},
		func(u UsageProfile) bool { return u.YouTubeHours > YouTubeHoursThreshold },
	},
	{
		Advisory{AdvisoryNetflix, "Streaming", "Limit your viewing hours"},
		func(u UsageProfile) bool { return u.NetflixHours > NetflixHoursThreshold },
	},
	{
		Advisory{AdvisoryTikTok, "TikTok", "Very data hungry"},
		func(u UsageProfile) bool { return u.TikTokMinutes > TikTokMinutesThreshold },
	},
	{
		Advisory{AdvisoryOnlineGaming, "Gaming", "Tune your network settings"},
		func(u UsageProfile) bool { return u.OnlineGamingMinutes > OnlineGamingMinutesThreshold },
	},
	{
		Advisory{AdvisoryCloudStorage, "Cloud", "Clean up your files regularly"},
		func(u UsageProfile) bool { return u.CloudStorageGB > CloudStorageGBThreshold },
	},
}

// Advise evaluates every advisory rule against usage and returns those
// that apply, in a fixed order. The flags are independent.
func Advise(usage UsageProfile) []Advisory {
	var out []Advisory
	for _, rule := range advisoryRules {
		if rule.applies(usage) {
			out = append(out, rule.advisory)
		}
	}
	return out
}

// Tips returns general advice for shrinking a digital footprint.
func Tips() []string {
	return []string{
		"Lower the video quality when you can",
		"Prefer Wi-Fi over 4G/5G",
		"Close apps running in the background",
		"Download rather than stream",
		"Clean up your cloud storage regularly",
		"Turn off video autoplay",
		"Use an ad blocker",
		"Prefer audio over video streaming",
	}
}

// Fact is a headline figure about the digital sector.
type Fact struct {
	Figure string `json:"figure"`
	Text   string `json:"text"`
}

// Facts returns the "did you know" figures shown alongside results.
func Facts() []Fact {
	return []Fact{
		{"4%", "Share of global CO2 emissions from digital technology"},
		{"70%", "Of the digital footprint comes from our devices"},
		{"9%", "Annual growth in data consumption"},
	}
}
