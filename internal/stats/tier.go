package stats

import (
	"strconv"
	"time"
)

// Tier is a qualitative performance label derived from a win rate.
type Tier string

// Performance tiers and their win-rate thresholds.
const (
	TierExcellent Tier = "excellent"
	TierVeryGood  Tier = "very good"
	TierGood      Tier = "good"
	TierAverage   Tier = "average"
)

// TierFor maps a win-rate percentage to its performance tier.
func TierFor(winRate float64) Tier {
	switch {
	case winRate >= 70:
		return TierExcellent
	case winRate >= 50:
		return TierVeryGood
	case winRate >= 30:
		return TierGood
	default:
		return TierAverage
	}
}

// Month labels for the activity projection. The dashboard's primary
// audience reads Arabic; English is kept for tooling.
var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

func monthLabel(month time.Month, year int, locale string) string {
	switch locale {
	case "ar":
		return arabicMonths[month-1] + " " + strconv.Itoa(year)
	default:
		return month.String() + " " + strconv.Itoa(year)
	}
}
