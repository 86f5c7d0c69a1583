// Package eligibility implements the entry rules deciding whether a horse
// may be registered for a race.
package eligibility

import (
	"regexp"
	"strconv"

	"github.com/yourusername/raceday/internal/models"
)

// Reasons reported for violated entry rules.
const (
	ReasonRaceFull          = "race is at full capacity"
	ReasonAlreadyRegistered = "horse is already registered for this race"
	ReasonAgeMismatch       = "horse age does not match the race age category"
)

// Recognized age-category label patterns: "X-Y سنوات" is an inclusive range,
// "X سنوات فما فوق" is a lower bound with no upper bound. Any other label is
// an open category with no age constraint.
var (
	rangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*سنوات`)
	minPattern   = regexp.MustCompile(`(\d+)\s*سنوات فما فوق`)
)

// ParseAgeCategory parses a free-text age-category label into a structured
// range. Parsing happens once at race creation so eligibility checks work on
// numbers, not display text.
func ParseAgeCategory(label string) models.AgeRange {
	if m := rangePattern.FindStringSubmatch(label); m != nil {
		min, errMin := strconv.Atoi(m[1])
		max, errMax := strconv.Atoi(m[2])
		if errMin == nil && errMax == nil {
			return models.AgeRange{Min: &min, Max: &max}
		}
	}

	if m := minPattern.FindStringSubmatch(label); m != nil {
		if min, err := strconv.Atoi(m[1]); err == nil {
			return models.AgeRange{Min: &min}
		}
	}

	return models.AgeRange{}
}

// Decision is the outcome of an eligibility evaluation.
type Decision struct {
	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons"`
}

// Evaluate checks a horse against a race's entry rules: capacity, duplicate
// registration, and age fit. Every rule is evaluated, never short-circuited,
// so the caller can surface all violations at once. The decision is advisory;
// the registration coordinator owns the enforced guards.
func Evaluate(race *models.Race, horse *models.Horse) Decision {
	var reasons []string

	if race.IsFull() {
		reasons = append(reasons, ReasonRaceFull)
	}

	if race.HasEntry(horse.ID) {
		reasons = append(reasons, ReasonAlreadyRegistered)
	}

	ageRange := race.AgeRange
	if ageRange.Open() && race.AgeCategory != "" {
		// Races persisted before ranges were parsed at creation time carry
		// only the label.
		ageRange = ParseAgeCategory(race.AgeCategory)
	}
	if !ageRange.Contains(horse.Age) {
		reasons = append(reasons, ReasonAgeMismatch)
	}

	return Decision{
		Eligible: len(reasons) == 0,
		Reasons:  reasons,
	}
}
