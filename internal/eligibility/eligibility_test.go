package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/raceday/internal/models"
)

func intPtr(v int) *int { return &v }

// TestParseAgeCategory tests parsing of free-text age category labels
func TestParseAgeCategory(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  models.AgeRange
	}{
		{
			name:  "Inclusive range",
			label: "3-5 سنوات",
			want:  models.AgeRange{Min: intPtr(3), Max: intPtr(5)},
		},
		{
			name:  "Range with spaces",
			label: "4 - 6 سنوات",
			want:  models.AgeRange{Min: intPtr(4), Max: intPtr(6)},
		},
		{
			name:  "Minimum only",
			label: "4 سنوات فما فوق",
			want:  models.AgeRange{Min: intPtr(4)},
		},
		{
			name:  "Unrecognized label is open",
			label: "جميع الأعمار",
			want:  models.AgeRange{},
		},
		{
			name:  "Empty label is open",
			label: "",
			want:  models.AgeRange{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAgeCategory(tt.label)
			assert.Equal(t, tt.want, got)
		})
	}
}

func testRace() *models.Race {
	return &models.Race{
		ID:               "r1",
		Name:             "كأس الاختبار",
		Date:             "2024-12-25",
		AgeCategory:      "4 سنوات فما فوق",
		AgeRange:         models.AgeRange{Min: intPtr(4)},
		MaxHorses:        3,
		RegisteredHorses: []string{"h1"},
		Status:           models.RaceUpcoming,
	}
}

func testHorse(id string, age int) *models.Horse {
	return &models.Horse{ID: id, Name: "فرس الاختبار", Age: age}
}

// TestEvaluate tests the entry rules for a single horse and race
func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(race *models.Race)
		horse       *models.Horse
		wantOK      bool
		wantReasons []string
	}{
		{
			name:   "Eligible horse",
			mutate: func(race *models.Race) {},
			horse:  testHorse("h2", 5),
			wantOK: true,
		},
		{
			name:   "Age exactly at the lower bound",
			mutate: func(race *models.Race) {},
			horse:  testHorse("h2", 4),
			wantOK: true,
		},
		{
			name:        "Too young",
			mutate:      func(race *models.Race) {},
			horse:       testHorse("h2", 3),
			wantOK:      false,
			wantReasons: []string{ReasonAgeMismatch},
		},
		{
			name: "Above the upper bound",
			mutate: func(race *models.Race) {
				race.AgeCategory = "3-5 سنوات"
				race.AgeRange = models.AgeRange{Min: intPtr(3), Max: intPtr(5)}
			},
			horse:       testHorse("h2", 6),
			wantOK:      false,
			wantReasons: []string{ReasonAgeMismatch},
		},
		{
			name:        "Already registered",
			mutate:      func(race *models.Race) {},
			horse:       testHorse("h1", 5),
			wantOK:      false,
			wantReasons: []string{ReasonAlreadyRegistered},
		},
		{
			name: "Full race",
			mutate: func(race *models.Race) {
				race.RegisteredHorses = []string{"h1", "h3", "h4"}
			},
			horse:       testHorse("h2", 5),
			wantOK:      false,
			wantReasons: []string{ReasonRaceFull},
		},
		{
			name: "All violations reported together",
			mutate: func(race *models.Race) {
				race.RegisteredHorses = []string{"h1", "h3", "h4"}
			},
			horse:       testHorse("h1", 2),
			wantOK:      false,
			wantReasons: []string{ReasonRaceFull, ReasonAlreadyRegistered, ReasonAgeMismatch},
		},
		{
			name: "Open category accepts any age",
			mutate: func(race *models.Race) {
				race.AgeCategory = ""
				race.AgeRange = models.AgeRange{}
			},
			horse:  testHorse("h2", 2),
			wantOK: true,
		},
		{
			name: "Label parsed when stored range is open",
			mutate: func(race *models.Race) {
				race.AgeRange = models.AgeRange{}
			},
			horse:       testHorse("h2", 3),
			wantOK:      false,
			wantReasons: []string{ReasonAgeMismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			race := testRace()
			tt.mutate(race)

			decision := Evaluate(race, tt.horse)

			require.Equal(t, tt.wantOK, decision.Eligible)
			assert.Equal(t, tt.wantReasons, decision.Reasons)
		})
	}
}
