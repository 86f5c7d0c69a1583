package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

// TestAgeRangeContains tests inclusive bound checks
func TestAgeRangeContains(t *testing.T) {
	tests := []struct {
		name string
		r    AgeRange
		age  int
		want bool
	}{
		{name: "Within range", r: AgeRange{Min: intPtr(3), Max: intPtr(5)}, age: 4, want: true},
		{name: "At lower bound", r: AgeRange{Min: intPtr(3), Max: intPtr(5)}, age: 3, want: true},
		{name: "At upper bound", r: AgeRange{Min: intPtr(3), Max: intPtr(5)}, age: 5, want: true},
		{name: "Below range", r: AgeRange{Min: intPtr(3), Max: intPtr(5)}, age: 2, want: false},
		{name: "Above range", r: AgeRange{Min: intPtr(3), Max: intPtr(5)}, age: 6, want: false},
		{name: "Min only accepts above", r: AgeRange{Min: intPtr(4)}, age: 9, want: true},
		{name: "Min only rejects below", r: AgeRange{Min: intPtr(4)}, age: 3, want: false},
		{name: "Open range accepts anything", r: AgeRange{}, age: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.age))
		})
	}
}

// TestRaceRosterHelpers tests capacity and duplicate checks
func TestRaceRosterHelpers(t *testing.T) {
	race := &Race{
		MaxHorses:        2,
		RegisteredHorses: []string{"1"},
		Status:           RaceUpcoming,
	}

	assert.False(t, race.IsFull())
	assert.True(t, race.HasEntry("1"))
	assert.False(t, race.HasEntry("2"))
	assert.True(t, race.IsUpcoming())

	race.RegisteredHorses = append(race.RegisteredHorses, "2")
	assert.True(t, race.IsFull())
}

// TestRaceDay tests calendar date parsing
func TestRaceDay(t *testing.T) {
	race := &Race{Date: "2024-12-25"}
	day, err := race.Day()
	assert.NoError(t, err)
	assert.Equal(t, 2024, day.Year())

	race.Date = "25/12/2024"
	_, err = race.Day()
	assert.Error(t, err)
}

// TestRaceResultPositions tests win and podium classification
func TestRaceResultPositions(t *testing.T) {
	assert.True(t, (&RaceResult{Position: 1}).IsWin())
	assert.False(t, (&RaceResult{Position: 2}).IsWin())
	assert.True(t, (&RaceResult{Position: 3}).IsPodium())
	assert.False(t, (&RaceResult{Position: 4}).IsPodium())
}

// TestRecordedWinRate tests the stored-counter win rate
func TestRecordedWinRate(t *testing.T) {
	assert.InDelta(t, 60.0, (&Horse{Wins: 12, Races: 20}).RecordedWinRate(), 0.001)
	assert.Zero(t, (&Horse{Wins: 0, Races: 0}).RecordedWinRate())
}
