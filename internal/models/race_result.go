package models

import "time"

// RaceResult represents one horse's final standing in a completed race.
// Results are created in bulk when a judge submits standings and are
// immutable afterwards.
type RaceResult struct {
	ID         string    `json:"id" validate:"required"`
	RaceID     string    `json:"raceId" validate:"required"`
	RaceName   string    `json:"raceName"`
	HorseID    string    `json:"horseId" validate:"required"`
	HorseName  string    `json:"horseName"`
	Position   int       `json:"position" validate:"required,gt=0"`
	Time       string    `json:"time" validate:"required"`
	JockeyName string    `json:"jockeyName" validate:"required"`
	Penalties  string    `json:"penalties,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	JudgeID    string    `json:"judgeId" validate:"required"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsWin reports whether the result is a first-place finish.
func (rr *RaceResult) IsWin() bool {
	return rr.Position == 1
}

// IsPodium reports whether the result is a top-three finish.
func (rr *RaceResult) IsPodium() bool {
	return rr.Position >= 1 && rr.Position <= 3
}
