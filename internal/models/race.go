package models

import "time"

// RaceStatus enumerates the lifecycle states of a race.
type RaceStatus string

// Race lifecycle states. A race is created upcoming and is moved through
// active and completed by its organizer; the core never transitions status
// on its own.
const (
	RaceUpcoming  RaceStatus = "upcoming"
	RaceActive    RaceStatus = "active"
	RaceCompleted RaceStatus = "completed"
	RaceCancelled RaceStatus = "cancelled"
)

// DateLayout is the calendar date format used on Race.Date.
const DateLayout = "2006-01-02"

// AgeRange is the numeric age constraint parsed from a race's free-text age
// category. A nil bound means unbounded on that side; both nil is an open
// category.
type AgeRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// Contains reports whether age satisfies the range. Bounds are inclusive.
func (r AgeRange) Contains(age int) bool {
	if r.Min != nil && age < *r.Min {
		return false
	}
	if r.Max != nil && age > *r.Max {
		return false
	}
	return true
}

// Open reports whether the range imposes no age constraint.
func (r AgeRange) Open() bool {
	return r.Min == nil && r.Max == nil
}

// Race represents a scheduled race event.
type Race struct {
	ID               string     `json:"id" validate:"required"`
	Name             string     `json:"name" validate:"required"`
	Date             string     `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string     `json:"time" validate:"required"`
	Distance         int        `json:"distance" validate:"required,gt=0"`
	AgeCategory      string     `json:"ageCategory"`
	AgeRange         AgeRange   `json:"ageRange,omitempty"`
	MaxHorses        int        `json:"maxHorses" validate:"required,gt=0"`
	RegisteredHorses []string   `json:"registeredHorses"`
	Status           RaceStatus `json:"status" validate:"required,oneof=upcoming active completed cancelled"`
	Prize            int        `json:"prize" validate:"gte=0"`
	Location         string     `json:"location" validate:"required"`
	OrganizerID      string     `json:"organizerId" validate:"required"`
	OrganizerName    string     `json:"organizerName"`
}

// IsFull reports whether the roster has reached capacity.
func (r *Race) IsFull() bool {
	return len(r.RegisteredHorses) >= r.MaxHorses
}

// HasEntry reports whether the horse is already on the roster.
func (r *Race) HasEntry(horseID string) bool {
	for _, id := range r.RegisteredHorses {
		if id == horseID {
			return true
		}
	}
	return false
}

// IsUpcoming reports whether the race is still open for registration.
func (r *Race) IsUpcoming() bool {
	return r.Status == RaceUpcoming
}

// Day parses the race's calendar date.
func (r *Race) Day() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}
