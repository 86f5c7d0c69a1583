package models

// Horse represents a racehorse registered in the system.
//
// Wins and Races are cumulative counters set when the horse is created and
// maintained manually; they are not recomputed from stored results. Derived
// win figures live in the stats package.
type Horse struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Breed       string `json:"breed" validate:"required"`
	Age         int    `json:"age" validate:"required,gt=0"`
	OwnerID     string `json:"ownerId" validate:"required"`
	OwnerName   string `json:"ownerName" validate:"required"`
	TrainerName string `json:"trainerName,omitempty"`
	Color       string `json:"color"`
	Weight      int    `json:"weight" validate:"gte=0"`
	Wins        int    `json:"wins" validate:"gte=0,ltefield=Races"`
	Races       int    `json:"races" validate:"gte=0"`
	Image       string `json:"image,omitempty"`
}

// RecordedWinRate returns the win rate implied by the stored counters,
// as a percentage in [0, 100].
func (h *Horse) RecordedWinRate() float64 {
	if h.Races <= 0 {
		return 0
	}
	return float64(h.Wins) / float64(h.Races) * 100
}
