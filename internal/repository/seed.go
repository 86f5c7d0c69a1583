package repository

import (
	"time"

	"github.com/yourusername/raceday/internal/models"
)

// Seed dataset used when a collection key is absent from the store. The
// values mirror the demo dataset the dashboard ships with.

func intPtr(v int) *int { return &v }

func seedHorses() []*models.Horse {
	return []*models.Horse{
		{
			ID:          "1",
			Name:        "البرق الأصيل",
			Breed:       "عربي أصيل",
			Age:         5,
			OwnerID:     "3",
			OwnerName:   "فاطمة الخيل",
			TrainerName: "سعد المدرب",
			Color:       "كستنائي",
			Weight:      450,
			Wins:        12,
			Races:       20,
		},
		{
			ID:          "2",
			Name:        "نسيم الصحراء",
			Breed:       "عربي مختلط",
			Age:         4,
			OwnerID:     "3",
			OwnerName:   "فاطمة الخيل",
			TrainerName: "أحمد الخبير",
			Color:       "أشقر",
			Weight:      420,
			Wins:        8,
			Races:       15,
		},
		{
			ID:          "3",
			Name:        "فارس الشام",
			Breed:       "عربي أصيل",
			Age:         6,
			OwnerID:     "6",
			OwnerName:   "خالد الفارس",
			TrainerName: "محمد الأسطورة",
			Color:       "أدهم",
			Weight:      480,
			Wins:        15,
			Races:       18,
		},
	}
}

func seedRaces() []*models.Race {
	return []*models.Race{
		{
			ID:               "1",
			Name:             "كأس الملك للخيول العربية",
			Date:             "2024-12-25",
			Time:             "15:00",
			Distance:         2000,
			AgeCategory:      "4 سنوات فما فوق",
			AgeRange:         models.AgeRange{Min: intPtr(4)},
			MaxHorses:        12,
			RegisteredHorses: []string{"1", "2", "3"},
			Status:           models.RaceUpcoming,
			Prize:            100000,
			Location:         "ميدان الرياض",
			OrganizerID:      "2",
			OrganizerName:    "محمد السباق",
		},
		{
			ID:               "2",
			Name:             "سباق الأمير للمهرات",
			Date:             "2024-12-20",
			Time:             "16:30",
			Distance:         1600,
			AgeCategory:      "3-5 سنوات",
			AgeRange:         models.AgeRange{Min: intPtr(3), Max: intPtr(5)},
			MaxHorses:        10,
			RegisteredHorses: []string{"1", "2"},
			Status:           models.RaceCompleted,
			Prize:            75000,
			Location:         "ميدان جدة",
			OrganizerID:      "2",
			OrganizerName:    "محمد السباق",
		},
	}
}

func seedResults() []*models.RaceResult {
	recorded := time.Date(2024, time.December, 20, 16, 45, 0, 0, time.UTC)

	return []*models.RaceResult{
		{
			ID:         "1",
			RaceID:     "2",
			RaceName:   "سباق الأمير للمهرات",
			HorseID:    "1",
			HorseName:  "البرق الأصيل",
			Position:   1,
			Time:       "1:38.45",
			JockeyName: "أحمد الفارس",
			JudgeID:    "4",
			CreatedAt:  recorded,
		},
		{
			ID:         "2",
			RaceID:     "2",
			RaceName:   "سباق الأمير للمهرات",
			HorseID:    "2",
			HorseName:  "نسيم الصحراء",
			Position:   2,
			Time:       "1:39.12",
			JockeyName: "محمد السريع",
			JudgeID:    "4",
			CreatedAt:  recorded,
		},
	}
}

func seedNotifications() []*models.Notification {
	return []*models.Notification{}
}
