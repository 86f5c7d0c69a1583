package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/raceday/internal/database"
	"github.com/yourusername/raceday/internal/models"
)

func newTestRepositories(t *testing.T) (*Repositories, *database.DB) {
	t.Helper()

	db := database.NewTestDB(t)
	repos, err := NewRepositories(db)
	require.NoError(t, err)
	return repos, db
}

// TestNewRepositoriesRequiresStore tests the nil handle guard
func TestNewRepositoriesRequiresStore(t *testing.T) {
	_, err := NewRepositories(nil)
	assert.Error(t, err)
}

// TestSeedOnFirstLoad tests that an empty store is populated with the demo dataset
func TestSeedOnFirstLoad(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	horses, err := repos.Horse.List(ctx)
	require.NoError(t, err)
	assert.Len(t, horses, 3)
	assert.Equal(t, "البرق الأصيل", horses[0].Name)

	races, err := repos.Race.List(ctx)
	require.NoError(t, err)
	assert.Len(t, races, 2)

	results, err := repos.Result.List(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	notifications, err := repos.Notification.ListByUser(ctx, "3")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

// TestHorseCreateAndGet tests horse creation and retrieval
func TestHorseCreateAndGet(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	horse := &models.Horse{
		Name:      "سهم الليل",
		Breed:     "عربي أصيل",
		Age:       4,
		OwnerID:   "3",
		OwnerName: "فاطمة الخيل",
		Wins:      2,
		Races:     6,
	}
	require.NoError(t, repos.Horse.Create(ctx, horse))
	require.NotEmpty(t, horse.ID)

	retrieved, err := repos.Horse.GetByID(ctx, horse.ID)
	require.NoError(t, err)
	assert.Equal(t, "سهم الليل", retrieved.Name)
}

// TestHorseCreateRejectsInvalidCounters tests that wins cannot exceed races
func TestHorseCreateRejectsInvalidCounters(t *testing.T) {
	repos, _ := newTestRepositories(t)

	horse := &models.Horse{
		Name:      "فرس خاطئ",
		Breed:     "عربي",
		Age:       4,
		OwnerID:   "3",
		OwnerName: "فاطمة الخيل",
		Wins:      7,
		Races:     3,
	}
	err := repos.Horse.Create(context.Background(), horse)
	assert.Error(t, err)
}

// TestHorseCreateRejectsDuplicateID tests the duplicate identifier guard
func TestHorseCreateRejectsDuplicateID(t *testing.T) {
	repos, _ := newTestRepositories(t)

	horse := &models.Horse{
		ID:        "1",
		Name:      "نسخة البرق",
		Breed:     "عربي",
		Age:       5,
		OwnerID:   "3",
		OwnerName: "فاطمة الخيل",
	}
	err := repos.Horse.Create(context.Background(), horse)
	assert.ErrorIs(t, err, models.ErrDuplicateEntry)
}

// TestHorseGetByIDNotFound tests the missing-horse sentinel
func TestHorseGetByIDNotFound(t *testing.T) {
	repos, _ := newTestRepositories(t)

	_, err := repos.Horse.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// TestRaceCreateDefaults tests ID, status, roster, and age range defaults
func TestRaceCreateDefaults(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	race := &models.Race{
		Name:        "سباق الاختبار",
		Date:        "2025-01-15",
		Time:        "15:00",
		Distance:    1800,
		AgeCategory: "3-5 سنوات",
		MaxHorses:   8,
		Location:    "ميدان الرياض",
		OrganizerID: "2",
	}
	require.NoError(t, repos.Race.Create(ctx, race))

	retrieved, err := repos.Race.GetByID(ctx, race.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RaceUpcoming, retrieved.Status)
	assert.NotNil(t, retrieved.RegisteredHorses)
	assert.Empty(t, retrieved.RegisteredHorses)

	require.NotNil(t, retrieved.AgeRange.Min)
	require.NotNil(t, retrieved.AgeRange.Max)
	assert.Equal(t, 3, *retrieved.AgeRange.Min)
	assert.Equal(t, 5, *retrieved.AgeRange.Max)
}

// TestRaceCreateRejectsBadDate tests calendar date validation
func TestRaceCreateRejectsBadDate(t *testing.T) {
	repos, _ := newTestRepositories(t)

	race := &models.Race{
		Name:        "سباق خاطئ",
		Date:        "15/01/2025",
		Time:        "15:00",
		Distance:    1800,
		MaxHorses:   8,
		Location:    "ميدان الرياض",
		OrganizerID: "2",
	}
	err := repos.Race.Create(context.Background(), race)
	assert.Error(t, err)
}

// TestRaceGetByStatus tests lifecycle filtering
func TestRaceGetByStatus(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	upcoming, err := repos.Race.GetByStatus(ctx, models.RaceUpcoming)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "1", upcoming[0].ID)

	completed, err := repos.Race.GetByStatus(ctx, models.RaceCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "2", completed[0].ID)
}

// TestRaceUpdateNotFound tests updating a race that does not exist
func TestRaceUpdateNotFound(t *testing.T) {
	repos, _ := newTestRepositories(t)

	race := &models.Race{
		ID:          "999",
		Name:        "سباق مفقود",
		Date:        "2025-01-15",
		Time:        "15:00",
		Distance:    1800,
		MaxHorses:   8,
		Status:      models.RaceUpcoming,
		Location:    "ميدان الرياض",
		OrganizerID: "2",
	}
	err := repos.Race.Update(context.Background(), race)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// TestResultGetByRaceIDOrdered tests per-race results sorted by position
func TestResultGetByRaceIDOrdered(t *testing.T) {
	repos, _ := newTestRepositories(t)

	results, err := repos.Result.GetByRaceID(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Position)
	assert.Equal(t, 2, results[1].Position)
}

// TestResultAppendBatchAtomic tests that an invalid batch leaves the store untouched
func TestResultAppendBatchAtomic(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	batch := []*models.RaceResult{
		{
			ID:         "10",
			RaceID:     "1",
			HorseID:    "1",
			Position:   1,
			Time:       "1:40.00",
			JockeyName: "أحمد الفارس",
			JudgeID:    "4",
			CreatedAt:  time.Now().UTC(),
		},
		{
			// Missing time and jockey name.
			ID:       "11",
			RaceID:   "1",
			HorseID:  "2",
			Position: 2,
			JudgeID:  "4",
		},
	}
	err := repos.Result.AppendBatch(ctx, batch)
	require.Error(t, err)

	results, err := repos.Result.List(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

// TestNotificationLifecycle tests creation, listing, and read marking
func TestNotificationLifecycle(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	notification := &models.Notification{
		UserID:  "3",
		Title:   "تم التسجيل بنجاح",
		Message: "تم تسجيل البرق الأصيل",
		Type:    models.NotifySuccess,
	}
	require.NoError(t, repos.Notification.Create(ctx, notification))
	require.NotEmpty(t, notification.ID)
	assert.False(t, notification.CreatedAt.IsZero())

	listed, err := repos.Notification.ListByUser(ctx, "3")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].Read)

	require.NoError(t, repos.Notification.MarkRead(ctx, notification.ID))

	listed, err = repos.Notification.ListByUser(ctx, "3")
	require.NoError(t, err)
	assert.True(t, listed[0].Read)

	err = repos.Notification.MarkRead(ctx, "999")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// TestPersistenceAcrossRepositories tests that writes survive a fresh repository set
func TestPersistenceAcrossRepositories(t *testing.T) {
	repos, db := newTestRepositories(t)
	ctx := context.Background()

	horse := &models.Horse{
		Name:      "ريح الشمال",
		Breed:     "عربي مختلط",
		Age:       3,
		OwnerID:   "6",
		OwnerName: "خالد الفارس",
	}
	require.NoError(t, repos.Horse.Create(ctx, horse))

	reopened, err := NewRepositories(db)
	require.NoError(t, err)

	horses, err := reopened.Horse.List(ctx)
	require.NoError(t, err)
	assert.Len(t, horses, 4)
}
