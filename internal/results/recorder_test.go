package results

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/raceday/internal/database"
	"github.com/yourusername/raceday/internal/logger"
	"github.com/yourusername/raceday/internal/models"
	"github.com/yourusername/raceday/internal/notify"
	"github.com/yourusername/raceday/internal/repository"
)

const judgeID = "4"

func newTestRecorder(t *testing.T) (*Recorder, *repository.Repositories) {
	t.Helper()

	db := database.NewTestDB(t)
	repos, err := repository.NewRepositories(db)
	require.NoError(t, err)

	sink := notify.NewStoreSink(repos.Notification, logger.NewNopLogger())
	return NewRecorder(repos.Race, repos.Horse, repos.Result, sink, logger.NewNopLogger()), repos
}

// TestSubmitSuccess tests a full ranked submission
func TestSubmitSuccess(t *testing.T) {
	recorder, repos := newTestRecorder(t)
	ctx := context.Background()

	entries := []Entry{
		{HorseID: "2", Position: 2, Time: "2:01.30", JockeyName: "محمد السريع"},
		{HorseID: "1", Position: 1, Time: "2:00.80", JockeyName: "أحمد الفارس"},
		{HorseID: "3", Position: 3, Time: "2:02.10", JockeyName: "سالم الخيال"},
	}

	recorded, err := recorder.Submit(ctx, "1", judgeID, entries)
	require.NoError(t, err)
	require.Len(t, recorded, 3)

	// Entries come back ordered by finishing position.
	assert.Equal(t, 1, recorded[0].Position)
	assert.Equal(t, "1", recorded[0].HorseID)
	assert.Equal(t, "البرق الأصيل", recorded[0].HorseName)
	assert.Equal(t, 3, recorded[2].Position)

	for _, result := range recorded {
		assert.Equal(t, judgeID, result.JudgeID)
		assert.Equal(t, "كأس الملك للخيول العربية", result.RaceName)
		assert.NotEmpty(t, result.ID)
	}

	// One submission, one timestamp.
	assert.Equal(t, recorded[0].CreatedAt, recorded[1].CreatedAt)
	assert.Equal(t, recorded[1].CreatedAt, recorded[2].CreatedAt)

	stored, err := repos.Result.GetByRaceID(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	notifications, err := repos.Notification.ListByUser(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

// TestSubmitIncompleteEntryRejected tests that a missing jockey name rejects the whole batch
func TestSubmitIncompleteEntryRejected(t *testing.T) {
	recorder, repos := newTestRecorder(t)
	ctx := context.Background()

	entries := []Entry{
		{HorseID: "1", Position: 1, Time: "2:00.80", JockeyName: "أحمد الفارس"},
		{HorseID: "2", Position: 2, Time: "2:01.30"},
	}

	_, err := recorder.Submit(ctx, "1", judgeID, entries)
	assert.ErrorIs(t, err, models.ErrIncompleteSubmission)

	// Nothing was written.
	results, err := repos.Result.List(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

// TestSubmitMissingTimeRejected tests that a blank time rejects the whole batch
func TestSubmitMissingTimeRejected(t *testing.T) {
	recorder, _ := newTestRecorder(t)

	entries := []Entry{
		{HorseID: "1", Position: 1, Time: "  ", JockeyName: "أحمد الفارس"},
	}

	_, err := recorder.Submit(context.Background(), "1", judgeID, entries)
	assert.ErrorIs(t, err, models.ErrIncompleteSubmission)
}

// TestSubmitEmptyRejected tests the empty submission guard
func TestSubmitEmptyRejected(t *testing.T) {
	recorder, _ := newTestRecorder(t)

	_, err := recorder.Submit(context.Background(), "1", judgeID, nil)
	assert.ErrorIs(t, err, models.ErrIncompleteSubmission)
}

// TestSubmitUnknownRace tests submitting against a race that does not exist
func TestSubmitUnknownRace(t *testing.T) {
	recorder, _ := newTestRecorder(t)

	entries := []Entry{
		{HorseID: "1", Position: 1, Time: "2:00.80", JockeyName: "أحمد الفارس"},
	}

	_, err := recorder.Submit(context.Background(), "999", judgeID, entries)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// TestSubmitUnknownHorseRejectsBatch tests that one unknown horse fails the whole batch
func TestSubmitUnknownHorseRejectsBatch(t *testing.T) {
	recorder, repos := newTestRecorder(t)
	ctx := context.Background()

	entries := []Entry{
		{HorseID: "1", Position: 1, Time: "2:00.80", JockeyName: "أحمد الفارس"},
		{HorseID: "999", Position: 2, Time: "2:01.30", JockeyName: "محمد السريع"},
	}

	recorded, err := recorder.Submit(ctx, "1", judgeID, entries)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, recorded)

	// The known entry was not written either.
	stored, err := repos.Result.GetByRaceID(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, stored)

	results, err := repos.Result.List(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// No organizer notification for a rejected submission.
	notifications, err := repos.Notification.ListByUser(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
