package services

import (
	"testing"
	"time"

	"github.com/liftworks/strengthdb/internal/models"
	"github.com/liftworks/strengthdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// daysAgo formats the date n days before today (UTC). Windowed queries measure
// from the wall clock, so seeded data has to move with it.
func daysAgo(n int) string {
	return time.Now().UTC().AddDate(0, 0, -n).Format(dateLayout)
}

func seedAttempt(t *testing.T, db *gorm.DB, userID, exerciseName, date string, weight, reps int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Attempt{
		UserID:       userID,
		ExerciseName: exerciseName,
		Date:         date,
		RecordSetID:  "seed",
		Weight:       weight,
		Reps:         reps,
		E1RM:         EpleyE1RM(weight, reps),
	}).Error)
}

func TestGetOverviewCounts(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db)

	_, err := UpsertRecord(db, userID, "Bench Press", daysAgo(10), []SetInput{
		{SetNumber: 1, Weight: 100, Reps: 5},
	})
	require.NoError(t, err)
	_, err = UpsertRecord(db, userID, "Bench Press", daysAgo(2), []SetInput{
		{SetNumber: 1, Weight: 110, Reps: 5},
	})
	require.NoError(t, err)
	_, err = UpsertRecord(db, userID, "Squat", daysAgo(2), []SetInput{
		{SetNumber: 1, Weight: 140, Reps: 5},
	})
	require.NoError(t, err)

	overview, err := GetOverview(db, userID, 30)
	require.NoError(t, err)

	assert.Equal(t, 30, overview.WindowDays)
	assert.Equal(t, int64(2), overview.ExerciseCount)
	assert.Equal(t, int64(3), overview.TotalAttempts)
	assert.Equal(t, int64(2), overview.TotalPRs, "one flag per exercise")
	assert.Equal(t, int64(2), overview.RecentPRs)
	assert.Equal(t, 0, overview.CurrentStreak, "no training today breaks the streak")

	require.Len(t, overview.Bests, 2)
	bench := overview.Bests[0]
	assert.Equal(t, "Bench Press", bench.ExerciseName)
	assert.InDelta(t, EpleyE1RM(110, 5), bench.BestE1RM, 0.001)
	assert.InDelta(t, EpleyE1RM(110, 5), bench.RecentMax, 0.001)
	assert.InDelta(t, 0.0, bench.ChangePct, 0.001)
	assert.Greater(t, bench.TrendSlope, 0.0, "rising e1RM yields a positive slope")

	squat := overview.Bests[1]
	assert.Equal(t, "Squat", squat.ExerciseName)
	assert.InDelta(t, 0.0, squat.TrendSlope, 0.001, "a single training day has no trend")
}

func TestGetOverviewWindowing(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db)

	// The PR lives outside the 7 day window.
	_, err := UpsertRecord(db, userID, "Bench Press", daysAgo(10), []SetInput{
		{SetNumber: 1, Weight: 120, Reps: 5},
	})
	require.NoError(t, err)
	_, err = UpsertRecord(db, userID, "Bench Press", daysAgo(2), []SetInput{
		{SetNumber: 1, Weight: 100, Reps: 5},
	})
	require.NoError(t, err)

	overview, err := GetOverview(db, userID, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(1), overview.TotalPRs)
	assert.Equal(t, int64(0), overview.RecentPRs)

	require.Len(t, overview.Bests, 1)
	best := overview.Bests[0]
	assert.InDelta(t, EpleyE1RM(120, 5), best.BestE1RM, 0.001)
	assert.InDelta(t, EpleyE1RM(100, 5), best.RecentMax, 0.001)
	expectedPct := (EpleyE1RM(100, 5) - EpleyE1RM(120, 5)) / EpleyE1RM(120, 5) * 100.0
	assert.InDelta(t, expectedPct, best.ChangePct, 0.01)
	assert.InDelta(t, 0.0, best.TrendSlope, 0.001, "one windowed day has no trend")
}

func TestGetOverviewDefaultWindow(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db)

	overview, err := GetOverview(db, userID, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultWindowDays, overview.WindowDays)
	assert.Empty(t, overview.Bests)
}

func TestCurrentStreak(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db)

	// Today, yesterday and two days ago trained; a gap at three days; an
	// older day beyond the gap must not count.
	for _, n := range []int{0, 1, 2, 4} {
		_, err := UpsertRecord(db, userID, "Row", daysAgo(n), []SetInput{
			{SetNumber: 1, Weight: 60, Reps: 10},
		})
		require.NoError(t, err)
	}

	overview, err := GetOverview(db, userID, 30)
	require.NoError(t, err)
	assert.Equal(t, 3, overview.CurrentStreak)
}

func TestGetE1RMSeriesDayBuckets(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db)

	// Two sets on the same day collapse into one point holding the maximum.
	_, err := UpsertRecord(db, userID, "Bench Press", daysAgo(3), []SetInput{
		{SetNumber: 1, Weight: 100, Reps: 5},
		{SetNumber: 2, Weight: 90, Reps: 10},
	})
	require.NoError(t, err)
	_, err = UpsertRecord(db, userID, "Bench Press", daysAgo(1), []SetInput{
		{SetNumber: 1, Weight: 105, Reps: 5},
	})
	require.NoError(t, err)

	points, err := GetE1RMSeries(db, userID, "Bench Press", "day", 30)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, daysAgo(3), points[0].Bucket)
	assert.InDelta(t, EpleyE1RM(90, 10), points[0].MaxE1RM, 0.001)
	assert.Equal(t, daysAgo(1), points[1].Bucket)
	assert.InDelta(t, EpleyE1RM(105, 5), points[1].MaxE1RM, 0.001)
}

func TestGetE1RMSeriesRejectsBadBucket(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db)

	var vErr *types.ValidationError
	_, err := GetE1RMSeries(db, userID, "Bench Press", "year", 30)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "bucket", vErr.Field)
}

func TestBucketStart(t *testing.T) {
	tests := []struct {
		date   string
		bucket string
		want   string
	}{
		{"2024-01-03", "day", "2024-01-03"},
		{"2024-01-01", "week", "2024-01-01"}, // a Monday maps to itself
		{"2024-01-03", "week", "2024-01-01"},
		{"2024-01-07", "week", "2024-01-01"}, // Sunday belongs to the preceding Monday
		{"2024-02-15", "month", "2024-02-01"},
	}
	for _, tt := range tests {
		got, err := bucketStart(tt.date, tt.bucket)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s by %s", tt.date, tt.bucket)
	}
}

func TestGetTopSetsRankings(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db)

	seedAttempt(t, db, userID, "Bench Press", "2026-01-01", 100, 5)
	seedAttempt(t, db, userID, "Bench Press", "2026-01-02", 100, 8)
	seedAttempt(t, db, userID, "Bench Press", "2026-01-03", 120, 1)
	seedAttempt(t, db, userID, "Bench Press", "2026-01-04", 80, 12)

	top, err := GetTopSets(db, userID, "Bench Press", 10)
	require.NoError(t, err)

	// Weight ties break by reps, then newest date.
	require.Len(t, top.ByWeight, 4)
	assert.Equal(t, 120, top.ByWeight[0].Weight)
	assert.Equal(t, 8, top.ByWeight[1].Reps)
	assert.Equal(t, 5, top.ByWeight[2].Reps)
	assert.Equal(t, 80, top.ByWeight[3].Weight)

	require.Len(t, top.ByReps, 4)
	assert.Equal(t, 12, top.ByReps[0].Reps)
	assert.Equal(t, 8, top.ByReps[1].Reps)

	require.Len(t, top.ByE1RM, 4)
	assert.InDelta(t, EpleyE1RM(100, 8), top.ByE1RM[0].E1RM, 0.001)
	assert.InDelta(t, EpleyE1RM(120, 1), top.ByE1RM[1].E1RM, 0.001)
}

func TestGetTopSetsTruncates(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db)

	for i := 0; i < 8; i++ {
		seedAttempt(t, db, userID, "Squat", "2026-01-01", 100+i, 5)
	}

	top, err := GetTopSets(db, userID, "Squat", 3)
	require.NoError(t, err)
	assert.Len(t, top.ByWeight, 3)
	assert.Equal(t, 107, top.ByWeight[0].Weight)

	// A non-positive limit falls back to the default of five.
	top, err = GetTopSets(db, userID, "Squat", 0)
	require.NoError(t, err)
	assert.Len(t, top.ByWeight, 5)
}

func TestGetHistoryChronological(t *testing.T) {
	db := setupDB(t)
	userID := seedUser(t, db)

	seedAttempt(t, db, userID, "Deadlift", "2026-01-03", 150, 3)
	seedAttempt(t, db, userID, "Deadlift", "2026-01-01", 140, 5)
	seedAttempt(t, db, userID, "Deadlift", "2026-01-02", 145, 4)

	history, err := GetHistory(db, userID, "Deadlift")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2026-01-01", history[0].Date)
	assert.Equal(t, "2026-01-02", history[1].Date)
	assert.Equal(t, "2026-01-03", history[2].Date)
}

func TestAnalyticsUnknownUser(t *testing.T) {
	db := setupDB(t)

	_, err := GetOverview(db, "nobody", 30)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = GetHistory(db, "nobody", "Bench Press")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
