package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/liftworks/strengthdb/internal/models"
	"github.com/liftworks/strengthdb/internal/types"
	"github.com/montanaflynn/stats"
	"gorm.io/gorm"
)

const defaultWindowDays = 30

// ExerciseBest is one line of the overview best-lift list: the all-time best
// e1RM for an exercise, the best inside the query window, the percentage
// change between the two, and the windowed trend slope in e1RM units per day.
type ExerciseBest struct {
	ExerciseName string  `json:"exerciseName"`
	BestE1RM     float64 `json:"bestE1rm"`
	RecentMax    float64 `json:"recentMax"`
	ChangePct    float64 `json:"changePct"`
	TrendSlope   float64 `json:"trendSlope"`
}

// Overview is the KPI snapshot for a user's training history.
type Overview struct {
	WindowDays    int            `json:"windowDays"`
	ExerciseCount int64          `json:"exerciseCount"`
	TotalAttempts int64          `json:"totalAttempts"`
	TotalPRs      int64          `json:"totalPrs"`
	RecentPRs     int64          `json:"recentPrs"`
	CurrentStreak int            `json:"currentStreak"`
	Bests         []ExerciseBest `json:"bests"`
}

// SeriesPoint is one bucket of the e1RM trend series. Bucket is the first
// calendar date of the bucket (the date itself for day, Monday for week, the
// first of the month for month).
type SeriesPoint struct {
	Bucket  string  `json:"bucket"`
	MaxE1RM float64 `json:"maxE1rm"`
}

// TopSets carries the three independently-ranked top lists for an exercise.
type TopSets struct {
	ByWeight []models.Attempt `json:"byWeight"`
	ByReps   []models.Attempt `json:"byReps"`
	ByE1RM   []models.Attempt `json:"byE1rm"`
}

// GetOverview aggregates the user's attempt history into the overview KPIs:
// exercise count, attempt and PR totals, PRs within the window, the current
// consecutive-day streak, and the per-exercise best list.
func GetOverview(db *gorm.DB, userID string, windowDays int) (*Overview, error) {
	if err := ensureUser(db, userID); err != nil {
		return nil, err
	}
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}

	today := time.Now().UTC()
	cutoff := today.AddDate(0, 0, -windowDays).Format(dateLayout)

	out := &Overview{WindowDays: windowDays, Bests: []ExerciseBest{}}

	base := func() *gorm.DB {
		return db.Model(&models.Attempt{}).Where("user_id = ?", userID)
	}

	if err := base().Distinct("exercise_name").Count(&out.ExerciseCount).Error; err != nil {
		return nil, err
	}
	if err := base().Count(&out.TotalAttempts).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_pr = ?", true).Count(&out.TotalPRs).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_pr = ? AND date >= ?", true, cutoff).Count(&out.RecentPRs).Error; err != nil {
		return nil, err
	}

	streak, err := currentStreak(db, userID, today)
	if err != nil {
		return nil, err
	}
	out.CurrentStreak = streak

	type maxRow struct {
		ExerciseName string
		Max          float64
	}

	var allTime []maxRow
	if err := base().
		Select("exercise_name, MAX(e1rm) AS max").
		Group("exercise_name").
		Order("exercise_name ASC").
		Scan(&allTime).Error; err != nil {
		return nil, err
	}

	var recent []maxRow
	if err := base().
		Select("exercise_name, MAX(e1rm) AS max").
		Where("date >= ?", cutoff).
		Group("exercise_name").
		Scan(&recent).Error; err != nil {
		return nil, err
	}
	recentByExercise := make(map[string]float64, len(recent))
	for _, r := range recent {
		recentByExercise[r.ExerciseName] = r.Max
	}

	slopes, err := trendSlopes(db, userID, cutoff)
	if err != nil {
		return nil, err
	}

	for _, r := range allTime {
		best := ExerciseBest{
			ExerciseName: r.ExerciseName,
			BestE1RM:     r.Max,
			RecentMax:    recentByExercise[r.ExerciseName],
			TrendSlope:   slopes[r.ExerciseName],
		}
		if best.BestE1RM > 0 && best.RecentMax > 0 {
			best.ChangePct = round2((best.RecentMax - best.BestE1RM) / best.BestE1RM * 100.0)
		}
		out.Bests = append(out.Bests, best)
	}

	return out, nil
}

// GetE1RMSeries buckets the windowed attempts of one exercise by day, week or
// month and emits the maximum e1RM per bucket, ascending.
func GetE1RMSeries(db *gorm.DB, userID, exerciseName, bucket string, windowDays int) ([]SeriesPoint, error) {
	exerciseName = strings.TrimSpace(exerciseName)
	if exerciseName == "" {
		return nil, &types.ValidationError{Field: "exerciseName", Reason: "must not be empty"}
	}
	if bucket != "day" && bucket != "week" && bucket != "month" {
		return nil, &types.ValidationError{Field: "bucket", Reason: "must be day, week or month"}
	}
	if err := ensureUser(db, userID); err != nil {
		return nil, err
	}
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays).Format(dateLayout)

	var attempts []models.Attempt
	if err := db.Where("user_id = ? AND exercise_name = ? AND date >= ?", userID, exerciseName, cutoff).
		Order("date ASC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	maxByBucket := make(map[string]float64)
	for _, a := range attempts {
		key, err := bucketStart(a.Date, bucket)
		if err != nil {
			continue
		}
		if a.E1RM > maxByBucket[key] {
			maxByBucket[key] = a.E1RM
		}
	}

	points := make([]SeriesPoint, 0, len(maxByBucket))
	for key, bucketMax := range maxByBucket {
		points = append(points, SeriesPoint{Bucket: key, MaxE1RM: bucketMax})
	}
	// YYYY-MM-DD keys sort chronologically as strings.
	sort.Slice(points, func(i, j int) bool {
		return points[i].Bucket < points[j].Bucket
	})
	return points, nil
}

// GetTopSets returns the three independently-ranked top-N lists for an
// exercise: by weight (ties by reps, then date, newest first), by reps (ties
// by weight, then date) and by e1RM.
func GetTopSets(db *gorm.DB, userID, exerciseName string, top int) (*TopSets, error) {
	exerciseName = strings.TrimSpace(exerciseName)
	if exerciseName == "" {
		return nil, &types.ValidationError{Field: "exerciseName", Reason: "must not be empty"}
	}
	if err := ensureUser(db, userID); err != nil {
		return nil, err
	}
	if top <= 0 {
		top = 5
	}

	var attempts []models.Attempt
	if err := db.Where("user_id = ? AND exercise_name = ?", userID, exerciseName).
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	byWeight := rankAttempts(attempts, func(a, b models.Attempt) bool {
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		if a.Reps != b.Reps {
			return a.Reps > b.Reps
		}
		return a.Date > b.Date
	})
	byReps := rankAttempts(attempts, func(a, b models.Attempt) bool {
		if a.Reps != b.Reps {
			return a.Reps > b.Reps
		}
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		return a.Date > b.Date
	})
	byE1RM := rankAttempts(attempts, func(a, b models.Attempt) bool {
		if a.E1RM != b.E1RM {
			return a.E1RM > b.E1RM
		}
		return a.Date > b.Date
	})

	return &TopSets{
		ByWeight: truncateAttempts(byWeight, top),
		ByReps:   truncateAttempts(byReps, top),
		ByE1RM:   truncateAttempts(byE1RM, top),
	}, nil
}

// GetHistory returns the full attempt history for an exercise, ascending by
// date then insertion order.
func GetHistory(db *gorm.DB, userID, exerciseName string) ([]models.Attempt, error) {
	exerciseName = strings.TrimSpace(exerciseName)
	if exerciseName == "" {
		return nil, &types.ValidationError{Field: "exerciseName", Reason: "must not be empty"}
	}
	if err := ensureUser(db, userID); err != nil {
		return nil, err
	}

	var attempts []models.Attempt
	err := db.Where("user_id = ? AND exercise_name = ?", userID, exerciseName).
		Order("date ASC, attempt_id ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

// currentStreak walks backward from today counting consecutive calendar days
// that have at least one attempt, stopping at the first gap.
func currentStreak(db *gorm.DB, userID string, today time.Time) (int, error) {
	var dates []string
	if err := db.Model(&models.Attempt{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("date", &dates).Error; err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	trained := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		trained[d] = struct{}{}
	}

	streak := 0
	for d := today; ; d = d.AddDate(0, 0, -1) {
		if _, ok := trained[d.Format(dateLayout)]; !ok {
			break
		}
		streak++
	}
	return streak, nil
}

// trendSlopes fits a least-squares line through each exercise's per-day e1RM
// maxima inside the window and returns the slopes in e1RM units per day,
// keyed by exercise name. One query covers every exercise; an exercise with
// fewer than two training days in the window gets 0.
func trendSlopes(db *gorm.DB, userID, cutoff string) (map[string]float64, error) {
	var attempts []models.Attempt
	if err := db.Where("user_id = ? AND date >= ?", userID, cutoff).
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	maxByDay := make(map[string]map[string]float64)
	for _, a := range attempts {
		byDay, ok := maxByDay[a.ExerciseName]
		if !ok {
			byDay = make(map[string]float64)
			maxByDay[a.ExerciseName] = byDay
		}
		if a.E1RM > byDay[a.Date] {
			byDay[a.Date] = a.E1RM
		}
	}

	origin, err := time.Parse(dateLayout, cutoff)
	if err != nil {
		return nil, err
	}
	slopes := make(map[string]float64, len(maxByDay))
	for exercise, byDay := range maxByDay {
		slopes[exercise] = slopeOfDayMaxima(byDay, origin)
	}
	return slopes, nil
}

func slopeOfDayMaxima(maxByDay map[string]float64, origin time.Time) float64 {
	if len(maxByDay) < 2 {
		return 0
	}
	series := make(stats.Series, 0, len(maxByDay))
	for day, dayMax := range maxByDay {
		t, err := time.Parse(dateLayout, day)
		if err != nil {
			continue
		}
		x := t.Sub(origin).Hours() / 24.0
		series = append(series, stats.Coordinate{X: x, Y: dayMax})
	}

	fitted, err := stats.LinearRegression(series)
	if err != nil || len(fitted) < 2 {
		return 0
	}
	first, last := fitted[0], fitted[len(fitted)-1]
	if last.X == first.X {
		return 0
	}
	return round2((last.Y - first.Y) / (last.X - first.X))
}

func bucketStart(date, bucket string) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", err
	}
	switch bucket {
	case "week":
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		t = t.AddDate(0, 0, 1-wd)
	case "month":
		t = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return t.Format(dateLayout), nil
}

func rankAttempts(attempts []models.Attempt, less func(a, b models.Attempt) bool) []models.Attempt {
	ranked := make([]models.Attempt, len(attempts))
	copy(ranked, attempts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})
	return ranked
}

func truncateAttempts(attempts []models.Attempt, top int) []models.Attempt {
	if len(attempts) > top {
		return attempts[:top]
	}
	return attempts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
