package services

import (
	"github.com/liftworks/strengthdb/internal/models"
	"gorm.io/gorm"
)

// EpleyE1RM computes the estimated one-rep max for a weight/reps pair.
func EpleyE1RM(weight, reps int) float64 {
	return float64(weight) * (1 + float64(reps)/30.0)
}

// rebuildAttempts regenerates the Attempt projection for one DailyRecord
// inside the caller's transaction: delete the day's rows, reinsert one row
// per set, then recompute PR flags against the all-time maximum for the
// (user, exercise) pair. Delete-then-reinsert keeps the projection an exact
// mirror even when the set list shrank or had weights revised.
func rebuildAttempts(tx *gorm.DB, rec *models.DailyRecord, sets []models.SetEntry) error {
	if err := tx.Where("user_id = ? AND exercise_name = ? AND date = ?",
		rec.UserID, rec.ExerciseName, rec.Date).
		Delete(&models.Attempt{}).Error; err != nil {
		return err
	}

	// With today's rows gone this is the maximum across all other days.
	var priorMax float64
	if err := tx.Model(&models.Attempt{}).
		Where("user_id = ? AND exercise_name = ?", rec.UserID, rec.ExerciseName).
		Select("COALESCE(MAX(e1rm), 0)").
		Scan(&priorMax).Error; err != nil {
		return err
	}

	todaysMax := priorMax
	attempts := make([]models.Attempt, 0, len(sets))
	for i, s := range sets {
		e1rm := EpleyE1RM(s.Weight, s.Reps)
		if e1rm > todaysMax {
			todaysMax = e1rm
		}
		attempts = append(attempts, models.Attempt{
			UserID:       rec.UserID,
			ExerciseName: rec.ExerciseName,
			Date:         rec.Date,
			RecordID:     rec.RecordID,
			RecordSetID:  s.SetID,
			SetIndex:     i,
			Weight:       s.Weight,
			Reps:         s.Reps,
			E1RM:         e1rm,
		})
	}

	if len(attempts) > 0 {
		if err := tx.Create(&attempts).Error; err != nil {
			return err
		}
	}

	// A day only earns flags by strictly beating the previous all-time best.
	// All of today's sets that tie the new maximum are flagged; every
	// superseded flag across other days is cleared first.
	if todaysMax > priorMax {
		if err := clearPRFlags(tx, rec.UserID, rec.ExerciseName); err != nil {
			return err
		}
		winners := make([]uint64, 0, 1)
		for _, a := range attempts {
			if a.E1RM == todaysMax {
				winners = append(winners, a.AttemptID)
			}
		}
		if len(winners) > 0 {
			if err := tx.Model(&models.Attempt{}).
				Where("attempt_id IN ?", winners).
				Update("is_pr", true).Error; err != nil {
				return err
			}
		}
		return nil
	}

	// The rebuilt day may have held the flag before a downward revision; if
	// nothing carries it anymore, restore it from history.
	var flagged int64
	if err := tx.Model(&models.Attempt{}).
		Where("user_id = ? AND exercise_name = ? AND is_pr = ?", rec.UserID, rec.ExerciseName, true).
		Count(&flagged).Error; err != nil {
		return err
	}
	if flagged == 0 {
		return recomputePRFlags(tx, rec.UserID, rec.ExerciseName)
	}
	return nil
}

// recomputePRFlags rebuilds the flag state for a (user, exercise) pair from
// scratch: the attempts tying the all-time maximum on the earliest date that
// reached it carry the flag, matching what incremental insertion would have
// produced. Used when attempt rows disappear without earning a new flag, i.e.
// record deletion, an identity move away from the exercise, or a downward
// revision of the flag-holding day.
func recomputePRFlags(tx *gorm.DB, userID, exerciseName string) error {
	var attempts []models.Attempt
	if err := tx.Where("user_id = ? AND exercise_name = ?", userID, exerciseName).
		Find(&attempts).Error; err != nil {
		return err
	}

	var maxE1RM float64
	for _, a := range attempts {
		if a.E1RM > maxE1RM {
			maxE1RM = a.E1RM
		}
	}

	if err := clearPRFlags(tx, userID, exerciseName); err != nil {
		return err
	}
	if maxE1RM <= 0 {
		return nil
	}

	// A later day that only tied the maximum never earned the flag.
	firstDate := ""
	for _, a := range attempts {
		if a.E1RM == maxE1RM && (firstDate == "" || a.Date < firstDate) {
			firstDate = a.Date
		}
	}

	winners := make([]uint64, 0, 1)
	for _, a := range attempts {
		if a.E1RM == maxE1RM && a.Date == firstDate {
			winners = append(winners, a.AttemptID)
		}
	}
	if len(winners) == 0 {
		return nil
	}
	return tx.Model(&models.Attempt{}).
		Where("attempt_id IN ?", winners).
		Update("is_pr", true).Error
}

func clearPRFlags(tx *gorm.DB, userID, exerciseName string) error {
	return tx.Model(&models.Attempt{}).
		Where("user_id = ? AND exercise_name = ? AND is_pr = ?", userID, exerciseName, true).
		Update("is_pr", false).Error
}
