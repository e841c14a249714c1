package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/liftworks/strengthdb/internal/models"
	"github.com/liftworks/strengthdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const dateLayout = "2006-01-02"

// UpsertRecord creates or replaces the full set list of the DailyRecord for
// (userID, exerciseName, date). When the normalized incoming list is
// structurally identical to the stored one (ids included) the stored record
// is returned untouched and no rebuild runs. Otherwise the set list is
// persisted and the day's Attempt projection is regenerated, all within one
// transaction on the record row.
func UpsertRecord(db *gorm.DB, userID, exerciseName, date string, sets []SetInput) (*models.DailyRecord, error) {
	exerciseName, date, err := normalizeKey(exerciseName, date)
	if err != nil {
		return nil, err
	}
	if err := ensureUser(db, userID); err != nil {
		return nil, err
	}

	var out *models.DailyRecord
	err = db.Transaction(func(tx *gorm.DB) error {
		incoming := NormalizeSets(sets)

		rec, err := lockRecordByKey(tx, userID, exerciseName, date)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec = &models.DailyRecord{UserID: userID, ExerciseName: exerciseName, Date: date}
			if err := tx.Create(rec).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			current, err := loadSets(tx, rec.RecordID)
			if err != nil {
				return err
			}
			if setsEqual(NormalizeEntries(current), incoming) {
				rec.Sets = current
				out = rec
				return nil
			}
		}

		if err := replaceSets(tx, rec.RecordID, incoming); err != nil {
			return err
		}
		if err := rebuildAttempts(tx, rec, incoming); err != nil {
			return err
		}
		rec.Sets = incoming
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertAttemptSet merges a single set into the DailyRecord for the key,
// creating the record when absent. A set with the same set number is replaced
// in place, keeping its id unless the caller supplied a new one; otherwise
// the set is appended with a fresh id. A merge that changes nothing skips
// persistence and the rebuild.
func UpsertAttemptSet(db *gorm.DB, userID, exerciseName, date string, set SetInput) (*models.DailyRecord, error) {
	exerciseName, date, err := normalizeKey(exerciseName, date)
	if err != nil {
		return nil, err
	}
	if err := ensureUser(db, userID); err != nil {
		return nil, err
	}

	var out *models.DailyRecord
	err = db.Transaction(func(tx *gorm.DB) error {
		incoming := NormalizeSet(set)

		rec, err := lockRecordByKey(tx, userID, exerciseName, date)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec = &models.DailyRecord{UserID: userID, ExerciseName: exerciseName, Date: date}
			if err := tx.Create(rec).Error; err != nil {
				return err
			}
			next := []models.SetEntry{incoming}
			if err := replaceSets(tx, rec.RecordID, next); err != nil {
				return err
			}
			if err := rebuildAttempts(tx, rec, next); err != nil {
				return err
			}
			rec.Sets = next
			out = rec
			return nil
		case err != nil:
			return err
		}

		current, err := loadSets(tx, rec.RecordID)
		if err != nil {
			return err
		}
		prior := NormalizeEntries(current)

		next := make([]models.SetEntry, len(prior))
		copy(next, prior)
		merged := false
		for i, e := range next {
			if e.SetNumber == incoming.SetNumber {
				if set.ID == "" {
					incoming.SetID = e.SetID
				}
				next[i] = incoming
				merged = true
				break
			}
		}
		if !merged {
			next = append(next, incoming)
		}
		next = dedupeAndSort(next)

		if setsEqual(prior, next) {
			rec.Sets = current
			out = rec
			return nil
		}

		if err := replaceSets(tx, rec.RecordID, next); err != nil {
			return err
		}
		if err := rebuildAttempts(tx, rec, next); err != nil {
			return err
		}
		rec.Sets = next
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateRecord is the explicit update path for an existing record: it may
// move the record to a new (exerciseName, date) identity and/or replace its
// set list. A nil sets slice keeps the stored sets. Moving onto a key held by
// another record of the same user is refused with ErrConflict; a record the
// caller does not own surfaces as ErrNotFound.
func UpdateRecord(db *gorm.DB, userID string, recordID uint64, exerciseName, date string, sets []SetInput) (*models.DailyRecord, error) {
	exerciseName, date, err := normalizeKey(exerciseName, date)
	if err != nil {
		return nil, err
	}
	if err := ensureUser(db, userID); err != nil {
		return nil, err
	}

	var out *models.DailyRecord
	err = db.Transaction(func(tx *gorm.DB) error {
		rec, err := lockRecordByID(tx, userID, recordID)
		if err != nil {
			return err
		}

		oldExercise, oldDate := rec.ExerciseName, rec.Date
		identityChanged := exerciseName != oldExercise || date != oldDate

		if identityChanged {
			var n int64
			if err := tx.Model(&models.DailyRecord{}).
				Where("user_id = ? AND exercise_name = ? AND date = ? AND record_id <> ?",
					userID, exerciseName, date, rec.RecordID).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("record for %s on %s already exists: %w",
					exerciseName, date, types.ErrConflict)
			}
		}

		current, err := loadSets(tx, rec.RecordID)
		if err != nil {
			return err
		}
		var next []models.SetEntry
		if sets != nil {
			next = NormalizeSets(sets)
		} else {
			next = NormalizeEntries(current)
		}

		if !identityChanged && setsEqual(NormalizeEntries(current), next) {
			rec.Sets = current
			out = rec
			return nil
		}

		if identityChanged {
			if err := tx.Model(rec).
				Updates(map[string]interface{}{"exercise_name": exerciseName, "date": date}).Error; err != nil {
				return err
			}
			rec.ExerciseName, rec.Date = exerciseName, date

			// The old key's projection is orphaned by the move.
			if err := tx.Where("user_id = ? AND exercise_name = ? AND date = ?",
				userID, oldExercise, oldDate).
				Delete(&models.Attempt{}).Error; err != nil {
				return err
			}
			if oldExercise != exerciseName {
				if err := recomputePRFlags(tx, userID, oldExercise); err != nil {
					return err
				}
			}
		}

		if err := replaceSets(tx, rec.RecordID, next); err != nil {
			return err
		}
		if err := rebuildAttempts(tx, rec, next); err != nil {
			return err
		}
		rec.Sets = next
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteRecord removes a record with its sets and cascades to the derived
// Attempt rows, then recomputes the exercise's PR flags from what remains.
func DeleteRecord(db *gorm.DB, userID string, recordID uint64) error {
	if err := ensureUser(db, userID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		rec, err := lockRecordByID(tx, userID, recordID)
		if err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND exercise_name = ? AND date = ?",
			rec.UserID, rec.ExerciseName, rec.Date).
			Delete(&models.Attempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", rec.RecordID).
			Delete(&models.SetEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(rec).Error; err != nil {
			return err
		}
		return recomputePRFlags(tx, userID, rec.ExerciseName)
	})
}

// GetRecord fetches one DailyRecord with its ordered set list.
func GetRecord(db *gorm.DB, userID, exerciseName, date string) (*models.DailyRecord, error) {
	exerciseName, date, err := normalizeKey(exerciseName, date)
	if err != nil {
		return nil, err
	}
	if err := ensureUser(db, userID); err != nil {
		return nil, err
	}

	var rec models.DailyRecord
	err = db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Sets", orderedSets).
		Where("user_id = ? AND exercise_name = ? AND date = ?", userID, exerciseName, date).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("record for %s on %s: %w", exerciseName, date, types.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecords returns all of a user's records for one exercise, oldest first.
func ListRecords(db *gorm.DB, userID, exerciseName string) ([]models.DailyRecord, error) {
	exerciseName = strings.TrimSpace(exerciseName)
	if exerciseName == "" {
		return nil, &types.ValidationError{Field: "exerciseName", Reason: "must not be empty"}
	}
	if err := ensureUser(db, userID); err != nil {
		return nil, err
	}

	var recs []models.DailyRecord
	err := db.Preload("Sets", orderedSets).
		Where("user_id = ? AND exercise_name = ?", userID, exerciseName).
		Order("date ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func orderedSets(db *gorm.DB) *gorm.DB {
	return db.Order("set_number ASC")
}

func normalizeKey(exerciseName, date string) (string, string, error) {
	exerciseName = strings.TrimSpace(exerciseName)
	if exerciseName == "" {
		return "", "", &types.ValidationError{Field: "exerciseName", Reason: "must not be empty"}
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", "", &types.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	return exerciseName, t.Format(dateLayout), nil
}

func ensureUser(db *gorm.DB, userID string) error {
	var n int64
	if err := db.Model(&models.User{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", userID, types.ErrNotFound)
	}
	return nil
}

// lockRecordByKey loads the record row under a FOR UPDATE lock so concurrent
// writers to the same key serialize on the store's row lock.
func lockRecordByKey(tx *gorm.DB, userID, exerciseName, date string) (*models.DailyRecord, error) {
	var rec models.DailyRecord
	err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND exercise_name = ? AND date = ?", userID, exerciseName, date).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func lockRecordByID(tx *gorm.DB, userID string, recordID uint64) (*models.DailyRecord, error) {
	var rec models.DailyRecord
	err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("record_id = ?", recordID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("record %d: %w", recordID, types.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	// Ownership mismatch surfaces as not-found, not as a leak of existence.
	if rec.UserID != userID {
		return nil, fmt.Errorf("record %d: %w", recordID, types.ErrNotFound)
	}
	return &rec, nil
}

func loadSets(tx *gorm.DB, recordID uint64) ([]models.SetEntry, error) {
	var sets []models.SetEntry
	err := tx.Where("record_id = ?", recordID).
		Order("set_number ASC").
		Find(&sets).Error
	if err != nil {
		return nil, err
	}
	return sets, nil
}

func replaceSets(tx *gorm.DB, recordID uint64, sets []models.SetEntry) error {
	if err := tx.Where("record_id = ?", recordID).Delete(&models.SetEntry{}).Error; err != nil {
		return err
	}
	if len(sets) == 0 {
		return nil
	}
	for i := range sets {
		sets[i].RecordID = recordID
	}
	return tx.Create(&sets).Error
}
