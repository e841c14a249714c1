package models

import (
	"time"
)

// Attempt is the derived projection of a SetEntry: one row per set at rebuild
// time, carrying the estimated one-rep max and the PR flag. Rows are owned by
// the DailyRecord that produced them and are fully regenerated on every
// rebuild of that record, never patched in place.
type Attempt struct {
	AttemptID    uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"type:char(36);not null;index:idx_attempt_exercise;index:idx_attempt_day" json:"userId"`
	ExerciseName string    `gorm:"size:255;not null;index:idx_attempt_exercise" json:"exerciseName"`
	Date         string    `gorm:"type:char(10);not null;index:idx_attempt_day" json:"date"`
	RecordID     uint64    `gorm:"not null;index" json:"recordId"`
	RecordSetID  string    `gorm:"type:char(36);not null" json:"recordSetId"`
	SetIndex     int       `gorm:"not null" json:"setIndex"`
	Weight       int       `gorm:"not null" json:"weight"`
	Reps         int       `gorm:"not null" json:"reps"`
	E1RM         float64   `gorm:"column:e1rm;not null" json:"e1rm"`
	IsPR         bool      `gorm:"column:is_pr;not null;default:false" json:"isPr"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName overrides the table name for Attempt
func (Attempt) TableName() string {
	return "attempts"
}
