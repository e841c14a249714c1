package models

import (
	"time"
)

// DailyRecord is the user-submitted source of truth for one exercise on one
// calendar date. (user_id, exercise_name, date) is unique; the set list hangs
// off it ordered by set_number.
type DailyRecord struct {
	RecordID     uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string     `gorm:"type:char(36);not null;index:idx_user_exercise_date,unique" json:"userId"`
	ExerciseName string     `gorm:"size:255;not null;index:idx_user_exercise_date,unique" json:"exerciseName"`
	Date         string     `gorm:"type:char(10);not null;index:idx_user_exercise_date,unique" json:"date"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	Sets         []SetEntry `gorm:"foreignKey:RecordID;references:RecordID" json:"sets"`
}

// SetEntry is one set (weight x reps) inside a DailyRecord. set_number is
// unique within a record after normalization.
type SetEntry struct {
	SetID     string    `gorm:"primaryKey;type:char(36)" json:"id"`
	RecordID  uint64    `gorm:"not null;index" json:"-"`
	SetNumber int       `gorm:"not null" json:"setNumber"`
	Weight    int       `gorm:"not null" json:"weight"`
	Reps      int       `gorm:"not null" json:"reps"`
	Done      bool      `gorm:"not null;default:false" json:"done"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides the table name for DailyRecord
func (DailyRecord) TableName() string {
	return "daily_records"
}

// TableName overrides the table name for SetEntry
func (SetEntry) TableName() string {
	return "set_entries"
}
