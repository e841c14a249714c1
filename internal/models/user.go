package models

import (
	"time"

	"gorm.io/datatypes"
)

// User is the account row the engine validates ownership against. The id is
// the Authorizer subject id, so sessions map straight onto rows.
type User struct {
	UserID      string         `gorm:"primaryKey;type:char(36)" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Email       string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Preferences datatypes.JSON `gorm:"type:json" json:"preferences,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
