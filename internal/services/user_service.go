package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/liftworks/strengthdb/internal/models"
	"github.com/liftworks/strengthdb/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// UserInput is the payload for user provisioning. The id, when supplied,
// must be the Authorizer subject id so sessions resolve to the row.
type UserInput struct {
	ID          string                 `json:"id,omitempty"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}

// CreateUser provisions a user row the engine can validate ownership against.
func CreateUser(db *gorm.DB, in UserInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return nil, &types.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if email == "" {
		return nil, &types.ValidationError{Field: "email", Reason: "must not be empty"}
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	user := models.User{UserID: id, Name: name, Email: email}
	if in.Preferences != nil {
		raw, err := json.Marshal(in.Preferences)
		if err != nil {
			return nil, &types.ValidationError{Field: "preferences", Reason: "must be a JSON object"}
		}
		user.Preferences = datatypes.JSON(raw)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).
			Where("user_id = ? OR email = ?", id, email).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("user %s: %w", id, types.ErrConflict)
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches one user row.
func GetUser(db *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Where("user_id = ?", userID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", userID, types.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
