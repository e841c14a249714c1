package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/liftworks/strengthdb/internal/types"
	"github.com/liftworks/strengthdb/internal/utils"
)

// getUserID extracts the authenticated user id from context (set by the auth
// middleware). The engine never infers the user from the payload.
func getUserID(c *fiber.Ctx) (string, error) {
	user := c.Locals("user")
	if user == nil {
		return "", fmt.Errorf("user not found in context")
	}

	userMap, ok := user.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid user data format")
	}

	userID, ok := userMap["id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found")
	}

	return userID, nil
}

// serviceErrorResponse maps the engine's error taxonomy onto HTTP statuses.
func serviceErrorResponse(c *fiber.Ctx, err error, op string) error {
	var vErr *types.ValidationError
	switch {
	case errors.Is(err, types.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, types.ErrConflict):
		return utils.ConflictResponse(c, err.Error())
	case errors.As(err, &vErr):
		return utils.ErrorResponse(c, vErr.Error(), fiber.StatusBadRequest, "records.validation.input")
	default:
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, op)
	}
}
