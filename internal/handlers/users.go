package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liftworks/strengthdb/internal/services"
	"github.com/liftworks/strengthdb/internal/utils"
	"gorm.io/gorm"
)

// UsersHandler handles user profile routes
type UsersHandler struct {
	DB *gorm.DB
}

// Me handles GET /api/users/me
// @Summary Get the current user
// @Tags Users
// @Produce json
// @Success 200 {object} models.User
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/me [get]
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	user, err := services.GetUser(h.DB, userID)
	if err != nil {
		return serviceErrorResponse(c, err, "getUser")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// Create handles POST /api/users
// @Summary Create a user
// @Description Register a user profile. Admin only.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.UserInput true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var in services.UserInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "records.validation.input")
	}

	user, err := services.CreateUser(h.DB, in)
	if err != nil {
		return serviceErrorResponse(c, err, "createUser")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}
