package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/liftworks/strengthdb/internal/services"
	"github.com/liftworks/strengthdb/internal/types"
	"github.com/liftworks/strengthdb/internal/utils"
	"gorm.io/gorm"
)

// RecordsHandler handles daily record routes
type RecordsHandler struct {
	DB *gorm.DB
}

// exerciseParam returns the :exercise path segment with percent-encoding
// removed ("Bench%20Press" arrives as one segment).
func exerciseParam(c *fiber.Ctx) string {
	raw := c.Params("exercise")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// UpsertRecord handles POST /api/records/:exercise/:date
// @Summary Upsert a daily record
// @Description Create or replace the full set list for one exercise on one date
// @Tags Records
// @Accept json
// @Produce json
// @Param exercise path string true "Exercise name"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param body body object true "Set list"
// @Success 200 {object} models.DailyRecord
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /records/{exercise}/{date} [post]
func (h *RecordsHandler) UpsertRecord(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	var body struct {
		Sets types.FlexList[services.SetInput] `json:"sets"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "records.validation.input")
	}

	rec, err := services.UpsertRecord(h.DB, userID, exerciseParam(c), c.Params("date"), body.Sets.Slice())
	if err != nil {
		return serviceErrorResponse(c, err, "upsertRecord")
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}

// UpsertSet handles PUT /api/records/:exercise/:date/sets
// @Summary Upsert a single set
// @Description Merge one set into the record for the date, replacing the set with the same set number
// @Tags Records
// @Accept json
// @Produce json
// @Param exercise path string true "Exercise name"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param body body services.SetInput true "Set"
// @Success 200 {object} models.DailyRecord
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /records/{exercise}/{date}/sets [put]
func (h *RecordsHandler) UpsertSet(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	var set services.SetInput
	if err := c.BodyParser(&set); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "records.validation.input")
	}

	rec, err := services.UpsertAttemptSet(h.DB, userID, exerciseParam(c), c.Params("date"), set)
	if err != nil {
		return serviceErrorResponse(c, err, "upsertSet")
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}

// GetRecord handles GET /api/records/:exercise/:date
// @Summary Get a daily record
// @Tags Records
// @Produce json
// @Param exercise path string true "Exercise name"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.DailyRecord
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /records/{exercise}/{date} [get]
func (h *RecordsHandler) GetRecord(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	rec, err := services.GetRecord(h.DB, userID, exerciseParam(c), c.Params("date"))
	if err != nil {
		return serviceErrorResponse(c, err, "getRecord")
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}

// ListRecords handles GET /api/records/:exercise
// @Summary List records for an exercise
// @Tags Records
// @Produce json
// @Param exercise path string true "Exercise name"
// @Success 200 {array} models.DailyRecord
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /records/{exercise} [get]
func (h *RecordsHandler) ListRecords(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	recs, err := services.ListRecords(h.DB, userID, exerciseParam(c))
	if err != nil {
		return serviceErrorResponse(c, err, "listRecords")
	}
	return c.Status(fiber.StatusOK).JSON(recs)
}

// UpdateRecord handles PATCH /api/records/id/:id
// @Summary Update a record
// @Description Move a record to a new (exercise, date) identity and/or replace its sets
// @Tags Records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param body body object true "New identity and optional set list"
// @Success 200 {object} models.DailyRecord
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /records/id/{id} [patch]
func (h *RecordsHandler) UpdateRecord(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	recordID, err := c.ParamsInt("id")
	if err != nil || recordID < 1 {
		return utils.ErrorResponse(c, "Invalid record id", fiber.StatusBadRequest, "records.validation.input")
	}

	var body struct {
		ExerciseName string               `json:"exerciseName"`
		Date         string               `json:"date"`
		Sets         *[]services.SetInput `json:"sets"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "records.validation.input")
	}

	var sets []services.SetInput
	if body.Sets != nil {
		sets = *body.Sets
		if sets == nil {
			sets = []services.SetInput{}
		}
	}

	rec, err := services.UpdateRecord(h.DB, userID, uint64(recordID), body.ExerciseName, body.Date, sets)
	if err != nil {
		return serviceErrorResponse(c, err, "updateRecord")
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}

// DeleteRecord handles DELETE /api/records/id/:id
// @Summary Delete a record
// @Description Delete a record and its derived attempts
// @Tags Records
// @Produce json
// @Param id path int true "Record ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /records/id/{id} [delete]
func (h *RecordsHandler) DeleteRecord(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	recordID, err := c.ParamsInt("id")
	if err != nil || recordID < 1 {
		return utils.ErrorResponse(c, "Invalid record id", fiber.StatusBadRequest, "records.validation.input")
	}

	if err := services.DeleteRecord(h.DB, userID, uint64(recordID)); err != nil {
		return serviceErrorResponse(c, err, "deleteRecord")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
