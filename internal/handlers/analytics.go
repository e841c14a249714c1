package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liftworks/strengthdb/internal/services"
	"github.com/liftworks/strengthdb/internal/utils"
	"gorm.io/gorm"
)

// AnalyticsHandler handles read-side analytics routes
type AnalyticsHandler struct {
	DB *gorm.DB
}

// Overview handles GET /api/analytics/overview
// @Summary Training overview
// @Description Per-exercise bests, recent change, trend slope, PR counts and streak
// @Tags Analytics
// @Produce json
// @Param window query int false "Window in days" default(30)
// @Success 200 {object} services.Overview
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	overview, err := services.GetOverview(h.DB, userID, c.QueryInt("window", 30))
	if err != nil {
		return serviceErrorResponse(c, err, "analyticsOverview")
	}
	return c.Status(fiber.StatusOK).JSON(overview)
}

// Series handles GET /api/analytics/:exercise/series
// @Summary e1RM time series
// @Description Max e1RM per day, week, or month bucket for one exercise
// @Tags Analytics
// @Produce json
// @Param exercise path string true "Exercise name"
// @Param bucket query string false "Bucket size (day, week, month)" default(day)
// @Param window query int false "Window in days" default(30)
// @Success 200 {array} services.SeriesPoint
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analytics/{exercise}/series [get]
func (h *AnalyticsHandler) Series(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	series, err := services.GetE1RMSeries(h.DB, userID, exerciseParam(c),
		c.Query("bucket", "day"), c.QueryInt("window", 30))
	if err != nil {
		return serviceErrorResponse(c, err, "analyticsSeries")
	}
	return c.Status(fiber.StatusOK).JSON(series)
}

// TopSets handles GET /api/analytics/:exercise/top
// @Summary Top sets
// @Description Top attempts ranked by weight, by reps, and by e1RM
// @Tags Analytics
// @Produce json
// @Param exercise path string true "Exercise name"
// @Param limit query int false "Number of attempts per ranking" default(5)
// @Success 200 {object} services.TopSets
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analytics/{exercise}/top [get]
func (h *AnalyticsHandler) TopSets(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	top, err := services.GetTopSets(h.DB, userID, exerciseParam(c), c.QueryInt("limit", 5))
	if err != nil {
		return serviceErrorResponse(c, err, "analyticsTopSets")
	}
	return c.Status(fiber.StatusOK).JSON(top)
}

// History handles GET /api/analytics/:exercise/history
// @Summary Attempt history
// @Description All attempts for one exercise in chronological order
// @Tags Analytics
// @Produce json
// @Param exercise path string true "Exercise name"
// @Success 200 {array} models.Attempt
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analytics/{exercise}/history [get]
func (h *AnalyticsHandler) History(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "records.authorization.user")
	}

	attempts, err := services.GetHistory(h.DB, userID, exerciseParam(c))
	if err != nil {
		return serviceErrorResponse(c, err, "analyticsHistory")
	}
	return c.Status(fiber.StatusOK).JSON(attempts)
}
