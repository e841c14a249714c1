package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/liftworks/strengthdb/internal/handlers"
	"gorm.io/gorm"
)

func setupAnalyticsApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"id": testUserID,
		})
		return c.Next()
	})

	recordsHandler := &handlers.RecordsHandler{DB: db}
	analyticsHandler := &handlers.AnalyticsHandler{DB: db}
	app.Post("/api/records/:exercise/:date", recordsHandler.UpsertRecord)
	app.Get("/api/analytics/overview", analyticsHandler.Overview)
	app.Get("/api/analytics/:exercise/series", analyticsHandler.Series)
	app.Get("/api/analytics/:exercise/top", analyticsHandler.TopSets)
	app.Get("/api/analytics/:exercise/history", analyticsHandler.History)
	return app
}

func seedRecord(t *testing.T, app *fiber.App, exercise, date string, weight, reps int) {
	t.Helper()
	body, _ := json.Marshal(map[string]interface{}{
		"sets": []map[string]interface{}{{"setNumber": 1, "weight": weight, "reps": reps}},
	})
	req := httptest.NewRequest("POST", "/api/records/"+exercise+"/"+date, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != 200 {
		t.Fatalf("Failed to seed record for %s %s", exercise, date)
	}
}

// TestOverviewEndpoint tests GET /api/analytics/overview
func TestOverviewEndpoint(t *testing.T) {
	db := setupTestDB(t)
	app := setupAnalyticsApp(db)

	seedRecord(t, app, "Squat", "2026-08-01", 100, 5)

	req := httptest.NewRequest("GET", "/api/analytics/overview?window=36500", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["exerciseCount"] != float64(1) {
		t.Errorf("Expected exerciseCount 1, got %v", result["exerciseCount"])
	}
	if result["totalPrs"] != float64(1) {
		t.Errorf("Expected totalPrs 1, got %v", result["totalPrs"])
	}
	bests, ok := result["bests"].([]interface{})
	if !ok || len(bests) != 1 {
		t.Fatalf("Expected 1 best, got %v", result["bests"])
	}
}

// TestSeriesEndpointRejectsBadBucket tests bucket validation
func TestSeriesEndpointRejectsBadBucket(t *testing.T) {
	db := setupTestDB(t)
	app := setupAnalyticsApp(db)

	req := httptest.NewRequest("GET", "/api/analytics/Squat/series?bucket=year", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

// TestTopSetsEndpoint tests GET /api/analytics/:exercise/top
func TestTopSetsEndpoint(t *testing.T) {
	db := setupTestDB(t)
	app := setupAnalyticsApp(db)

	seedRecord(t, app, "Deadlift", "2026-08-01", 140, 5)
	seedRecord(t, app, "Deadlift", "2026-08-02", 150, 3)

	req := httptest.NewRequest("GET", "/api/analytics/Deadlift/top?limit=1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	byWeight, ok := result["byWeight"].([]interface{})
	if !ok || len(byWeight) != 1 {
		t.Fatalf("Expected 1 attempt in byWeight, got %v", result["byWeight"])
	}
	top := byWeight[0].(map[string]interface{})
	if top["weight"] != float64(150) {
		t.Errorf("Expected top weight 150, got %v", top["weight"])
	}
}

// TestHistoryEndpoint tests GET /api/analytics/:exercise/history
func TestHistoryEndpoint(t *testing.T) {
	db := setupTestDB(t)
	app := setupAnalyticsApp(db)

	seedRecord(t, app, "Row", "2026-08-02", 60, 10)
	seedRecord(t, app, "Row", "2026-08-01", 55, 10)

	req := httptest.NewRequest("GET", "/api/analytics/Row/history", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 attempts, got %d", len(result))
	}
	if result[0]["date"] != "2026-08-01" {
		t.Errorf("Expected history ordered by date, got %v first", result[0]["date"])
	}
}
