package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/liftworks/strengthdb/internal/handlers"
	"github.com/liftworks/strengthdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testUserID = "11111111-2222-3333-4444-555555555555"

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.User{},
		&models.DailyRecord{},
		&models.SetEntry{},
		&models.Attempt{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	user := models.User{UserID: testUserID, Name: "Test Lifter", Email: "lifter@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed test user: %v", err)
	}

	return db
}

// setupApp wires a Fiber app with the record routes and a mock auth
// middleware that injects the test user into the request context.
func setupApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"id": testUserID,
		})
		return c.Next()
	})

	recordsHandler := &handlers.RecordsHandler{DB: db}
	app.Post("/api/records/:exercise/:date", recordsHandler.UpsertRecord)
	app.Put("/api/records/:exercise/:date/sets", recordsHandler.UpsertSet)
	app.Get("/api/records/:exercise/:date", recordsHandler.GetRecord)
	app.Get("/api/records/:exercise", recordsHandler.ListRecords)
	app.Patch("/api/records/id/:id", recordsHandler.UpdateRecord)
	app.Delete("/api/records/id/:id", recordsHandler.DeleteRecord)
	return app
}

// TestUpsertRecordEndpoint tests POST /api/records/:exercise/:date
func TestUpsertRecordEndpoint(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	reqBody := map[string]interface{}{
		"sets": []map[string]interface{}{
			{"setNumber": 1, "weight": 100, "reps": 5, "done": true},
			{"setNumber": 2, "weight": 80, "reps": 10},
		},
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/records/Bench%20Press/2026-08-01", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

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
	if result["exerciseName"] != "Bench Press" {
		t.Errorf("Expected exerciseName 'Bench Press', got %v", result["exerciseName"])
	}
	sets, ok := result["sets"].([]interface{})
	if !ok || len(sets) != 2 {
		t.Fatalf("Expected 2 sets in response, got %v", result["sets"])
	}

	// Projection exists
	var attempts int64
	db.Model(&models.Attempt{}).Where("user_id = ?", testUserID).Count(&attempts)
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

// TestUpsertRecordSingleObjectSets tests that a bare object is accepted where
// a set array is expected
func TestUpsertRecordSingleObjectSets(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	reqBody := map[string]interface{}{
		"sets": map[string]interface{}{"setNumber": 1, "weight": 60, "reps": 8},
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/records/Row/2026-08-01", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

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
	sets, ok := result["sets"].([]interface{})
	if !ok || len(sets) != 1 {
		t.Fatalf("Expected 1 set in response, got %v", result["sets"])
	}
}

// TestUpsertSetEndpoint tests PUT /api/records/:exercise/:date/sets
func TestUpsertSetEndpoint(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	body, _ := json.Marshal(map[string]interface{}{"setNumber": 1, "weight": 140, "reps": 5})
	req := httptest.NewRequest("PUT", "/api/records/Deadlift/2026-08-01/sets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

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
	sets, ok := result["sets"].([]interface{})
	if !ok || len(sets) != 1 {
		t.Fatalf("Expected 1 set in response, got %v", result["sets"])
	}
}

// TestGetRecordNotFound tests 404 responses with the error envelope
func TestGetRecordNotFound(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	req := httptest.NewRequest("GET", "/api/records/Bench%20Press/2026-08-01", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("Expected status 404, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["ok"] != false {
		t.Error("Expected ok=false in response")
	}
	if result["type"] != "notFound" {
		t.Errorf("Expected type 'notFound', got %v", result["type"])
	}
}

// TestUpsertRecordBadDate tests validation failures
func TestUpsertRecordBadDate(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	body, _ := json.Marshal(map[string]interface{}{"sets": []map[string]interface{}{}})
	req := httptest.NewRequest("POST", "/api/records/Bench%20Press/08-01-2026", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

// TestUpdateRecordConflict tests 409 on an identity move onto an occupied key
func TestUpdateRecordConflict(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	for _, date := range []string{"2026-08-01", "2026-08-02"} {
		body, _ := json.Marshal(map[string]interface{}{
			"sets": []map[string]interface{}{{"setNumber": 1, "weight": 100, "reps": 5}},
		})
		req := httptest.NewRequest("POST", "/api/records/Squat/"+date, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil || resp.StatusCode != 200 {
			t.Fatalf("Failed to seed record for %s", date)
		}
	}

	var rec models.DailyRecord
	if err := db.Where("date = ?", "2026-08-02").First(&rec).Error; err != nil {
		t.Fatalf("Failed to load seeded record: %v", err)
	}

	body, _ := json.Marshal(map[string]interface{}{
		"exerciseName": "Squat",
		"date":         "2026-08-01",
	})
	req := httptest.NewRequest("PATCH", "/api/records/id/1000000", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404 for unknown record, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("PATCH", "/api/records/id/"+itoa(rec.RecordID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 409 {
		t.Fatalf("Expected status 409, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["type"] != "conflict" {
		t.Errorf("Expected type 'conflict', got %v", result["type"])
	}
}

// TestDeleteRecordEndpoint tests DELETE /api/records/id/:id
func TestDeleteRecordEndpoint(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	body, _ := json.Marshal(map[string]interface{}{
		"sets": []map[string]interface{}{{"setNumber": 1, "weight": 100, "reps": 5}},
	})
	req := httptest.NewRequest("POST", "/api/records/Squat/2026-08-01", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if resp, err := app.Test(req); err != nil || resp.StatusCode != 200 {
		t.Fatal("Failed to seed record")
	}

	var rec models.DailyRecord
	if err := db.First(&rec).Error; err != nil {
		t.Fatalf("Failed to load seeded record: %v", err)
	}

	req = httptest.NewRequest("DELETE", "/api/records/id/"+itoa(rec.RecordID), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 204 {
		t.Fatalf("Expected status 204, got %d", resp.StatusCode)
	}

	var attempts int64
	db.Model(&models.Attempt{}).Count(&attempts)
	if attempts != 0 {
		t.Errorf("Expected no attempts after delete, got %d", attempts)
	}
}

// TestMissingUserContext tests that handlers refuse requests without a
// session user
func TestMissingUserContext(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	recordsHandler := &handlers.RecordsHandler{DB: db}
	app.Get("/api/records/:exercise", recordsHandler.ListRecords)

	req := httptest.NewRequest("GET", "/api/records/Squat", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("Expected status 403, got %d", resp.StatusCode)
	}
}

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}
