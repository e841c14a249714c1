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

func setupUsersApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"id": testUserID,
		})
		return c.Next()
	})

	usersHandler := &handlers.UsersHandler{DB: db}
	app.Get("/api/users/me", usersHandler.Me)
	app.Post("/api/users", usersHandler.Create)
	return app
}

// TestUsersMe tests GET /api/users/me
func TestUsersMe(t *testing.T) {
	db := setupTestDB(t)
	app := setupUsersApp(db)

	req := httptest.NewRequest("GET", "/api/users/me", nil)
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
	if result["id"] != testUserID {
		t.Errorf("Expected id %s, got %v", testUserID, result["id"])
	}
}

// TestCreateUser tests POST /api/users
func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)
	app := setupUsersApp(db)

	body, _ := json.Marshal(map[string]interface{}{
		"name":        "New Lifter",
		"email":       "new@example.com",
		"preferences": map[string]interface{}{"units": "kg"},
	})
	req := httptest.NewRequest("POST", "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["id"] == nil || result["id"] == "" {
		t.Error("Expected generated id in response")
	}

	// Duplicate email refused
	req = httptest.NewRequest("POST", "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 409 {
		t.Errorf("Expected status 409 for duplicate email, got %d", resp.StatusCode)
	}
}

// TestCreateUserValidation tests empty name/email rejection
func TestCreateUserValidation(t *testing.T) {
	db := setupTestDB(t)
	app := setupUsersApp(db)

	body, _ := json.Marshal(map[string]interface{}{"name": "  ", "email": "x@example.com"})
	req := httptest.NewRequest("POST", "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
