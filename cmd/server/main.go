package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/liftworks/strengthdb/internal/config"
	"github.com/liftworks/strengthdb/internal/database"
	"github.com/liftworks/strengthdb/internal/handlers"
	"github.com/liftworks/strengthdb/internal/middleware"
	"github.com/liftworks/strengthdb/internal/types"
	log "github.com/sirupsen/logrus"

	_ "github.com/liftworks/strengthdb/docs/api" // Swagger docs
)

// @title StrengthDB API
// @version 1.0.0
// @description Personal record and attempt analytics service for strength training
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/liftworks/strengthdb

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("strengthdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	recordsHandler := &handlers.RecordsHandler{DB: db}
	analyticsHandler := &handlers.AnalyticsHandler{DB: db}
	usersHandler := &handlers.UsersHandler{DB: db}

	// Record routes (all require user authentication)
	records := api.Group("/records", middleware.AuthUser())
	records.Post("/:exercise/:date", recordsHandler.UpsertRecord)
	records.Put("/:exercise/:date/sets", recordsHandler.UpsertSet)
	records.Get("/:exercise/:date", recordsHandler.GetRecord)
	records.Get("/:exercise", recordsHandler.ListRecords)
	records.Patch("/id/:id", recordsHandler.UpdateRecord)
	records.Delete("/id/:id", recordsHandler.DeleteRecord)

	// Analytics routes (all require user authentication)
	analytics := api.Group("/analytics", middleware.AuthUser())
	analytics.Get("/overview", analyticsHandler.Overview)
	analytics.Get("/:exercise/series", analyticsHandler.Series)
	analytics.Get("/:exercise/top", analyticsHandler.TopSets)
	analytics.Get("/:exercise/history", analyticsHandler.History)

	// User routes
	api.Get("/users/me", middleware.AuthUser(), usersHandler.Me)
	api.Post("/users", middleware.AuthAdmin(), usersHandler.Create)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Authorizer client initializes lazily on the first authenticated request
	log.Info("Authorizer will be initialized on first authenticated request")

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.WithField("port", cfg.Port).Info("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}

	log.Info("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Check for a typed application error (authorization middleware)
	var ce *types.CustomError
	if errors.As(err, &ce) {
		code = ce.Code
		message = ce.Message
		errorType = ce.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
