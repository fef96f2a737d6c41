package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seangjr/ythwknd25/config"
	"github.com/seangjr/ythwknd25/database"
	"github.com/seangjr/ythwknd25/handlers"
	"github.com/seangjr/ythwknd25/metrics"
	"github.com/seangjr/ythwknd25/middleware"
	"github.com/seangjr/ythwknd25/services"
	"github.com/seangjr/ythwknd25/sheets"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.FromEnv()

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("❌ Failed to seed catalog: %v", err)
	}

	metrics.Register()

	// Wire services
	hub := services.NewHub()
	syncer := sheets.NewSyncer(context.Background(), cfg)
	inviteService := services.NewInviteService(db)
	availabilityService := services.NewAvailabilityService(db)
	registrationService := services.NewRegistrationService(db, hub, syncer)

	cleanupService := services.NewCleanupService(inviteService)
	cleanupService.Start()
	defer cleanupService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimit(cfg.RateLimitMaxRequests, cfg.RateLimitWindowSeconds))

	h := handlers.New(cfg, db, registrationService, availabilityService, inviteService, syncer, hub)
	handlers.SetupRoutes(app, h)

	// Prometheus metrics on a side listener, away from the public API
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Printf("📊 Metrics listening on %s", cfg.MetricsAddr)
		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil && err != http.ErrServerClosed {
			log.Printf("⚠️ metrics server stopped: %v", err)
		}
	}()

	log.Printf("🚀 HTTP server starting on %s", cfg.HTTPAddr)
	log.Printf("📋 Sheets sync enabled: %v", syncer.Enabled())
	log.Printf("🌐 Live feed available at ws://localhost%s/ws/registrations", cfg.HTTPAddr)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))

	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
