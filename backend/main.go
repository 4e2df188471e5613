package main

import (
	"context"
	"log"

	"github.com/rishikesh-e/SuggestiFy/backend/config"
	"github.com/rishikesh-e/SuggestiFy/backend/generator"
	"github.com/rishikesh-e/SuggestiFy/backend/middleware"
	"github.com/rishikesh-e/SuggestiFy/backend/routes"
	"github.com/rishikesh-e/SuggestiFy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Initialize the Gemini generator
	gen, err := generator.NewGeminiGenerator(context.Background(), cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Error initializing generator: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, gen, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
