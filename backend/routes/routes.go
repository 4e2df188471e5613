package routes

import (
	"log"

	"github.com/rishikesh-e/SuggestiFy/backend/config"
	"github.com/rishikesh-e/SuggestiFy/backend/controllers"
	"github.com/rishikesh-e/SuggestiFy/backend/generator"
	"github.com/rishikesh-e/SuggestiFy/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, gen generator.Generator, logger *log.Logger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/auth/register", authController.Register)
	app.Post("/auth/login", authController.Login)
	app.Post("/auth/logout", authMiddleware, authController.Logout)

	// Quiz routes
	quizController := controllers.NewQuizController(db, cfg, gen, logger)
	api := app.Group("/api", authMiddleware)
	api.Get("/generate-quiz/:skill", quizController.GenerateQuiz)
	api.Post("/submit", quizController.Submit)
	api.Get("/results-of-quiz", quizController.Results)
	api.Post("/complete-step/:stepId", quizController.CompleteStep)
	api.Post("/complete-skill/:skillId", quizController.CompleteSkill)
	api.Get("/get-skill", quizController.GetSkill)

	// Learning path routes
	pathController := controllers.NewPathController(db, cfg, gen, logger)
	api.Get("/skills", pathController.ListSkills)
	path := app.Group("/path", authMiddleware)
	path.Post("/learning-paths/generate/:skillId", pathController.GeneratePath)
	path.Get("/learning-paths", pathController.GetPath)
	path.Get("/learning-paths/:pathId/progress", pathController.GetProgress)
	path.Patch("/learning-steps/:stepId/complete", pathController.CompleteStepWithQuiz)
	path.Delete("/skills/:skillId", adminMiddleware, pathController.DeleteSkill)

	// Profile routes
	profileController := controllers.NewProfileController(db, cfg)
	app.Get("/profile/", authMiddleware, profileController.GetProfile)
}
