package controllers

import (
	"github.com/rishikesh-e/SuggestiFy/backend/config"
	"github.com/rishikesh-e/SuggestiFy/backend/middleware"
	"github.com/rishikesh-e/SuggestiFy/backend/models"
	"github.com/rishikesh-e/SuggestiFy/backend/services"
	"github.com/rishikesh-e/SuggestiFy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProfileController(db *gorm.DB, cfg *config.Config) *ProfileController {
	return &ProfileController{DB: db, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Description Returns identity, current learning paths with progress, and the quiz count
// @Tags profile
// @Produce json
// @Router /profile/ [get]
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var user models.User
	if err := pc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	var paths []models.LearningPath
	if err := pc.DB.Preload("Skill").Where("user_id = ?", userID).Find(&paths).Error; err != nil {
		return utils.InternalServerError(c, "Could not query learning paths")
	}

	currentlyLearning := make([]string, 0, len(paths))
	progressData := make([]map[string]interface{}, 0, len(paths))
	for i := range paths {
		progress, err := services.PathProgress(pc.DB, paths[i].ID)
		if err != nil {
			return utils.InternalServerError(c, "Could not compute progress")
		}
		currentlyLearning = append(currentlyLearning, paths[i].Skill.Name)
		progressData = append(progressData, map[string]interface{}{
			"skill":    paths[i].Skill.Name,
			"progress": progress,
		})
	}

	var quizCount int64
	if err := pc.DB.Model(&models.QuizResult{}).Where("user_id = ?", userID).Count(&quizCount).Error; err != nil {
		return utils.InternalServerError(c, "Could not count quiz results")
	}

	return c.JSON(fiber.Map{
		"id":                 user.ID,
		"name":               user.Name,
		"email":              user.Email,
		"created_at":         user.CreatedAt,
		"currently_learning": currentlyLearning,
		"progress":           progressData,
		"quizzes_taken":      quizCount,
	})
}
