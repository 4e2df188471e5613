package controllers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/rishikesh-e/SuggestiFy/backend/config"
	"github.com/rishikesh-e/SuggestiFy/backend/generator"
	"github.com/rishikesh-e/SuggestiFy/backend/middleware"
	"github.com/rishikesh-e/SuggestiFy/backend/models"
	"github.com/rishikesh-e/SuggestiFy/backend/services"
	"github.com/rishikesh-e/SuggestiFy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PathController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Gen    generator.Generator
	Logger *log.Logger
}

func NewPathController(db *gorm.DB, cfg *config.Config, gen generator.Generator, logger *log.Logger) *PathController {
	return &PathController{DB: db, Cfg: cfg, Gen: gen, Logger: logger}
}

// GeneratePath godoc
// @Summary Regenerate the user's learning path for a skill
// @Description Rebuilds the path from the most recent passed quiz attempt
// @Tags path
// @Produce json
// @Router /path/learning-paths/generate/{skillId} [post]
func (pc *PathController) GeneratePath(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	skillID, err := strconv.ParseUint(c.Params("skillId"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "invalid skill id")
	}

	path, err := services.RegeneratePath(c.Context(), pc.DB, pc.Gen, userID, uint(skillID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Learning path generated",
		"path_id": path.ID,
	})
}

// GetPath godoc
// @Summary Get the user's learning path with steps
// @Tags path
// @Produce json
// @Router /path/learning-paths [get]
func (pc *PathController) GetPath(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var path models.LearningPath
	if err := pc.DB.Preload("Skill").Preload("Steps").
		Where("user_id = ?", userID).
		First(&path).Error; err != nil {
		return utils.NotFound(c, "No learning path found")
	}

	steps := make([]map[string]interface{}, 0, len(path.Steps))
	for i := range path.Steps {
		steps = append(steps, path.Steps[i].ToResponse())
	}

	return c.JSON(fiber.Map{
		"skill":     path.Skill.Name,
		"level":     path.Level,
		"path_data": path.PathData,
		"steps":     steps,
	})
}

// GetProgress godoc
// @Summary Completion percentage of a learning path
// @Tags path
// @Produce json
// @Router /path/learning-paths/{pathId}/progress [get]
func (pc *PathController) GetProgress(c *fiber.Ctx) error {
	pathID, err := strconv.ParseUint(c.Params("pathId"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "invalid path id")
	}

	progress, err := services.PathProgress(pc.DB, uint(pathID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"progress": progress})
}

// CompleteStepWithQuiz godoc
// @Summary Quiz-gated step completion
// @Description Generates a quiz for the step's topic and completes the step only when the supplied score passes the gate
// @Tags path
// @Accept json
// @Produce json
// @Router /path/learning-steps/{stepId}/complete [patch]
func (pc *PathController) CompleteStepWithQuiz(c *fiber.Ctx) error {
	stepID, err := strconv.ParseUint(c.Params("stepId"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "invalid step id")
	}

	var input struct {
		Score *int `json:"score"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	outcome, err := services.QuizGatedStepCompletion(c.Context(), pc.DB, pc.Gen, uint(stepID), input.Score)
	if err != nil && outcome == nil {
		return serviceError(c, err)
	}
	if outcome.Quiz.Degraded {
		pc.Logger.Printf("generator returned unparseable step quiz for step %d", stepID)
	}
	if err != nil {
		// score missing: hand the quiz back so the client can retry
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Score not provided",
			"quiz":    outcome.Quiz.Questions,
		})
	}

	if !outcome.Completed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Step '%s' not completed, score too low", outcome.Step.StepName),
			"quiz":    outcome.Quiz.Questions,
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Step '%s' completed", outcome.Step.StepName),
		"quiz":    outcome.Quiz.Questions,
	})
}

// ListSkills godoc
// @Summary List known skills
// @Tags path
// @Produce json
// @Router /api/skills [get]
func (pc *PathController) ListSkills(c *fiber.Ctx) error {
	search := c.Query("search")

	query := pc.DB.Model(&models.Skill{}).Order("name ASC")
	if search != "" {
		query = query.Where("name LIKE ?", "%"+services.NormalizeSkillName(search)+"%")
	}

	var skills []models.Skill
	if err := query.Find(&skills).Error; err != nil {
		return utils.InternalServerError(c, "Could not query skills")
	}

	response := make([]map[string]interface{}, 0, len(skills))
	for i := range skills {
		var questionCount int64
		pc.DB.Model(&models.Quiz{}).Where("skill_id = ?", skills[i].ID).Count(&questionCount)
		response = append(response, map[string]interface{}{
			"id":          skills[i].ID,
			"name":        skills[i].Name,
			"description": skills[i].Description,
			"questions":   questionCount,
		})
	}

	return c.JSON(fiber.Map{"skills": response})
}

// DeleteSkill godoc
// @Summary Delete a skill and all related data
// @Description Cascades across every user's paths and steps; admin only
// @Tags path
// @Produce json
// @Router /path/skills/{skillId} [delete]
func (pc *PathController) DeleteSkill(c *fiber.Ctx) error {
	skillID, err := strconv.ParseUint(c.Params("skillId"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "invalid skill id")
	}

	name, err := services.DeleteSkill(pc.DB, uint(skillID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Skill '%s' and related data deleted successfully", name),
	})
}
