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

type QuizController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Gen    generator.Generator
	Logger *log.Logger
}

func NewQuizController(db *gorm.DB, cfg *config.Config, gen generator.Generator, logger *log.Logger) *QuizController {
	return &QuizController{DB: db, Cfg: cfg, Gen: gen, Logger: logger}
}

// GenerateQuiz godoc
// @Summary Get or generate a quiz for a skill
// @Description Returns the cached questions for the skill, generating them on first request
// @Tags quiz
// @Produce json
// @Router /api/generate-quiz/{skill} [get]
func (qc *QuizController) GenerateQuiz(c *fiber.Ctx) error {
	skillName := c.Params("skill")
	if skillName == "" {
		return utils.BadRequest(c, "skill is required")
	}

	skill, err := services.GetOrCreateSkill(qc.DB, skillName)
	if err != nil {
		return serviceError(c, err)
	}

	quizzes, degraded, err := services.GetOrGenerateQuiz(c.Context(), qc.DB, qc.Gen, skill)
	if err != nil {
		return serviceError(c, err)
	}
	if degraded {
		qc.Logger.Printf("generator returned unparseable quiz for skill %q, stored placeholder", skill.Name)
	}

	response := make([]map[string]interface{}, 0, len(quizzes))
	for i := range quizzes {
		response = append(response, quizzes[i].ToResponse())
	}
	return c.JSON(response)
}

// Submit godoc
// @Summary Submit a quiz score
// @Description Records the attempt, derives the level and regenerates the user's learning path
// @Tags quiz
// @Accept json
// @Produce json
// @Router /api/submit [post]
func (qc *QuizController) Submit(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var input struct {
		Score *int   `json:"score"`
		Skill string `json:"skill"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Score == nil || input.Skill == "" {
		return utils.BadRequest(c, "score and skill are required")
	}

	result, err := services.SubmitQuiz(c.Context(), qc.DB, qc.Gen, userID, input.Skill, *input.Score)
	if err != nil {
		return serviceError(c, err)
	}
	if result.Degraded {
		qc.Logger.Printf("generator returned unparseable learning path for skill %q, substituted empty topic list", result.Skill.Name)
	}

	return c.JSON(fiber.Map{
		"message":       "Quiz submitted and new learning path generated",
		"skill":         result.Skill.Name,
		"level":         result.Level,
		"passed":        result.Passed,
		"learning_path": result.Document,
	})
}

// Results godoc
// @Summary List the user's quiz results
// @Description Returns the full append-only ledger of attempts
// @Tags quiz
// @Produce json
// @Router /api/results-of-quiz [get]
func (qc *QuizController) Results(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var user models.User
	if err := qc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	var results []models.QuizResult
	if err := qc.DB.Preload("Skill").
		Where("user_id = ?", userID).
		Order("taken_at ASC").
		Find(&results).Error; err != nil {
		return utils.InternalServerError(c, "Could not query results")
	}

	resultsData := make([]map[string]interface{}, 0, len(results))
	for i := range results {
		r := &results[i]
		resultsData = append(resultsData, map[string]interface{}{
			"id":         r.ID,
			"user_id":    r.UserID,
			"username":   user.Name,
			"skill_id":   r.SkillID,
			"skill_name": r.Skill.Name,
			"level":      r.Level,
			"score":      r.Score,
			"passed":     r.Passed,
			"taken_at":   r.TakenAt,
		})
	}

	return c.JSON(fiber.Map{
		"user_id":       userID,
		"username":      user.Name,
		"total_results": len(resultsData),
		"results":       resultsData,
	})
}

// CompleteStep godoc
// @Summary Mark a learning step as completed
// @Description Idempotent step completion
// @Tags quiz
// @Produce json
// @Router /api/complete-step/{stepId} [post]
func (qc *QuizController) CompleteStep(c *fiber.Ctx) error {
	stepID, err := strconv.ParseUint(c.Params("stepId"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "invalid step id")
	}

	step, err := services.CompleteStep(qc.DB, uint(stepID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Step '%s' marked as completed", step.StepName),
	})
}

// CompleteSkill godoc
// @Summary Finish a skill
// @Description Deletes the learning path once every step is complete
// @Tags quiz
// @Produce json
// @Router /api/complete-skill/{skillId} [post]
func (qc *QuizController) CompleteSkill(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	skillID, err := strconv.ParseUint(c.Params("skillId"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "invalid skill id")
	}

	if err := services.FinishSkill(qc.DB, userID, uint(skillID)); err != nil {
		return serviceError(c, err)
	}

	var user models.User
	qc.DB.First(&user, userID)

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Congratulations %s! You have completed the skill.", user.Name),
		"next":    "Would you like to learn a new skill?",
	})
}

// GetSkill godoc
// @Summary Get the user's active skill and path
// @Tags quiz
// @Produce json
// @Router /api/get-skill [get]
func (qc *QuizController) GetSkill(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var path models.LearningPath
	if err := qc.DB.Preload("Skill").Preload("Steps").
		Where("user_id = ?", userID).
		First(&path).Error; err != nil {
		return utils.NotFound(c, "No active learning path found")
	}

	steps := make([]map[string]interface{}, 0, len(path.Steps))
	for i := range path.Steps {
		steps = append(steps, path.Steps[i].ToResponse())
	}

	return c.JSON(fiber.Map{
		"skill":         path.Skill.Name,
		"level":         path.Level,
		"learning_path": path.PathData,
		"steps":         steps,
	})
}
