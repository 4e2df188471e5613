package services

import (
	"context"

	"github.com/rishikesh-e/SuggestiFy/backend/generator"
	"github.com/rishikesh-e/SuggestiFy/backend/models"
	"gorm.io/gorm"
)

// MaxQuizQuestions caps how many generated questions are persisted per
// skill.
const MaxQuizQuestions = 10

// GetOrGenerateQuiz returns the cached questions for a skill, or
// generates and persists a fresh set when none exist yet. Cached
// questions are returned verbatim with no freshness check. The
// returned flag reports whether the generator output was unparseable
// and a placeholder question was stored instead.
func GetOrGenerateQuiz(ctx context.Context, db *gorm.DB, gen generator.Generator, skill *models.Skill) ([]models.Quiz, bool, error) {
	var existing []models.Quiz
	if err := db.Where("skill_id = ?", skill.ID).Order("id").Find(&existing).Error; err != nil {
		return nil, false, err
	}
	if len(existing) > 0 {
		return existing, false, nil
	}

	raw, err := gen.GenerateQuiz(ctx, skill.Name)
	if err != nil {
		return nil, false, err
	}

	parsed := generator.ParseQuiz(raw, MaxQuizQuestions)

	quizzes := make([]models.Quiz, 0, len(parsed.Questions))
	for _, q := range parsed.Questions {
		quizzes = append(quizzes, models.Quiz{
			SkillID:  skill.ID,
			Question: q.Question,
			Option1:  q.Option1,
			Option2:  q.Option2,
			Option3:  q.Option3,
			Option4:  q.Option4,
			Answer:   q.Answer,
		})
	}

	if len(quizzes) > 0 {
		if err := db.Create(&quizzes).Error; err != nil {
			return nil, false, err
		}
	}

	return quizzes, parsed.Degraded, nil
}
