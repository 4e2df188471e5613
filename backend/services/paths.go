package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/rishikesh-e/SuggestiFy/backend/generator"
	"github.com/rishikesh-e/SuggestiFy/backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmitResult carries everything a quiz submission produced.
type SubmitResult struct {
	Skill    *models.Skill
	Level    string
	Passed   bool
	Path     *models.LearningPath
	Document generator.PathDocument
	Degraded bool
}

// SubmitQuiz runs the full quiz-to-path state machine: resolve the
// skill, classify the score, append the immutable ledger row, and
// replace the user's learning path with a freshly generated one. The
// generator is called before the transaction so a retried transaction
// never regenerates. All persistence happens in one transaction; a
// duplicate-key loss on the path's user uniqueness is retried once.
func SubmitQuiz(ctx context.Context, db *gorm.DB, gen generator.Generator, userID uint, skillName string, score int) (*SubmitResult, error) {
	skill, err := GetOrCreateSkill(db, skillName)
	if err != nil {
		return nil, err
	}

	passed, level := Classify(score)

	raw, err := gen.GenerateLearningPath(ctx, skill.Name, level)
	if err != nil {
		return nil, err
	}
	parsed := generator.ParsePath(raw)

	var path *models.LearningPath
	attempt := func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			result := models.QuizResult{
				UserID:  userID,
				SkillID: skill.ID,
				Score:   score,
				Passed:  passed,
				Level:   level,
				TakenAt: time.Now().UTC(),
			}
			if err := tx.Create(&result).Error; err != nil {
				return err
			}

			var txErr error
			path, txErr = replaceUserPath(tx, userID, skill.ID, level, parsed.Document)
			return txErr
		})
	}

	err = attempt()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a concurrent replacement race; the retry observes the
		// winner's path and replaces it.
		err = attempt()
	}
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		Skill:    skill,
		Level:    level,
		Passed:   passed,
		Path:     path,
		Document: parsed.Document,
		Degraded: parsed.Degraded,
	}, nil
}

// RegeneratePath rebuilds the user's learning path for a skill from
// their most recent passed quiz attempt.
func RegeneratePath(ctx context.Context, db *gorm.DB, gen generator.Generator, userID, skillID uint) (*models.LearningPath, error) {
	var result models.QuizResult
	err := db.Where("user_id = ? AND skill_id = ? AND passed = ?", userID, skillID, true).
		Order("taken_at DESC").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPassedQuiz
		}
		return nil, err
	}

	var skill models.Skill
	if err := db.First(&skill, skillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	raw, err := gen.GenerateLearningPath(ctx, skill.Name, result.Level)
	if err != nil {
		return nil, err
	}
	parsed := generator.ParsePath(raw)

	var path *models.LearningPath
	attempt := func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			var txErr error
			path, txErr = replaceUserPath(tx, userID, skillID, result.Level, parsed.Document)
			return txErr
		})
	}
	err = attempt()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = attempt()
	}
	if err != nil {
		return nil, err
	}

	return path, nil
}

// replaceUserPath enforces the at-most-one-active-path invariant:
// any existing path for the user is deleted with its steps, then the
// replacement is created and its steps seeded in topic order.
func replaceUserPath(tx *gorm.DB, userID, skillID uint, level string, doc generator.PathDocument) (*models.LearningPath, error) {
	var existing models.LearningPath
	err := tx.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		if err := deletePathWithSteps(tx, &existing); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	path := models.LearningPath{
		UserID:      userID,
		SkillID:     skillID,
		Level:       level,
		PathData:    datatypes.JSON(docJSON),
		GeneratedAt: time.Now().UTC(),
	}
	if err := tx.Create(&path).Error; err != nil {
		return nil, err
	}

	for _, topic := range doc.Topics {
		step := models.LearningStepProgress{
			PathID:   path.ID,
			StepName: topic.Name,
		}
		if err := tx.Create(&step).Error; err != nil {
			return nil, err
		}
	}

	return &path, nil
}

// deletePathWithSteps removes steps first, then the path, with hard
// deletes so the user_id unique index frees up for the replacement.
func deletePathWithSteps(tx *gorm.DB, path *models.LearningPath) error {
	if err := tx.Unscoped().Where("path_id = ?", path.ID).Delete(&models.LearningStepProgress{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(path).Error
}

// PathProgress computes the completion percentage of a path, 0 when no
// steps exist.
func PathProgress(db *gorm.DB, pathID uint) (int, error) {
	var total int64
	if err := db.Model(&models.LearningStepProgress{}).Where("path_id = ?", pathID).Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	var done int64
	if err := db.Model(&models.LearningStepProgress{}).
		Where("path_id = ? AND completed = ?", pathID, true).
		Count(&done).Error; err != nil {
		return 0, err
	}

	return int(math.Round(float64(done) / float64(total) * 100)), nil
}

// CompleteStep marks a step complete. Idempotent: re-completing a step
// keeps the original completion timestamp and changes nothing.
func CompleteStep(db *gorm.DB, stepID uint) (*models.LearningStepProgress, error) {
	var step models.LearningStepProgress
	if err := db.First(&step, stepID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStepNotFound
		}
		return nil, err
	}

	if step.Completed {
		return &step, nil
	}

	now := time.Now().UTC()
	step.Completed = true
	step.CompletedAt = &now
	if err := db.Save(&step).Error; err != nil {
		return nil, err
	}

	return &step, nil
}

// StepQuizOutcome is the result of the quiz-gated completion variant.
type StepQuizOutcome struct {
	Step      *models.LearningStepProgress
	Quiz      generator.QuizResult
	Completed bool
}

// QuizGatedStepCompletion generates a short quiz for the step's topic
// and commits the completion only when the supplied sub-score reaches
// the gate. Generation and the conditional commit are separate phases
// so a failed attempt hands the quiz back without re-generating on the
// commit side.
func QuizGatedStepCompletion(ctx context.Context, db *gorm.DB, gen generator.Generator, stepID uint, score *int) (*StepQuizOutcome, error) {
	var step models.LearningStepProgress
	if err := db.First(&step, stepID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStepNotFound
		}
		return nil, err
	}

	raw, err := gen.GenerateStepQuiz(ctx, step.StepName)
	if err != nil {
		return nil, err
	}
	quiz := generator.ParseQuiz(raw, MaxQuizQuestions)

	outcome := &StepQuizOutcome{Step: &step, Quiz: quiz}
	if score == nil {
		return outcome, ErrScoreNotProvided
	}
	if *score < StepPassingScore {
		return outcome, nil
	}

	completed, err := CompleteStep(db, stepID)
	if err != nil {
		return nil, err
	}
	outcome.Step = completed
	outcome.Completed = true
	return outcome, nil
}

// FinishSkill deletes the user's path for a skill once every step is
// complete. Steps go first to respect the foreign key.
func FinishSkill(db *gorm.DB, userID, skillID uint) error {
	var path models.LearningPath
	err := db.Where("user_id = ? AND skill_id = ?", userID, skillID).First(&path).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPathNotFound
		}
		return err
	}

	var incomplete int64
	if err := db.Model(&models.LearningStepProgress{}).
		Where("path_id = ? AND completed = ?", path.ID, false).
		Count(&incomplete).Error; err != nil {
		return err
	}
	if incomplete > 0 {
		return ErrStepsIncomplete
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return deletePathWithSteps(tx, &path)
	})
}

// DeleteSkill cascades across every user's path and steps referencing
// the skill, its cached questions, and finally the skill row itself.
// Destructive and shared: callers must gate this behind an admin
// check.
func DeleteSkill(db *gorm.DB, skillID uint) (string, error) {
	var skill models.Skill
	if err := db.First(&skill, skillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSkillNotFound
		}
		return "", err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var paths []models.LearningPath
		if err := tx.Where("skill_id = ?", skill.ID).Find(&paths).Error; err != nil {
			return err
		}
		for i := range paths {
			if err := deletePathWithSteps(tx, &paths[i]); err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("skill_id = ?", skill.ID).Delete(&models.Quiz{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&skill).Error
	})
	if err != nil {
		return "", err
	}

	return skill.Name, nil
}
