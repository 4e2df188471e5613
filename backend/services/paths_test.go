package services

import (
	"context"
	"testing"

	"github.com/rishikesh-e/SuggestiFy/backend/generator"
	"github.com/rishikesh-e/SuggestiFy/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuizCreatesPathAndSteps(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "submit@example.com")
	gen := &generator.MockGenerator{PathResponse: testPathJSON}

	result, err := SubmitQuiz(context.Background(), db, gen, user.ID, "Rust", 9)
	require.NoError(t, err)

	assert.Equal(t, "rust", result.Skill.Name)
	assert.Equal(t, LevelAdvanced, result.Level)
	assert.True(t, result.Passed)
	assert.False(t, result.Degraded)
	require.Len(t, result.Document.Topics, 5)

	var ledger []models.QuizResult
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&ledger).Error)
	require.Len(t, ledger, 1)
	assert.Equal(t, 9, ledger[0].Score)
	assert.True(t, ledger[0].Passed)
	assert.Equal(t, LevelAdvanced, ledger[0].Level)

	var steps []models.LearningStepProgress
	require.NoError(t, db.Where("path_id = ?", result.Path.ID).Order("id").Find(&steps).Error)
	require.Len(t, steps, 5)
	for i, step := range steps {
		assert.Equal(t, result.Document.Topics[i].Name, step.StepName)
		assert.False(t, step.Completed)
		assert.Nil(t, step.CompletedAt)
	}
}

func TestSubmitQuizReplacesExistingPath(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "replace@example.com")
	gen := &generator.MockGenerator{PathResponse: testPathJSON}

	first, err := SubmitQuiz(context.Background(), db, gen, user.ID, "rust", 9)
	require.NoError(t, err)

	// Second submission at a lower score destroys and replaces the
	// prior path wholesale.
	gen.PathResponse = `{"skill":"rust","level":"Beginner","topics":[
		{"name":"Syntax","description":"","resources":[]},
		{"name":"Cargo","description":"","resources":[]},
		{"name":"Testing","description":"","resources":[]}
	]}`
	second, err := SubmitQuiz(context.Background(), db, gen, user.ID, "rust", 4)
	require.NoError(t, err)
	assert.Equal(t, LevelBeginner, second.Level)
	assert.False(t, second.Passed)

	var pathCount int64
	require.NoError(t, db.Model(&models.LearningPath{}).Where("user_id = ?", user.ID).Count(&pathCount).Error)
	assert.EqualValues(t, 1, pathCount)

	var stepCount int64
	require.NoError(t, db.Model(&models.LearningStepProgress{}).Where("path_id = ?", second.Path.ID).Count(&stepCount).Error)
	assert.EqualValues(t, 3, stepCount)

	var orphaned int64
	require.NoError(t, db.Model(&models.LearningStepProgress{}).Where("path_id = ?", first.Path.ID).Count(&orphaned).Error)
	assert.EqualValues(t, 0, orphaned)

	// The ledger keeps both attempts.
	var ledgerCount int64
	require.NoError(t, db.Model(&models.QuizResult{}).Where("user_id = ?", user.ID).Count(&ledgerCount).Error)
	assert.EqualValues(t, 2, ledgerCount)
}

func TestSubmitQuizDegradedGenerator(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "degraded@example.com")
	gen := &generator.MockGenerator{PathResponse: "I am not JSON"}

	result, err := SubmitQuiz(context.Background(), db, gen, user.ID, "rust", 7)
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Empty(t, result.Document.Topics)

	var stepCount int64
	require.NoError(t, db.Model(&models.LearningStepProgress{}).Where("path_id = ?", result.Path.ID).Count(&stepCount).Error)
	assert.EqualValues(t, 0, stepCount)

	// The ledger row still persists; the degraded document is not an
	// error.
	var ledgerCount int64
	require.NoError(t, db.Model(&models.QuizResult{}).Where("user_id = ?", user.ID).Count(&ledgerCount).Error)
	assert.EqualValues(t, 1, ledgerCount)
}

func TestPathProgress(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "progress@example.com")
	gen := &generator.MockGenerator{PathResponse: `{"skill":"go","level":"Beginner","topics":[
		{"name":"A","description":"","resources":[]},
		{"name":"B","description":"","resources":[]},
		{"name":"C","description":"","resources":[]}
	]}`}

	result, err := SubmitQuiz(context.Background(), db, gen, user.ID, "go", 3)
	require.NoError(t, err)

	progress, err := PathProgress(db, result.Path.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress)

	var steps []models.LearningStepProgress
	require.NoError(t, db.Where("path_id = ?", result.Path.ID).Order("id").Find(&steps).Error)
	require.Len(t, steps, 3)

	_, err = CompleteStep(db, steps[0].ID)
	require.NoError(t, err)

	progress, err = PathProgress(db, result.Path.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, progress)
}

func TestPathProgressNoSteps(t *testing.T) {
	db := setupTestDB(t)

	// Unknown path id has zero steps: progress is 0, never a division
	// by zero.
	progress, err := PathProgress(db, 12345)
	require.NoError(t, err)
	assert.Equal(t, 0, progress)
}

func TestCompleteStepIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "idem@example.com")
	gen := &generator.MockGenerator{PathResponse: testPathJSON}

	result, err := SubmitQuiz(context.Background(), db, gen, user.ID, "rust", 9)
	require.NoError(t, err)

	var step models.LearningStepProgress
	require.NoError(t, db.Where("path_id = ?", result.Path.ID).First(&step).Error)

	first, err := CompleteStep(db, step.ID)
	require.NoError(t, err)
	assert.True(t, first.Completed)
	require.NotNil(t, first.CompletedAt)

	second, err := CompleteStep(db, step.ID)
	require.NoError(t, err)
	assert.True(t, second.Completed)
	require.NotNil(t, second.CompletedAt)
	assert.Equal(t, *first.CompletedAt, *second.CompletedAt)
}

func TestCompleteStepNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := CompleteStep(db, 99999)
	assert.ErrorIs(t, err, ErrStepNotFound)
}

func TestQuizGatedStepCompletion(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "gated@example.com")
	gen := &generator.MockGenerator{
		PathResponse:     testPathJSON,
		StepQuizResponse: testQuizJSON,
	}

	result, err := SubmitQuiz(context.Background(), db, gen, user.ID, "rust", 9)
	require.NoError(t, err)

	var step models.LearningStepProgress
	require.NoError(t, db.Where("path_id = ?", result.Path.ID).First(&step).Error)

	// Missing score: the quiz is handed back, nothing committed.
	outcome, err := QuizGatedStepCompletion(context.Background(), db, gen, step.ID, nil)
	assert.ErrorIs(t, err, ErrScoreNotProvided)
	require.NotNil(t, outcome)
	assert.Len(t, outcome.Quiz.Questions, 2)
	assert.False(t, outcome.Completed)

	// Failing score: quiz returned, step stays incomplete.
	low := 5
	outcome, err = QuizGatedStepCompletion(context.Background(), db, gen, step.ID, &low)
	require.NoError(t, err)
	assert.False(t, outcome.Completed)

	var reloaded models.LearningStepProgress
	require.NoError(t, db.First(&reloaded, step.ID).Error)
	assert.False(t, reloaded.Completed)

	// Passing score commits the completion.
	high := 7
	outcome, err = QuizGatedStepCompletion(context.Background(), db, gen, step.ID, &high)
	require.NoError(t, err)
	assert.True(t, outcome.Completed)

	require.NoError(t, db.First(&reloaded, step.ID).Error)
	assert.True(t, reloaded.Completed)
}

func TestFinishSkill(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "finish@example.com")
	gen := &generator.MockGenerator{PathResponse: testPathJSON}

	result, err := SubmitQuiz(context.Background(), db, gen, user.ID, "rust", 9)
	require.NoError(t, err)

	// Incomplete steps block the finish.
	err = FinishSkill(db, user.ID, result.Skill.ID)
	assert.ErrorIs(t, err, ErrStepsIncomplete)

	var steps []models.LearningStepProgress
	require.NoError(t, db.Where("path_id = ?", result.Path.ID).Find(&steps).Error)
	for _, step := range steps {
		_, err := CompleteStep(db, step.ID)
		require.NoError(t, err)
	}

	require.NoError(t, FinishSkill(db, user.ID, result.Skill.ID))

	var pathCount, stepCount int64
	require.NoError(t, db.Model(&models.LearningPath{}).Where("user_id = ?", user.ID).Count(&pathCount).Error)
	require.NoError(t, db.Model(&models.LearningStepProgress{}).Where("path_id = ?", result.Path.ID).Count(&stepCount).Error)
	assert.EqualValues(t, 0, pathCount)
	assert.EqualValues(t, 0, stepCount)

	// Finishing again reports the missing path.
	err = FinishSkill(db, user.ID, result.Skill.ID)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestRegeneratePath(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "regen@example.com")
	gen := &generator.MockGenerator{PathResponse: testPathJSON}

	skill, err := GetOrCreateSkill(db, "rust")
	require.NoError(t, err)

	// No passed attempt yet.
	_, err = RegeneratePath(context.Background(), db, gen, user.ID, skill.ID)
	assert.ErrorIs(t, err, ErrNoPassedQuiz)

	// A failed attempt does not qualify either.
	_, err = SubmitQuiz(context.Background(), db, gen, user.ID, "rust", 3)
	require.NoError(t, err)
	_, err = RegeneratePath(context.Background(), db, gen, user.ID, skill.ID)
	assert.ErrorIs(t, err, ErrNoPassedQuiz)

	_, err = SubmitQuiz(context.Background(), db, gen, user.ID, "rust", 9)
	require.NoError(t, err)

	path, err := RegeneratePath(context.Background(), db, gen, user.ID, skill.ID)
	require.NoError(t, err)
	assert.Equal(t, LevelAdvanced, path.Level)

	var pathCount int64
	require.NoError(t, db.Model(&models.LearningPath{}).Where("user_id = ?", user.ID).Count(&pathCount).Error)
	assert.EqualValues(t, 1, pathCount)
}

func TestDeleteSkillCascades(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	gen := &generator.MockGenerator{PathResponse: testPathJSON, QuizResponse: testQuizJSON}

	first, err := SubmitQuiz(context.Background(), db, gen, alice.ID, "rust", 9)
	require.NoError(t, err)
	_, err = SubmitQuiz(context.Background(), db, gen, bob.ID, "rust", 7)
	require.NoError(t, err)

	_, _, err = GetOrGenerateQuiz(context.Background(), db, gen, first.Skill)
	require.NoError(t, err)

	name, err := DeleteSkill(db, first.Skill.ID)
	require.NoError(t, err)
	assert.Equal(t, "rust", name)

	var paths, steps, quizzes, skills int64
	require.NoError(t, db.Model(&models.LearningPath{}).Where("skill_id = ?", first.Skill.ID).Count(&paths).Error)
	require.NoError(t, db.Model(&models.LearningStepProgress{}).Count(&steps).Error)
	require.NoError(t, db.Model(&models.Quiz{}).Where("skill_id = ?", first.Skill.ID).Count(&quizzes).Error)
	require.NoError(t, db.Model(&models.Skill{}).Where("id = ?", first.Skill.ID).Count(&skills).Error)
	assert.EqualValues(t, 0, paths)
	assert.EqualValues(t, 0, steps)
	assert.EqualValues(t, 0, quizzes)
	assert.EqualValues(t, 0, skills)

	_, err = DeleteSkill(db, first.Skill.ID)
	assert.ErrorIs(t, err, ErrSkillNotFound)
}
