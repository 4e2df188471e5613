package services

import (
	"path/filepath"
	"testing"

	"github.com/rishikesh-e/SuggestiFy/backend/models"
	"github.com/rishikesh-e/SuggestiFy/backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "suggestify.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:         "testuser",
		Email:        email,
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

const testPathJSON = "```json\n" + `{
  "skill": "rust",
  "level": "Advanced",
  "topics": [
    {"name": "Ownership", "description": "Borrowing and lifetimes", "resources": ["https://doc.rust-lang.org/book"]},
    {"name": "Traits", "description": "Generics and trait bounds", "resources": []},
    {"name": "Concurrency", "description": "Threads and channels", "resources": []},
    {"name": "Async", "description": "Futures and executors", "resources": []},
    {"name": "Unsafe", "description": "Raw pointers and FFI", "resources": []}
  ]
}` + "\n```"

const testQuizJSON = `[
  {"question": "What is ownership?", "option1": "a", "option2": "b", "option3": "c", "option4": "d", "answer": "option1"},
  {"question": "What is a trait?", "option1": "a", "option2": "b", "option3": "c", "option4": "d", "answer": "option2"}
]`
