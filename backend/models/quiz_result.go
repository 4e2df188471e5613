package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult is an append-only ledger entry. Rows are never updated or
// deleted after insert.
type QuizResult struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	SkillID uint   `gorm:"index;not null"`
	Score   int    `gorm:"not null"`
	Passed  bool   `gorm:"not null"`
	Level   string `gorm:"size:20;not null"`
	TakenAt time.Time
	Skill   Skill
}
