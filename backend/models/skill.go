package models

import "gorm.io/gorm"

// Skill names are stored normalized (lowercased, whitespace stripped)
// and are globally unique. Skills are auto-created on first reference.
type Skill struct {
	gorm.Model
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	Quizzes     []Quiz
}
