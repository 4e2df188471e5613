package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LearningPath is the user's single active curriculum for a skill.
// The unique index on UserID backs the one-active-path-per-user
// invariant; the manager replaces paths wholesale, never in place.
type LearningPath struct {
	gorm.Model
	UserID      uint           `gorm:"uniqueIndex;not null"`
	SkillID     uint           `gorm:"index;not null"`
	Level       string         `gorm:"size:20;not null"`
	PathData    datatypes.JSON `gorm:"not null"`
	GeneratedAt time.Time
	Skill       Skill
	Steps       []LearningStepProgress `gorm:"foreignKey:PathID"`
}

// LearningStepProgress mirrors one topic of its path's PathData, in
// topic order. Deleted en masse with the parent path.
type LearningStepProgress struct {
	gorm.Model
	PathID      uint   `gorm:"index;not null"`
	StepName    string `gorm:"size:200;not null"`
	Completed   bool   `gorm:"default:false"`
	CompletedAt *time.Time
}

func (s *LearningStepProgress) ToResponse() map[string]interface{} {
	return map[string]interface{}{
		"id":        s.ID,
		"name":      s.StepName,
		"completed": s.Completed,
	}
}
