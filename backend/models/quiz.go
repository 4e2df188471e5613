package models

import "gorm.io/gorm"

// Quiz is one multiple-choice question for a skill. Questions are
// generated once per skill and reused across users; they are never
// regenerated while any question exists for the skill.
type Quiz struct {
	gorm.Model
	SkillID  uint   `gorm:"index;not null"`
	Question string `gorm:"type:text;not null"`
	Option1  string
	Option2  string
	Option3  string
	Option4  string
	Answer   string // matches an option key, e.g. "option2"
}

func (q *Quiz) ToResponse() map[string]interface{} {
	return map[string]interface{}{
		"id":       q.ID,
		"question": q.Question,
		"option1":  q.Option1,
		"option2":  q.Option2,
		"option3":  q.Option3,
		"option4":  q.Option4,
		"answer":   q.Answer,
	}
}
