package services

import (
	"errors"
	"strings"
	"unicode"

	"github.com/rishikesh-e/SuggestiFy/backend/models"
	"gorm.io/gorm"
)

// NormalizeSkillName lowercases the raw name and strips all
// whitespace, so " Python ", "python" and "PYTHON" resolve to the
// same skill row.
func NormalizeSkillName(raw string) string {
	lowered := strings.ToLower(raw)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, lowered)
}

// GetOrCreateSkill resolves a skill by normalized name, creating it on
// first reference. Two concurrent creators of the same new name are
// serialized by the unique index on skills.name: the loser catches the
// duplicate-key error and re-reads the winner's row.
func GetOrCreateSkill(db *gorm.DB, rawName string) (*models.Skill, error) {
	name := NormalizeSkillName(rawName)

	var skill models.Skill
	err := db.Where("name = ?", name).First(&skill).Error
	if err == nil {
		return &skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	skill = models.Skill{
		Name:        name,
		Description: "Auto-generated skill for " + name,
	}
	if err := db.Create(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("name = ?", name).First(&skill).Error; err != nil {
				return nil, err
			}
			return &skill, nil
		}
		return nil, err
	}

	return &skill, nil
}
