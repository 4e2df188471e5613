package controllers

import (
	"errors"

	"github.com/rishikesh-e/SuggestiFy/backend/services"
	"github.com/rishikesh-e/SuggestiFy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// serviceError translates services-layer errors into the HTTP error
// taxonomy: unknown ids are 404, violated preconditions 400, lost
// uniqueness races 409, everything else a generic 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrStepNotFound),
		errors.Is(err, services.ErrPathNotFound),
		errors.Is(err, services.ErrSkillNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrStepsIncomplete),
		errors.Is(err, services.ErrNoPassedQuiz),
		errors.Is(err, services.ErrScoreNotProvided):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return utils.Conflict(c, "Conflicting concurrent update, please retry")
	default:
		return utils.InternalServerError(c, err.Error())
	}
}
