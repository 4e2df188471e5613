package services

import "errors"

var (
	ErrSkillNotFound    = errors.New("skill not found")
	ErrStepNotFound     = errors.New("step not found")
	ErrPathNotFound     = errors.New("no active learning path found")
	ErrStepsIncomplete  = errors.New("not all steps are completed yet")
	ErrNoPassedQuiz     = errors.New("no passed quiz found for this skill")
	ErrScoreNotProvided = errors.New("score not provided")
)
