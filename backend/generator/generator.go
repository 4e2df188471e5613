package generator

import "context"

// Generator is the external content-generation collaborator. All three
// calls return raw text that is expected to be JSON, possibly wrapped
// in a markdown code fence; callers go through the parse helpers in
// this package and must handle the degraded case.
type Generator interface {
	// GenerateQuiz produces a JSON array of up to 10 multiple-choice
	// questions for the skill.
	GenerateQuiz(ctx context.Context, skill string) (string, error)

	// GenerateLearningPath produces a structured learning-path document
	// for the skill at the given level (Beginner/Intermediate/Advanced).
	GenerateLearningPath(ctx context.Context, skill, level string) (string, error)

	// GenerateStepQuiz produces a short quiz for a single step topic,
	// used by the quiz-gated step completion flow.
	GenerateStepQuiz(ctx context.Context, topic string) (string, error)
}
