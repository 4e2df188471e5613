package services

// Level labels derived from quiz scores.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// PassingScore is the minimum score counted as a pass.
const PassingScore = 6

// StepPassingScore gates the quiz-backed step completion flow.
const StepPassingScore = 7

// Classify maps a quiz score to pass/fail and a proficiency level.
// The pass threshold and the Advanced boundary are not the same:
// scores 6-8 pass but stay Intermediate, 9+ is Advanced.
func Classify(score int) (bool, string) {
	passed := score >= PassingScore

	var level string
	switch {
	case score < PassingScore:
		level = LevelBeginner
	case score <= 8:
		level = LevelIntermediate
	default:
		level = LevelAdvanced
	}

	return passed, level
}
