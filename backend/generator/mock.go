package generator

import "context"

// MockGenerator returns canned responses for tests. Each func field is
// optional; unset funcs return the corresponding fixed string.
type MockGenerator struct {
	QuizResponse     string
	PathResponse     string
	StepQuizResponse string

	QuizFunc     func(ctx context.Context, skill string) (string, error)
	PathFunc     func(ctx context.Context, skill, level string) (string, error)
	StepQuizFunc func(ctx context.Context, topic string) (string, error)

	QuizCalls     int
	PathCalls     int
	StepQuizCalls int
}

func (m *MockGenerator) GenerateQuiz(ctx context.Context, skill string) (string, error) {
	m.QuizCalls++
	if m.QuizFunc != nil {
		return m.QuizFunc(ctx, skill)
	}
	return m.QuizResponse, nil
}

func (m *MockGenerator) GenerateLearningPath(ctx context.Context, skill, level string) (string, error) {
	m.PathCalls++
	if m.PathFunc != nil {
		return m.PathFunc(ctx, skill, level)
	}
	return m.PathResponse, nil
}

func (m *MockGenerator) GenerateStepQuiz(ctx context.Context, topic string) (string, error) {
	m.StepQuizCalls++
	if m.StepQuizFunc != nil {
		return m.StepQuizFunc(ctx, topic)
	}
	return m.StepQuizResponse, nil
}
