package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator implements Generator using the Google Gemini SDK.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	if model == "" {
		model = "gemini-2.0-flash-lite"
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateQuiz(ctx context.Context, skill string) (string, error) {
	prompt := fmt.Sprintf(`Generate a structured JSON array containing 10 basic-level multiple-choice questions about %s.
Each JSON object must follow this exact format:
{
  "question": "Question text here",
  "option1": "Option text here",
  "option2": "Option text here",
  "option3": "Option text here",
  "option4": "Option text here",
  "answer": "The correct option number (e.g., option2)"
}
Requirements:
- Exactly 10 objects in the array.
- Ensure questions are beginner-friendly.
- Options must be concise and plausible.
- "answer" should exactly match one of the option keys (e.g., "option1", "option2", etc.).
- Output only valid JSON without any additional commentary.`, skill)

	return g.generate(ctx, prompt)
}

func (g *GeminiGenerator) GenerateLearningPath(ctx context.Context, skill, level string) (string, error) {
	prompt := fmt.Sprintf(`Generate a structured JSON object representing a complete learning path for %s.
Only include topics for the '%s' level.
The JSON must follow this format:
{
  "skill": "%s",
  "level": "%s",
  "topics": [
    { "name": "Topic Name", "description": "Brief description", "resources": ["Resource 1 URL", "Resource 2 URL"] }
  ]
}
Include at least 5 topics.
Ensure resources are free, reputable, and up to date.
Keep descriptions concise and clear.
Output only valid JSON without extra commentary.`, skill, level, skill, level)

	return g.generate(ctx, prompt)
}

func (g *GeminiGenerator) GenerateStepQuiz(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf(`Generate a structured JSON array containing 5 multiple-choice questions that check understanding of the topic "%s".
Each JSON object must follow this exact format:
{
  "question": "Question text here",
  "option1": "Option text here",
  "option2": "Option text here",
  "option3": "Option text here",
  "option4": "Option text here",
  "answer": "The correct option number (e.g., option2)"
}
Output only valid JSON without any additional commentary.`, topic)

	return g.generate(ctx, prompt)
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	return result.Text(), nil
}
