package generator

import (
	"encoding/json"
	"strings"
)

// Question is one multiple-choice question as produced by the
// generator.
type Question struct {
	Question string `json:"question"`
	Option1  string `json:"option1"`
	Option2  string `json:"option2"`
	Option3  string `json:"option3"`
	Option4  string `json:"option4"`
	Answer   string `json:"answer"`
}

// Topic is one entry of a learning-path document.
type Topic struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Resources   []string `json:"resources"`
}

// PathDocument is the structured learning-path payload.
type PathDocument struct {
	Skill  string  `json:"skill"`
	Level  string  `json:"level"`
	Topics []Topic `json:"topics"`
}

// QuizResult is the variant outcome of parsing generated quiz text:
// either Questions is populated (structured) or Degraded is true and
// Raw carries the unparseable text.
type QuizResult struct {
	Questions []Question
	Degraded  bool
	Raw       string
}

// PathResult is the variant outcome of parsing generated path text.
// In the degraded case Document has an empty topic list.
type PathResult struct {
	Document PathDocument
	Degraded bool
	Raw      string
}

// StripFence removes a surrounding markdown code fence (``` or
// ```json) from generated text.
func StripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return strings.Trim(s, "`")
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ParseQuiz parses generated quiz text into at most max questions.
// A top-level {"quiz": [...]} wrapper is tolerated. Unparseable text
// degrades to a single placeholder question carrying the raw content,
// so callers never see a hard failure for this path.
func ParseQuiz(raw string, max int) QuizResult {
	cleaned := StripFence(raw)

	var questions []Question
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		var wrapped struct {
			Quiz []Question `json:"quiz"`
		}
		if err := json.Unmarshal([]byte(cleaned), &wrapped); err != nil || wrapped.Quiz == nil {
			return QuizResult{
				Questions: []Question{{Question: cleaned}},
				Degraded:  true,
				Raw:       cleaned,
			}
		}
		questions = wrapped.Quiz
	}

	if max > 0 && len(questions) > max {
		questions = questions[:max]
	}
	return QuizResult{Questions: questions}
}

// ParsePath parses generated learning-path text. Unparseable text
// degrades to a document with an empty topic list.
func ParsePath(raw string) PathResult {
	cleaned := StripFence(raw)

	var doc PathDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return PathResult{
			Document: PathDocument{Topics: []Topic{}},
			Degraded: true,
			Raw:      cleaned,
		}
	}
	if doc.Topics == nil {
		doc.Topics = []Topic{}
	}
	return PathResult{Document: doc}
}
