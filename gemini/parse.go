package gemini

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/fwojciec/wikiquiz"
)

// questionPayload is the wire shape of one question candidate in the model
// response.
type questionPayload struct {
	Question         string   `json:"question"`
	Options          []string `json:"options"`
	Answer           string   `json:"answer"`
	Difficulty       string   `json:"difficulty"`
	Explanation      string   `json:"explanation"`
	SectionReference string   `json:"section_reference"`
}

// ParseQuestions extracts question candidates from raw model output.
// Candidates that fail validation are silently dropped; the accepted list is
// truncated to count. An output with no parseable JSON object is an error.
func ParseQuestions(text string, count int) ([]*wikiquiz.Question, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Questions []questionPayload `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("invalid question JSON: %w", err)
	}

	var questions []*wikiquiz.Question
	for _, q := range payload.Questions {
		if q.Question == "" || len(q.Options) != 4 {
			continue
		}
		// The model occasionally invents an answer that matches none of
		// its own options; such candidates are unusable.
		if !slices.Contains(q.Options, q.Answer) {
			continue
		}
		difficulty := q.Difficulty
		if difficulty == "" {
			difficulty = "medium"
		}
		sectionRef := q.SectionReference
		if sectionRef == "" {
			sectionRef = "General"
		}
		questions = append(questions, &wikiquiz.Question{
			QuestionText:     q.Question,
			Options:          q.Options,
			CorrectAnswer:    q.Answer,
			Difficulty:       difficulty,
			Explanation:      q.Explanation,
			SectionReference: sectionRef,
		})
		if len(questions) == count {
			break
		}
	}

	return questions, nil
}

// ParseTopics extracts the related-topics list from raw model output,
// capped at maxTopics.
func ParseTopics(text string) ([]string, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("invalid topics JSON: %w", err)
	}

	topics := payload.Topics
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics, nil
}

// ExtractJSONObject returns the first balanced JSON object substring of
// text. Models frequently wrap their JSON in prose or markdown fences, so
// everything outside the outermost braces is ignored. Brace depth is
// tracked outside string literals only.
func ExtractJSONObject(text string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			if start >= 0 {
				inString = !inString
			}
		case '{':
			if inString {
				continue
			}
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if inString || start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("no JSON object found in model response")
}
