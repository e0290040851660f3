package gemini

import (
	"fmt"
	"strings"
)

// Prompt context limits. Question generation sees most of the extracted
// text; topic suggestions only need a short slice of it.
const (
	maxQuizContentChars   = 12000
	maxTopicsContentChars = 3000
	maxTopicsSections     = 5
	maxTopics             = 8
)

// BuildQuizPrompt builds the question-generation prompt. Content is
// truncated to maxQuizContentChars.
func BuildQuizPrompt(title, content string, sections []string, count int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are an expert quiz creator. Based on the following Wikipedia article, create %d high-quality quiz questions.\n\n", count)
	fmt.Fprintf(&sb, "Article Title: %s\n\n", title)
	fmt.Fprintf(&sb, "Available Sections: %s\n\n", strings.Join(sections, ", "))
	fmt.Fprintf(&sb, "Article Content:\n%s\n\n", truncate(content, maxQuizContentChars))

	sb.WriteString(`CRITICAL INSTRUCTIONS:
1. Base ALL questions STRICTLY on the provided article content - DO NOT use external knowledge
2. Create questions with varying difficulty levels (easy, medium, hard)
3. Each question must have EXACTLY 4 options (A, B, C, D format)
4. Ensure questions cover different sections of the article
5. Make explanations reference specific parts of the article
6. Ensure factual accuracy - verify answers are in the text
7. Avoid ambiguous questions

`)
	fmt.Fprintf(&sb, "Generate EXACTLY %d questions in the following JSON format:\n", count)
	sb.WriteString(`{
  "questions": [
    {
      "question": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "answer": "Correct option text",
      "difficulty": "easy|medium|hard",
      "explanation": "Brief explanation referencing the article",
      "section_reference": "Section name from the article"
    }
  ]
}

Return ONLY valid JSON, no additional text.`)

	return sb.String()
}

// BuildTopicsPrompt builds the related-topics prompt. Content is truncated
// to maxTopicsContentChars and sections limited to the first
// maxTopicsSections entries.
func BuildTopicsPrompt(title, content string, sections []string) string {
	if len(sections) > maxTopicsSections {
		sections = sections[:maxTopicsSections]
	}

	var sb strings.Builder

	sb.WriteString("Based on the following Wikipedia article, suggest 5-8 related Wikipedia topics that would be interesting for further reading.\n\n")
	fmt.Fprintf(&sb, "Article Title: %s\n", title)
	fmt.Fprintf(&sb, "Sections: %s\n", strings.Join(sections, ", "))
	fmt.Fprintf(&sb, "Content Summary: %s\n\n", truncate(content, maxTopicsContentChars))

	sb.WriteString(`INSTRUCTIONS:
1. Suggest topics that are directly related to the article
2. Topics should be specific enough to have their own Wikipedia pages
3. Provide diverse topics covering different aspects mentioned in the article
4. Return ONLY a JSON array of topic names

Format:
{
  "topics": ["Topic 1", "Topic 2", "Topic 3", "Topic 4", "Topic 5"]
}

Return ONLY valid JSON, no additional text.`)

	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
