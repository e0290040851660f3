// Package gemini implements the quiz generation client using Google Gemini.
package gemini

import (
	"context"
	"time"

	"github.com/fwojciec/wikiquiz"
	"google.golang.org/genai"
)

// Ensure Generator implements wikiquiz.Generator at compile time.
var _ wikiquiz.Generator = (*Generator)(nil)

// Generator produces quiz questions and related topics using Gemini.
type Generator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel overrides the default generation model.
func WithModel(model string) Option {
	return func(g *Generator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithTimeout bounds each generation call.
// Defaults to wikiquiz.DefaultGenerateTimeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
	g := &Generator{
		client:  client,
		model:   wikiquiz.DefaultModel,
		timeout: wikiquiz.DefaultGenerateTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateQuestions asks the model for count questions about the article.
// Candidates without exactly 4 options, with empty question text, or whose
// answer is not one of its own options are dropped before returning.
// An unparseable model response is a hard EINTERNAL failure.
func (g *Generator) GenerateQuestions(ctx context.Context, article *wikiquiz.Article, count int) ([]*wikiquiz.Question, error) {
	if article == nil {
		return nil, wikiquiz.Errorf(wikiquiz.EINVALID, "article required")
	}
	if count <= 0 {
		count = wikiquiz.DefaultQuestionCount
	}

	prompt := BuildQuizPrompt(article.Title, article.ContentText, article.Sections, count)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, wikiquiz.Errorf(wikiquiz.EINTERNAL, "failed to generate quiz: %v", err)
	}

	questions, err := ParseQuestions(text, count)
	if err != nil {
		return nil, wikiquiz.Errorf(wikiquiz.EINTERNAL, "failed to generate quiz: %v", err)
	}

	return questions, nil
}

// GenerateRelatedTopics asks the model for further-reading topics. Every
// failure mode recovers to the deterministic fallback list; this method
// never reports an error.
func (g *Generator) GenerateRelatedTopics(ctx context.Context, article *wikiquiz.Article) []string {
	if article == nil {
		return FallbackTopics("")
	}

	prompt := BuildTopicsPrompt(article.Title, article.ContentText, article.Sections)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return FallbackTopics(article.Title)
	}

	topics, err := ParseTopics(text)
	if err != nil || len(topics) == 0 {
		return FallbackTopics(article.Title)
	}

	return topics
}

// generate sends a single prompt to the model and returns its raw text.
func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", wikiquiz.Errorf(wikiquiz.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}

// FallbackTopics returns the deterministic related-topics list used when
// topic generation fails for any reason.
func FallbackTopics(title string) []string {
	return []string{
		title + " history",
		"Related figures to " + title,
		"Historical context",
		"Modern impact",
	}
}
