package mock

import (
	"context"

	"github.com/fwojciec/wikiquiz"
)

var _ wikiquiz.Generator = (*Generator)(nil)

// Generator is a mock implementation of wikiquiz.Generator.
type Generator struct {
	GenerateQuestionsFn     func(ctx context.Context, article *wikiquiz.Article, count int) ([]*wikiquiz.Question, error)
	GenerateRelatedTopicsFn func(ctx context.Context, article *wikiquiz.Article) []string
}

func (g *Generator) GenerateQuestions(ctx context.Context, article *wikiquiz.Article, count int) ([]*wikiquiz.Question, error) {
	return g.GenerateQuestionsFn(ctx, article, count)
}

func (g *Generator) GenerateRelatedTopics(ctx context.Context, article *wikiquiz.Article) []string {
	return g.GenerateRelatedTopicsFn(ctx, article)
}
