package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikiquiz"
)

// Ensure LoggingGenerator implements wikiquiz.Generator.
var _ wikiquiz.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with operation logging.
type LoggingGenerator struct {
	next   wikiquiz.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next wikiquiz.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// GenerateQuestions delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) GenerateQuestions(ctx context.Context, article *wikiquiz.Article, count int) (questions []*wikiquiz.Question, err error) {
	defer func(begin time.Time) {
		var title string
		if article != nil {
			title = article.Title
		}
		g.logger.Info("generate questions",
			"title", title,
			"requested", count,
			"questions", len(questions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateQuestions(ctx, article, count)
}

// GenerateRelatedTopics delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) GenerateRelatedTopics(ctx context.Context, article *wikiquiz.Article) (topics []string) {
	defer func(begin time.Time) {
		var title string
		if article != nil {
			title = article.Title
		}
		g.logger.Info("generate related topics",
			"title", title,
			"topics", len(topics),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return g.next.GenerateRelatedTopics(ctx, article)
}
