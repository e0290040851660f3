// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikiquiz"
)

// Ensure LoggingScraper implements wikiquiz.Scraper.
var _ wikiquiz.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with operation logging.
type LoggingScraper struct {
	next   wikiquiz.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next wikiquiz.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (article *wikiquiz.Article, err error) {
	defer func(begin time.Time) {
		var title string
		var sections, chars int
		if article != nil {
			title = article.Title
			sections = len(article.Sections)
			chars = len(article.ContentText)
		}
		s.logger.Info("scrape",
			"url", url,
			"title", title,
			"sections", sections,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
