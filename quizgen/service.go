// Package quizgen orchestrates the quiz generation pipeline: cache lookup,
// article scraping, question and topic generation, and persistence.
package quizgen

import (
	"context"
	"time"

	"github.com/fwojciec/wikiquiz"
	"github.com/fwojciec/wikiquiz/metrics"
	"golang.org/x/sync/singleflight"
)

// Service drives the scrape -> generate -> persist pipeline. The persistent
// store is the single source of truth for "already processed": there is no
// in-process cache of quiz content.
type Service struct {
	scraper   wikiquiz.Scraper
	generator wikiquiz.Generator
	quizzes   wikiquiz.QuizService

	questionCount int

	// group serializes concurrent first-time requests for the same URL
	// within this process. Across processes the store's unique URL
	// constraint decides the race and the loser serves the winner's record.
	group singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithQuestionCount sets the number of questions requested when the caller
// does not specify one. Defaults to wikiquiz.DefaultQuestionCount.
func WithQuestionCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.questionCount = n
		}
	}
}

// NewService creates a new Service.
func NewService(scraper wikiquiz.Scraper, generator wikiquiz.Generator, quizzes wikiquiz.QuizService, opts ...Option) *Service {
	s := &Service{
		scraper:       scraper,
		generator:     generator,
		quizzes:       quizzes,
		questionCount: wikiquiz.DefaultQuestionCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateQuiz returns the quiz for url, generating and persisting it on
// first request. Repeat requests for the same URL are served from the store
// without scraping or generating. numQuestions <= 0 selects the default.
func (s *Service) GenerateQuiz(ctx context.Context, url string, numQuestions int) (*wikiquiz.Quiz, error) {
	if err := wikiquiz.ValidateArticleURL(url); err != nil {
		return nil, err
	}
	if numQuestions <= 0 {
		numQuestions = s.questionCount
	}

	quiz, err := s.quizzes.FindQuizByURL(ctx, url)
	if err == nil {
		metrics.QuizRequestsTotal.WithLabelValues("cached").Inc()
		return quiz, nil
	}
	if wikiquiz.ErrorCode(err) != wikiquiz.ENOTFOUND {
		return nil, err
	}

	v, err, _ := s.group.Do(url, func() (any, error) {
		return s.generate(ctx, url, numQuestions)
	})
	if err != nil {
		metrics.QuizRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	return v.(*wikiquiz.Quiz), nil
}

// generate handles a cache miss end to end. All-or-nothing: any scrape or
// question generation failure leaves no partial record behind.
func (s *Service) generate(ctx context.Context, url string, numQuestions int) (*wikiquiz.Quiz, error) {
	// A request coalesced behind an identical one may arrive here after
	// the leader has already persisted; serve the stored record.
	if quiz, err := s.quizzes.FindQuizByURL(ctx, url); err == nil {
		metrics.QuizRequestsTotal.WithLabelValues("cached").Inc()
		return quiz, nil
	}

	begin := time.Now()

	article, err := s.scraper.Scrape(ctx, url)
	if err != nil {
		metrics.ArticleScrapesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.ArticleScrapesTotal.WithLabelValues("ok").Inc()

	questions, err := s.generator.GenerateQuestions(ctx, article, numQuestions)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, wikiquiz.Errorf(wikiquiz.EINTERNAL, "generation produced no usable questions for %q", url)
	}

	topics := s.generator.GenerateRelatedTopics(ctx, article)

	quiz := &wikiquiz.Quiz{
		URL:           url,
		Title:         article.Title,
		Summary:       article.Summary,
		KeyEntities:   article.KeyEntities,
		Sections:      article.Sections,
		RelatedTopics: topics,
		RawHTML:       article.RawHTML,
	}

	if err := s.quizzes.CreateQuiz(ctx, quiz, questions); err != nil {
		if wikiquiz.ErrorCode(err) == wikiquiz.ECONFLICT {
			// Another process persisted this URL first; its record is
			// the canonical one.
			return s.quizzes.FindQuizByURL(ctx, url)
		}
		return nil, err
	}

	metrics.QuizRequestsTotal.WithLabelValues("generated").Inc()
	metrics.GenerationDuration.Observe(time.Since(begin).Seconds())

	return quiz, nil
}

// QuizByID retrieves a stored quiz with its questions.
func (s *Service) QuizByID(ctx context.Context, id int64) (*wikiquiz.Quiz, error) {
	return s.quizzes.FindQuizByID(ctx, id)
}

// Quizzes lists summaries of all stored quizzes, newest first.
func (s *Service) Quizzes(ctx context.Context) ([]*wikiquiz.QuizSummary, error) {
	return s.quizzes.ListQuizzes(ctx)
}
