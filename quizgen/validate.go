package quizgen

import (
	"context"

	"github.com/fwojciec/wikiquiz"
)

// ValidationResult describes whether a URL can be turned into a quiz.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
	Cached  bool   `json:"cached"`
	QuizID  int64  `json:"quiz_id,omitempty"`
}

// ValidateURL checks a URL before the caller commits to full generation:
// shape check first, then the cache, then a real scrape to confirm the
// article is reachable. Nothing is generated or persisted, so a cold URL
// that later gets generated is fetched twice; that cost is accepted.
//
// Invalid and unreachable URLs are reported in the result, not as errors;
// only store failures return an error.
func (s *Service) ValidateURL(ctx context.Context, url string) (*ValidationResult, error) {
	if err := wikiquiz.ValidateArticleURL(url); err != nil {
		return &ValidationResult{
			Valid:   false,
			Message: "Invalid Wikipedia URL. Please provide a valid English Wikipedia article URL.",
		}, nil
	}

	quiz, err := s.quizzes.FindQuizByURL(ctx, url)
	if err == nil {
		return &ValidationResult{
			Valid:   true,
			Title:   quiz.Title,
			Message: "This article has already been processed.",
			Cached:  true,
			QuizID:  quiz.ID,
		}, nil
	}
	if wikiquiz.ErrorCode(err) != wikiquiz.ENOTFOUND {
		return nil, err
	}

	article, err := s.scraper.Scrape(ctx, url)
	if err != nil {
		return &ValidationResult{
			Valid:   false,
			Message: "Failed to fetch article: " + wikiquiz.ErrorMessage(err),
		}, nil
	}

	return &ValidationResult{
		Valid:   true,
		Title:   article.Title,
		Message: "Valid Wikipedia article. Ready to generate quiz.",
	}, nil
}
