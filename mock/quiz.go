package mock

import (
	"context"

	"github.com/fwojciec/wikiquiz"
)

var _ wikiquiz.QuizService = (*QuizService)(nil)

// QuizService is a mock implementation of wikiquiz.QuizService.
type QuizService struct {
	CreateQuizFn    func(ctx context.Context, quiz *wikiquiz.Quiz, questions []*wikiquiz.Question) error
	FindQuizByIDFn  func(ctx context.Context, id int64) (*wikiquiz.Quiz, error)
	FindQuizByURLFn func(ctx context.Context, url string) (*wikiquiz.Quiz, error)
	ListQuizzesFn   func(ctx context.Context) ([]*wikiquiz.QuizSummary, error)
	DeleteQuizFn    func(ctx context.Context, id int64) error
}

func (s *QuizService) CreateQuiz(ctx context.Context, quiz *wikiquiz.Quiz, questions []*wikiquiz.Question) error {
	return s.CreateQuizFn(ctx, quiz, questions)
}

func (s *QuizService) FindQuizByID(ctx context.Context, id int64) (*wikiquiz.Quiz, error) {
	return s.FindQuizByIDFn(ctx, id)
}

func (s *QuizService) FindQuizByURL(ctx context.Context, url string) (*wikiquiz.Quiz, error) {
	return s.FindQuizByURLFn(ctx, url)
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]*wikiquiz.QuizSummary, error) {
	return s.ListQuizzesFn(ctx)
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id int64) error {
	return s.DeleteQuizFn(ctx, id)
}
