package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/wikiquiz"
	"github.com/fwojciec/wikiquiz/mock"
	"github.com/fwojciec/wikiquiz/quizgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleURL = "https://en.wikipedia.org/wiki/Ada_Lovelace"

func testDeps(store wikiquiz.QuizService) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Config:  wikiquiz.DefaultConfig(),
		Quizzes: store,
	}, stdout, stderr
}

func storedQuiz() *wikiquiz.Quiz {
	return &wikiquiz.Quiz{
		ID:            1,
		URL:           articleURL,
		Title:         "Ada Lovelace",
		Summary:       "Ada Lovelace was an English mathematician.",
		RelatedTopics: []string{"Charles Babbage"},
		CreatedAt:     time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		Questions: []*wikiquiz.Question{
			{
				ID:            1,
				QuizID:        1,
				QuestionText:  "Who was Ada Lovelace?",
				Options:       []string{"A mathematician", "A painter", "A composer", "A chemist"},
				CorrectAnswer: "A mathematician",
				Difficulty:    "easy",
				Explanation:   "She worked on the Analytical Engine.",
			},
		},
	}
}

func TestListCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints quiz summaries", func(t *testing.T) {
		t.Parallel()

		store := &mock.QuizService{
			ListQuizzesFn: func(context.Context) ([]*wikiquiz.QuizSummary, error) {
				return []*wikiquiz.QuizSummary{
					{ID: 1, URL: articleURL, Title: "Ada Lovelace", CreatedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), QuestionCount: 8},
				}, nil
			},
		}
		deps, stdout, stderr := testDeps(store)

		err := (&ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Ada Lovelace")
		assert.Contains(t, stdout.String(), "8 questions")
		assert.Contains(t, stdout.String(), "2026-05-01")
		assert.Empty(t, stderr.String())
	})

	t.Run("prints hint when empty", func(t *testing.T) {
		t.Parallel()

		store := &mock.QuizService{
			ListQuizzesFn: func(context.Context) ([]*wikiquiz.QuizSummary, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := testDeps(store)

		err := (&ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No quizzes found")
	})
}

func TestShowCmd(t *testing.T) {
	t.Parallel()

	t.Run("renders stored quiz", func(t *testing.T) {
		t.Parallel()

		store := &mock.QuizService{
			FindQuizByIDFn: func(_ context.Context, id int64) (*wikiquiz.Quiz, error) {
				require.Equal(t, int64(1), id)
				return storedQuiz(), nil
			},
		}
		deps, stdout, _ := testDeps(store)

		err := (&ShowCmd{ID: 1}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Ada Lovelace (quiz #1)")
		assert.Contains(t, out, "Who was Ada Lovelace?")
		assert.Contains(t, out, "* a) A mathematician")
		assert.Contains(t, out, "Related topics: Charles Babbage")
	})

	t.Run("renders JSON with --json", func(t *testing.T) {
		t.Parallel()

		store := &mock.QuizService{
			FindQuizByIDFn: func(context.Context, int64) (*wikiquiz.Quiz, error) {
				return storedQuiz(), nil
			},
		}
		deps, stdout, _ := testDeps(store)

		err := (&ShowCmd{ID: 1, JSON: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"title": "Ada Lovelace"`)
		assert.Contains(t, stdout.String(), `"quiz": [`)
	})

	t.Run("reports missing quiz", func(t *testing.T) {
		t.Parallel()

		store := &mock.QuizService{
			FindQuizByIDFn: func(context.Context, int64) (*wikiquiz.Quiz, error) {
				return nil, wikiquiz.Errorf(wikiquiz.ENOTFOUND, "quiz not found")
			},
		}
		deps, _, stderr := testDeps(store)

		err := (&ShowCmd{ID: 42}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "quiz 42 not found")
	})
}

func TestDeleteCmd(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		deleted := false
		store := &mock.QuizService{
			FindQuizByIDFn: func(context.Context, int64) (*wikiquiz.Quiz, error) {
				return storedQuiz(), nil
			},
			DeleteQuizFn: func(context.Context, int64) error {
				deleted = true
				return nil
			},
		}
		deps, stdout, _ := testDeps(store)

		err := (&DeleteCmd{ID: 1}).Run(deps)

		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Contains(t, stdout.String(), "--force")
	})

	t.Run("deletes with --force", func(t *testing.T) {
		t.Parallel()

		var deletedID int64
		store := &mock.QuizService{
			FindQuizByIDFn: func(context.Context, int64) (*wikiquiz.Quiz, error) {
				return storedQuiz(), nil
			},
			DeleteQuizFn: func(_ context.Context, id int64) error {
				deletedID = id
				return nil
			},
		}
		deps, stdout, _ := testDeps(store)

		err := (&DeleteCmd{ID: 1, Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, int64(1), deletedID)
		assert.Contains(t, stdout.String(), "Deleted quiz #1")
	})
}

func TestGenerateCmd(t *testing.T) {
	t.Parallel()

	t.Run("generates and renders quiz", func(t *testing.T) {
		t.Parallel()

		store := &mock.QuizService{
			FindQuizByURLFn: func(context.Context, string) (*wikiquiz.Quiz, error) {
				return nil, wikiquiz.Errorf(wikiquiz.ENOTFOUND, "quiz not found")
			},
			CreateQuizFn: func(_ context.Context, quiz *wikiquiz.Quiz, questions []*wikiquiz.Question) error {
				quiz.ID = 1
				quiz.Questions = questions
				return nil
			},
		}
		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) (*wikiquiz.Article, error) {
				return &wikiquiz.Article{Title: "Ada Lovelace", Summary: "An English mathematician."}, nil
			},
		}
		generator := &mock.Generator{
			GenerateQuestionsFn: func(_ context.Context, _ *wikiquiz.Article, count int) ([]*wikiquiz.Question, error) {
				return storedQuiz().Questions, nil
			},
			GenerateRelatedTopicsFn: func(context.Context, *wikiquiz.Article) []string {
				return []string{"Charles Babbage"}
			},
		}
		deps, stdout, _ := testDeps(store)
		deps.Service = quizgen.NewService(scraper, generator, store)

		err := (&GenerateCmd{URL: articleURL}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Ada Lovelace (quiz #1)")
		assert.Contains(t, stdout.String(), "[easy] Who was Ada Lovelace?")
	})

	t.Run("reports invalid URL on stderr", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(&mock.QuizService{})
		deps.Service = quizgen.NewService(nil, nil, &mock.QuizService{})

		err := (&GenerateCmd{URL: "https://example.com/nope"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, wikiquiz.EINVALID, wikiquiz.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestValidateCmd(t *testing.T) {
	t.Parallel()

	t.Run("reports cached article", func(t *testing.T) {
		t.Parallel()

		store := &mock.QuizService{
			FindQuizByURLFn: func(context.Context, string) (*wikiquiz.Quiz, error) {
				return storedQuiz(), nil
			},
		}
		deps, stdout, _ := testDeps(store)
		deps.Service = quizgen.NewService(nil, nil, store)

		err := (&ValidateCmd{URL: articleURL}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "already been processed")
		assert.Contains(t, stdout.String(), "Existing quiz: #1")
	})

	t.Run("invalid URL exits non-zero", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(&mock.QuizService{})
		deps.Service = quizgen.NewService(nil, nil, &mock.QuizService{})

		err := (&ValidateCmd{URL: "not-a-url"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Invalid Wikipedia URL")
	})
}
