package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/wikiquiz"
	"github.com/fwojciec/wikiquiz/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testQuiz(url string) *wikiquiz.Quiz {
	return &wikiquiz.Quiz{
		URL:     url,
		Title:   "Turing Award",
		Summary: "The Turing Award is an annual prize given by the ACM.",
		KeyEntities: wikiquiz.KeyEntities{
			People:        []string{"Alan Turing"},
			Organizations: []string{"ACM"},
			Locations:     []string{"United States"},
		},
		Sections:      []string{"History", "Recipients"},
		RelatedTopics: []string{"Alan Turing", "Nobel Prize"},
		RawHTML:       "<html><body>Turing Award</body></html>",
	}
}

func testQuestions(n int) []*wikiquiz.Question {
	var questions []*wikiquiz.Question
	for i := 0; i < n; i++ {
		questions = append(questions, &wikiquiz.Question{
			QuestionText:     fmt.Sprintf("Question %d?", i),
			Options:          []string{"a", "b", "c", "d"},
			CorrectAnswer:    "a",
			Difficulty:       "medium",
			Explanation:      "Because the article says so.",
			SectionReference: "History",
		})
	}
	return questions
}

func TestQuizService_CreateQuiz(t *testing.T) {
	t.Parallel()

	t.Run("creates quiz with questions, IDs and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()

		quiz := testQuiz("https://en.wikipedia.org/wiki/Turing_Award")
		questions := testQuestions(3)

		err := svc.CreateQuiz(ctx, quiz, questions)
		require.NoError(t, err)

		assert.NotZero(t, quiz.ID)
		assert.NotEmpty(t, quiz.ContentHash)
		assert.False(t, quiz.CreatedAt.IsZero())
		assert.True(t, quiz.UpdatedAt.IsZero(), "UpdatedAt should be unset on creation")
		for _, q := range questions {
			assert.NotZero(t, q.ID)
			assert.Equal(t, quiz.ID, q.QuizID)
		}
	})

	t.Run("returns ECONFLICT for duplicate URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()
		url := "https://en.wikipedia.org/wiki/Turing_Award"

		require.NoError(t, svc.CreateQuiz(ctx, testQuiz(url), testQuestions(2)))

		err := svc.CreateQuiz(ctx, testQuiz(url), testQuestions(2))
		require.Error(t, err)
		assert.Equal(t, wikiquiz.ECONFLICT, wikiquiz.ErrorCode(err))

		// The loser's questions must not leak into the winner's quiz.
		found, err := svc.FindQuizByURL(ctx, url)
		require.NoError(t, err)
		assert.Len(t, found.Questions, 2)
	})

	t.Run("returns error for invalid quiz", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))

		err := svc.CreateQuiz(context.Background(), &wikiquiz.Quiz{}, nil)
		require.Error(t, err)
		assert.Equal(t, wikiquiz.EINVALID, wikiquiz.ErrorCode(err))
	})

	t.Run("rejects invalid question before persisting anything", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()
		url := "https://en.wikipedia.org/wiki/Turing_Award"

		questions := testQuestions(2)
		questions[1].Options = questions[1].Options[:3]

		err := svc.CreateQuiz(ctx, testQuiz(url), questions)
		require.Error(t, err)
		assert.Equal(t, wikiquiz.EINVALID, wikiquiz.ErrorCode(err))

		_, err = svc.FindQuizByURL(ctx, url)
		assert.Equal(t, wikiquiz.ENOTFOUND, wikiquiz.ErrorCode(err))
	})
}

func TestQuizService_FindQuizByURL(t *testing.T) {
	t.Parallel()

	t.Run("returns quiz with questions when found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()
		url := "https://en.wikipedia.org/wiki/Turing_Award"

		quiz := testQuiz(url)
		require.NoError(t, svc.CreateQuiz(ctx, quiz, testQuestions(3)))

		found, err := svc.FindQuizByURL(ctx, url)
		require.NoError(t, err)
		assert.Equal(t, quiz.ID, found.ID)
		assert.Equal(t, quiz.Title, found.Title)
		assert.Equal(t, quiz.Summary, found.Summary)
		assert.Equal(t, quiz.KeyEntities, found.KeyEntities)
		assert.Equal(t, quiz.Sections, found.Sections)
		assert.Equal(t, quiz.RelatedTopics, found.RelatedTopics)
		assert.Equal(t, quiz.RawHTML, found.RawHTML)
		assert.Equal(t, quiz.ContentHash, found.ContentHash)
		require.Len(t, found.Questions, 3)
		assert.Equal(t, "Question 0?", found.Questions[0].QuestionText)
		assert.Equal(t, []string{"a", "b", "c", "d"}, found.Questions[0].Options)
	})

	t.Run("returns ENOTFOUND for unprocessed URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))

		_, err := svc.FindQuizByURL(context.Background(), "https://en.wikipedia.org/wiki/Nope")
		require.Error(t, err)
		assert.Equal(t, wikiquiz.ENOTFOUND, wikiquiz.ErrorCode(err))
	})
}

func TestQuizService_FindQuizByID(t *testing.T) {
	t.Parallel()

	t.Run("returns quiz when found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()

		quiz := testQuiz("https://en.wikipedia.org/wiki/Turing_Award")
		require.NoError(t, svc.CreateQuiz(ctx, quiz, testQuestions(1)))

		found, err := svc.FindQuizByID(ctx, quiz.ID)
		require.NoError(t, err)
		assert.Equal(t, quiz.URL, found.URL)
		assert.Len(t, found.Questions, 1)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))

		_, err := svc.FindQuizByID(context.Background(), 42)
		require.Error(t, err)
		assert.Equal(t, wikiquiz.ENOTFOUND, wikiquiz.ErrorCode(err))
	})
}

func TestQuizService_ListQuizzes(t *testing.T) {
	t.Parallel()

	t.Run("returns summaries newest first with question counts", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()

		first := testQuiz("https://en.wikipedia.org/wiki/Turing_Award")
		require.NoError(t, svc.CreateQuiz(ctx, first, testQuestions(3)))
		second := testQuiz("https://en.wikipedia.org/wiki/Alan_Turing")
		require.NoError(t, svc.CreateQuiz(ctx, second, testQuestions(5)))

		summaries, err := svc.ListQuizzes(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		assert.Equal(t, second.ID, summaries[0].ID)
		assert.Equal(t, 5, summaries[0].QuestionCount)
		assert.Equal(t, first.ID, summaries[1].ID)
		assert.Equal(t, 3, summaries[1].QuestionCount)
		assert.WithinDuration(t, time.Now().UTC(), summaries[0].CreatedAt, time.Minute)
	})

	t.Run("returns empty list when no quizzes stored", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))

		summaries, err := svc.ListQuizzes(context.Background())
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}

func TestQuizService_DeleteQuiz(t *testing.T) {
	t.Parallel()

	t.Run("deletes quiz and cascades to questions", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewQuizService(db)
		ctx := context.Background()

		quiz := testQuiz("https://en.wikipedia.org/wiki/Turing_Award")
		require.NoError(t, svc.CreateQuiz(ctx, quiz, testQuestions(3)))

		require.NoError(t, svc.DeleteQuiz(ctx, quiz.ID))

		_, err := svc.FindQuizByID(ctx, quiz.ID)
		assert.Equal(t, wikiquiz.ENOTFOUND, wikiquiz.ErrorCode(err))

		var count int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions WHERE quiz_id = ?", quiz.ID).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))

		err := svc.DeleteQuiz(context.Background(), 42)
		require.Error(t, err)
		assert.Equal(t, wikiquiz.ENOTFOUND, wikiquiz.ErrorCode(err))
	})
}
