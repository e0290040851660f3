package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikiquiz"
)

// Compile-time interface verification.
var _ wikiquiz.QuizService = (*QuizService)(nil)

// QuizService implements wikiquiz.QuizService using SQLite.
type QuizService struct {
	db *DB
}

// NewQuizService creates a new QuizService.
func NewQuizService(db *DB) *QuizService {
	return &QuizService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateQuiz persists a quiz and its questions in a single transaction.
// Either the quiz row and every question row are committed, or nothing is.
func (s *QuizService) CreateQuiz(ctx context.Context, quiz *wikiquiz.Quiz, questions []*wikiquiz.Question) error {
	if err := quiz.Validate(); err != nil {
		return err
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return err
		}
	}

	quiz.CreatedAt = time.Now().UTC()
	quiz.ContentHash = hashContent(quiz.RawHTML)

	entities, err := json.Marshal(quiz.KeyEntities)
	if err != nil {
		return fmt.Errorf("failed to encode key entities: %w", err)
	}
	sections, err := json.Marshal(emptyAsList(quiz.Sections))
	if err != nil {
		return fmt.Errorf("failed to encode sections: %w", err)
	}
	topics, err := json.Marshal(emptyAsList(quiz.RelatedTopics))
	if err != nil {
		return fmt.Errorf("failed to encode related topics: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO quizzes (url, title, summary, key_entities, sections, related_topics, raw_html, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, quiz.URL, quiz.Title, quiz.Summary, string(entities), string(sections), string(topics),
		quiz.RawHTML, quiz.ContentHash, quiz.CreatedAt.Format(time.RFC3339))
	if err != nil {
		if isUniqueViolation(err) {
			return wikiquiz.Errorf(wikiquiz.ECONFLICT, "a quiz already exists for URL %q", quiz.URL)
		}
		return err
	}

	quiz.ID, err = result.LastInsertId()
	if err != nil {
		return err
	}

	for _, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("failed to encode options: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO questions (quiz_id, question_text, options, correct_answer, difficulty, explanation, section_reference)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, quiz.ID, q.QuestionText, string(options), q.CorrectAnswer, q.Difficulty, q.Explanation, q.SectionReference)
		if err != nil {
			return err
		}

		q.ID, err = result.LastInsertId()
		if err != nil {
			return err
		}
		q.QuizID = quiz.ID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	quiz.Questions = questions
	return nil
}

// FindQuizByID retrieves a quiz and its questions.
func (s *QuizService) FindQuizByID(ctx context.Context, id int64) (*wikiquiz.Quiz, error) {
	return s.findQuiz(ctx, "id = ?", id)
}

// FindQuizByURL retrieves a quiz and its questions by the quiz's unique URL.
func (s *QuizService) FindQuizByURL(ctx context.Context, url string) (*wikiquiz.Quiz, error) {
	return s.findQuiz(ctx, "url = ?", url)
}

func (s *QuizService) findQuiz(ctx context.Context, where string, arg any) (*wikiquiz.Quiz, error) {
	var quiz wikiquiz.Quiz
	var entities, sections, topics string
	var createdAt string
	var updatedAt sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, summary, key_entities, sections, related_topics, raw_html, content_hash, created_at, updated_at
		FROM quizzes
		WHERE `+where,
		arg,
	).Scan(&quiz.ID, &quiz.URL, &quiz.Title, &quiz.Summary, &entities, &sections, &topics,
		&quiz.RawHTML, &quiz.ContentHash, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, wikiquiz.Errorf(wikiquiz.ENOTFOUND, "quiz not found")
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(entities), &quiz.KeyEntities); err != nil {
		return nil, fmt.Errorf("failed to decode key entities: %w", err)
	}
	if err := json.Unmarshal([]byte(sections), &quiz.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	if err := json.Unmarshal([]byte(topics), &quiz.RelatedTopics); err != nil {
		return nil, fmt.Errorf("failed to decode related topics: %w", err)
	}

	quiz.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		quiz.UpdatedAt, err = parseRFC3339(updatedAt.String, "updated_at")
		if err != nil {
			return nil, err
		}
	}

	quiz.Questions, err = s.findQuestions(ctx, quiz.ID)
	if err != nil {
		return nil, err
	}

	return &quiz, nil
}

func (s *QuizService) findQuestions(ctx context.Context, quizID int64) ([]*wikiquiz.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, quiz_id, question_text, options, correct_answer, difficulty, explanation, section_reference
		FROM questions
		WHERE quiz_id = ?
		ORDER BY id ASC
	`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*wikiquiz.Question
	for rows.Next() {
		var q wikiquiz.Question
		var options string

		if err := rows.Scan(&q.ID, &q.QuizID, &q.QuestionText, &options, &q.CorrectAnswer,
			&q.Difficulty, &q.Explanation, &q.SectionReference); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options: %w", err)
		}

		questions = append(questions, &q)
	}

	return questions, rows.Err()
}

// ListQuizzes returns summaries of all stored quizzes, newest first.
func (s *QuizService) ListQuizzes(ctx context.Context) ([]*wikiquiz.QuizSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT q.id, q.url, q.title, q.created_at, COUNT(qs.id)
		FROM quizzes q
		LEFT JOIN questions qs ON qs.quiz_id = q.id
		GROUP BY q.id
		ORDER BY q.created_at DESC, q.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*wikiquiz.QuizSummary
	for rows.Next() {
		var summary wikiquiz.QuizSummary
		var createdAt string

		if err := rows.Scan(&summary.ID, &summary.URL, &summary.Title, &createdAt, &summary.QuestionCount); err != nil {
			return nil, err
		}

		summary.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, &summary)
	}

	return summaries, rows.Err()
}

// DeleteQuiz permanently removes a quiz. Its questions are removed by the
// cascading foreign key.
func (s *QuizService) DeleteQuiz(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM quizzes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wikiquiz.Errorf(wikiquiz.ENOTFOUND, "quiz not found")
	}

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// emptyAsList maps a nil slice to an empty one so JSON columns always hold
// a list, never null.
func emptyAsList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
