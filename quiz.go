package wikiquiz

import (
	"context"
	"time"
)

// Quiz represents a generated quiz for one article URL. The URL is globally
// unique and acts as the cache key: once a quiz exists for a URL the system
// never re-scrapes or re-generates it.
type Quiz struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`

	Title         string      `json:"title"`
	Summary       string      `json:"summary"`
	KeyEntities   KeyEntities `json:"key_entities"`
	Sections      []string    `json:"sections"`
	RelatedTopics []string    `json:"related_topics"`

	// RawHTML is the fetched page retained for provenance; ContentHash is
	// a hash of it, computed at creation time.
	RawHTML     string `json:"-"`
	ContentHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is zero unless the record was modified after creation.
	// No current flow modifies quizzes.
	UpdatedAt time.Time `json:"updated_at,omitzero"`

	// Questions are the quiz's child questions, loaded on reads by ID or URL.
	Questions []*Question `json:"quiz"`
}

// Validate returns an error if the quiz contains invalid fields.
func (q *Quiz) Validate() error {
	if q.URL == "" {
		return Errorf(EINVALID, "quiz URL required")
	}
	if q.Title == "" {
		return Errorf(EINVALID, "quiz title required")
	}
	return nil
}

// Question represents one multiple-choice question belonging to a quiz.
type Question struct {
	ID     int64 `json:"id"`
	QuizID int64 `json:"quiz_id"`

	QuestionText string `json:"question"`
	// Options always holds exactly 4 entries.
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"answer"`
	// Difficulty is easy, medium or hard. Free string, not enforced.
	Difficulty       string `json:"difficulty"`
	Explanation      string `json:"explanation"`
	SectionReference string `json:"section_reference"`
}

// Validate returns an error if the question contains invalid fields.
// Answer membership in Options is enforced earlier, at the generation
// client boundary, and is not re-checked here.
func (q *Question) Validate() error {
	if q.QuestionText == "" {
		return Errorf(EINVALID, "question text required")
	}
	if len(q.Options) != 4 {
		return Errorf(EINVALID, "question must have exactly 4 options")
	}
	return nil
}

// QuizSummary is the listing shape for stored quizzes.
type QuizSummary struct {
	ID            int64     `json:"id"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
	QuestionCount int       `json:"question_count"`
}

// QuizService represents a service for managing stored quizzes.
type QuizService interface {
	// CreateQuiz persists a quiz and all of its questions atomically.
	// IDs and CreatedAt are assigned on success. Returns ECONFLICT if a
	// quiz already exists for the quiz's URL.
	CreateQuiz(ctx context.Context, quiz *Quiz, questions []*Question) error

	// FindQuizByID retrieves a quiz with its questions.
	// Returns ENOTFOUND if no quiz has the given id.
	FindQuizByID(ctx context.Context, id int64) (*Quiz, error)

	// FindQuizByURL retrieves a quiz with its questions by its unique URL.
	// Returns ENOTFOUND if the URL has not been processed.
	FindQuizByURL(ctx context.Context, url string) (*Quiz, error)

	// ListQuizzes returns summaries of all quizzes, newest first.
	ListQuizzes(ctx context.Context) ([]*QuizSummary, error)

	// DeleteQuiz removes a quiz and, through cascading ownership, all of
	// its questions. Returns ENOTFOUND if no quiz has the given id.
	DeleteQuiz(ctx context.Context, id int64) error
}
