package wikiquiz

import "time"

// Defaults for Config fields left unset by the caller.
const (
	DefaultFetchTimeout    = 10 * time.Second
	DefaultGenerateTimeout = 60 * time.Second
	DefaultQuestionCount   = 8
	DefaultFetchRPS        = 1.0
	DefaultModel           = "gemini-2.5-flash"
)

// Config holds process-wide settings. It is constructed once at startup and
// passed by value into constructors; nothing reads configuration ambiently.
type Config struct {
	// DBPath is the SQLite database path. ":memory:" for an in-memory DB.
	DBPath string

	// GeminiAPIKey authenticates against the Gemini API.
	GeminiAPIKey string

	// Model is the Gemini model used for generation.
	Model string

	// Addr is the HTTP API listen address, e.g. ":8000".
	Addr string

	// FetchTimeout bounds a single article fetch.
	FetchTimeout time.Duration

	// GenerateTimeout bounds a single generation call.
	GenerateTimeout time.Duration

	// QuestionCount is the number of questions requested per quiz when
	// the caller does not specify one.
	QuestionCount int

	// FetchRPS limits article fetches per second.
	FetchRPS float64
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		DBPath:          "wikiquiz.db",
		Model:           DefaultModel,
		Addr:            ":8000",
		FetchTimeout:    DefaultFetchTimeout,
		GenerateTimeout: DefaultGenerateTimeout,
		QuestionCount:   DefaultQuestionCount,
		FetchRPS:        DefaultFetchRPS,
	}
}
