package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/fwojciec/wikiquiz"
	"github.com/fwojciec/wikiquiz/gemini"
	"github.com/fwojciec/wikiquiz/goquery"
	wikihttp "github.com/fwojciec/wikiquiz/http"
	"github.com/fwojciec/wikiquiz/quizgen"
	wikislog "github.com/fwojciec/wikiquiz/slog"
	"github.com/fwojciec/wikiquiz/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration assembled from environment and flags. Set before Run().
	Config wikiquiz.Config

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	QuizService wikiquiz.QuizService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	cfg := wikiquiz.DefaultConfig()
	cfg.DBPath = defaultDBPath()
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if model := os.Getenv("WIKIQUIZ_MODEL"); model != "" {
		cfg.Model = model
	}
	return &Main{Config: cfg}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: m.Config,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikiquiz"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikiquiz --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.Config.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WIKIQUIZ_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
	}
	defer m.Close()

	m.QuizService = sqlite.NewQuizService(m.DB)
	deps.DB = m.DB
	deps.Quizzes = m.QuizService

	// Commands that touch Wikipedia need the fetcher and scraper; commands
	// that generate quizzes additionally need the Gemini client.
	needsScraper := cmd == "serve" || cmd == "generate" || cmd == "validate"
	needsGenerator := cmd == "serve" || cmd == "generate"

	var scraper wikiquiz.Scraper
	if needsScraper {
		fetcher := wikihttp.NewFetcher(
			wikihttp.WithTimeout(m.Config.FetchTimeout),
			wikihttp.WithRateLimit(m.Config.FetchRPS),
		)
		defer fetcher.Close()
		scraper = wikislog.NewLoggingScraper(
			goquery.NewScraper(wikislog.NewLoggingFetcher(fetcher, logger)),
			logger,
		)
	}

	var generator wikiquiz.Generator
	if needsGenerator {
		if m.Config.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  m.Config.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		generator = wikislog.NewLoggingGenerator(
			gemini.NewGenerator(client,
				gemini.WithModel(m.Config.Model),
				gemini.WithTimeout(m.Config.GenerateTimeout),
			),
			logger,
		)
	}

	if needsScraper {
		deps.Service = quizgen.NewService(scraper, generator, m.QuizService,
			quizgen.WithQuestionCount(m.Config.QuestionCount))
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("WIKIQUIZ_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wikiquiz.db"
	}
	dir := filepath.Join(home, ".wikiquiz")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wikiquiz.db")
}
