package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/wikiquiz"
	"github.com/fwojciec/wikiquiz/quizgen"
	"github.com/fwojciec/wikiquiz/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  wikiquiz.Config
	Logger  *slog.Logger
	DB      *sqlite.DB
	Quizzes wikiquiz.QuizService
	Service *quizgen.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve    ServeCmd    `cmd:"" help:"Start the HTTP API server"`
	Generate GenerateCmd `cmd:"" help:"Generate a quiz from a Wikipedia article"`
	Validate ValidateCmd `cmd:"" help:"Check whether a URL is a usable Wikipedia article"`
	List     ListCmd     `cmd:"" help:"List generated quizzes"`
	Show     ShowCmd     `cmd:"" help:"Show a quiz by id"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a quiz and its questions"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address" default:":8000"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL       string `arg:"" help:"Wikipedia article URL"`
	Questions int    `short:"n" help:"Number of questions (default from config)"`
	JSON      bool   `help:"Print the quiz as JSON"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	URL string `arg:"" help:"Wikipedia article URL"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   int64 `arg:"" help:"Quiz id"`
	JSON bool  `help:"Print the quiz as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    int64 `arg:"" help:"Quiz id"`
	Force bool  `help:"Confirm deletion"`
}
