package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/wikiquiz"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	quiz, err := deps.Quizzes.FindQuizByID(deps.Ctx, c.ID)
	if err != nil {
		if wikiquiz.ErrorCode(err) == wikiquiz.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: quiz %d not found. Use 'wikiquiz list' to see available quizzes.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikiquiz.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(quiz)
	}

	printQuiz(deps, quiz)
	return nil
}
