package main

import (
	"fmt"

	"github.com/fwojciec/wikiquiz"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	quiz, err := deps.Quizzes.FindQuizByID(deps.Ctx, c.ID)
	if err != nil {
		if wikiquiz.ErrorCode(err) == wikiquiz.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: quiz %d not found. Use 'wikiquiz list' to see available quizzes.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikiquiz.ErrorMessage(err))
		}
		return err
	}

	if !c.Force {
		fmt.Fprintf(deps.Stdout, "This will delete quiz #%d (%s) and its %d questions. Re-run with --force to confirm.\n",
			quiz.ID, quiz.Title, len(quiz.Questions))
		return nil
	}

	if err := deps.Quizzes.DeleteQuiz(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiquiz.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted quiz #%d (%s)\n", quiz.ID, quiz.Title)
	return nil
}
