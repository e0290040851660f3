package main

import (
	"fmt"

	"github.com/fwojciec/wikiquiz"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	summaries, err := deps.Quizzes.ListQuizzes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiquiz.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No quizzes found. Use 'wikiquiz generate' to create one.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(deps.Stdout, "%d  %s  %d questions  %s  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02"), s.QuestionCount, s.Title, s.URL)
	}

	return nil
}
