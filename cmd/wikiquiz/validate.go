package main

import (
	"fmt"

	"github.com/fwojciec/wikiquiz"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	result, err := deps.Service.ValidateURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiquiz.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Message)
	if result.Cached {
		fmt.Fprintf(deps.Stdout, "Existing quiz: #%d (%s)\n", result.QuizID, result.Title)
	} else if result.Valid {
		fmt.Fprintf(deps.Stdout, "Article: %s\n", result.Title)
	}

	if !result.Valid {
		return wikiquiz.Errorf(wikiquiz.EINVALID, "%s", result.Message)
	}
	return nil
}
